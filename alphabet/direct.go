package alphabet

import "github.com/matalib/mata/mataerr"

// Direct is a minimal concrete Alphabet/OnTheFly backed by an in-memory
// name<->Symbol bijection.
type Direct struct {
	byName map[string]Symbol
	byVal  map[Symbol]string
	next   Symbol
}

var _ OnTheFly = (*Direct)(nil)

// NewDirect returns an empty Direct alphabet.
func NewDirect() *Direct {
	return &Direct{byName: make(map[string]Symbol), byVal: make(map[Symbol]string)}
}

// TranslateSymbol implements Alphabet.
func (d *Direct) TranslateSymbol(name string) (Symbol, error) {
	if sym, ok := d.byName[name]; ok {
		return sym, nil
	}

	return 0, mataerr.Wrapf(mataerr.ErrBadInput, "alphabet: unknown symbol name %q", name)
}

// Symbols implements Alphabet: every registered value, ascending.
func (d *Direct) Symbols() []Symbol {
	out := make([]Symbol, 0, len(d.byVal))
	for s := range d.byVal {
		out = append(out, s)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

// UpdateNextSymbolValue implements OnTheFly.
func (d *Direct) UpdateNextSymbolValue(sym Symbol) {
	if sym >= d.next {
		d.next = sym + 1
	}
}

// TryAddNewSymbol implements OnTheFly.
func (d *Direct) TryAddNewSymbol(name string, sym Symbol) error {
	if existing, ok := d.byName[name]; ok {
		if existing != sym {
			return mataerr.Wrapf(mataerr.ErrBadInput, "alphabet: %q already maps to a different symbol", name)
		}

		return nil
	}
	if other, ok := d.byVal[sym]; ok && other != name {
		return mataerr.Wrapf(mataerr.ErrBadInput, "alphabet: symbol %d already named %q", sym, other)
	}
	d.byName[name] = sym
	d.byVal[sym] = name
	d.UpdateNextSymbolValue(sym)

	return nil
}

// AddAuto registers name under a freshly minted symbol value and returns
// it.
func (d *Direct) AddAuto(name string) Symbol {
	sym := d.next
	_ = d.TryAddNewSymbol(name, sym)

	return sym
}
