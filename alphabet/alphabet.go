// Package alphabet declares the minimal external collaborator interface
// Nfa instances expect from a shared alphabet object. Alphabet bookkeeping itself
// (parsing `%Alphabet-...` directives, persisting symbol tables) is out of
// scope for this core and lives in a host application.
package alphabet

import "github.com/matalib/mata/symbol"

// Symbol re-exports symbol.Symbol for convenience.
type Symbol = symbol.Symbol

// Alphabet translates symbolic names to Symbol values and enumerates the
// symbols currently known to the alphabet.
type Alphabet interface {
	// TranslateSymbol maps a textual symbol name to its Symbol value.
	TranslateSymbol(name string) (Symbol, error)

	// Symbols returns every Symbol currently known to this alphabet, sorted
	// ascending and deduplicated.
	Symbols() []Symbol
}

// OnTheFly is implemented by alphabets that let an Nfa contribute symbols
// it discovers back to a shared alphabet.
type OnTheFly interface {
	Alphabet

	// UpdateNextSymbolValue advises the alphabet that sym is in use, so
	// any auto-numbering scheme will not reassign it.
	UpdateNextSymbolValue(sym Symbol)

	// TryAddNewSymbol registers name for sym if name is unknown, or
	// reports an error if name is already mapped to a different value.
	TryAddNewSymbol(name string, sym Symbol) error
}
