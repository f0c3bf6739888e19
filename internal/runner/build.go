package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matalib/mata/nfa"
)

// buildNfa turns the flat "-states/-initial/-final/-trans" description of
// one automaton into an *nfa.Nfa, the way a `.mata`-section parser would
// (there is no `.mata` parser here; matacli only ever
// builds automata small enough to type on a command line).
func buildNfa(states int, initial, final, trans []string) (*nfa.Nfa, error) {
	a := nfa.New()
	for q := nfa.State(0); int(q) < states; q++ {
		a.AddState(q)
	}

	for _, s := range initial {
		id, err := parseState(s)
		if err != nil {
			return nil, fmt.Errorf("matacli: bad initial state %q: %w", s, err)
		}
		a.SetInitial(id)
	}

	for _, s := range final {
		id, err := parseState(s)
		if err != nil {
			return nil, fmt.Errorf("matacli: bad final state %q: %w", s, err)
		}
		a.SetFinal(id)
	}

	for _, t := range trans {
		src, sym, tgt, err := parseTriple(t)
		if err != nil {
			return nil, fmt.Errorf("matacli: bad transition %q: %w", t, err)
		}
		a.AddTransition(src, sym, tgt)
	}

	return a, nil
}

func parseState(s string) (nfa.State, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	return nfa.State(n), nil
}

// parseTriple parses "src:sym:tgt" where sym is a single literal byte.
func parseTriple(s string) (nfa.State, nfa.Symbol, nfa.State, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected src:sym:tgt, got %q", s)
	}
	src, err := parseState(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	tgt, err := parseState(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	symStr := parts[1]
	if len(symStr) != 1 {
		return 0, 0, 0, fmt.Errorf("symbol must be a single byte, got %q", symStr)
	}

	return src, nfa.Symbol(symStr[0]), tgt, nil
}

// parseWord turns a literal string into a symbol slice, one byte per symbol.
func parseWord(word string) []nfa.Symbol {
	out := make([]nfa.Symbol, len(word))
	for i := 0; i < len(word); i++ {
		out[i] = nfa.Symbol(word[i])
	}

	return out
}

// parseAlphabet turns comma-split single-byte strings into a symbol slice.
func parseAlphabet(syms []string) ([]nfa.Symbol, error) {
	out := make([]nfa.Symbol, 0, len(syms))
	for _, s := range syms {
		if len(s) != 1 {
			return nil, fmt.Errorf("alphabet symbol must be a single byte, got %q", s)
		}
		out = append(out, nfa.Symbol(s[0]))
	}

	return out, nil
}
