package serialize

import (
	"fmt"
	"strings"

	"github.com/matalib/mata/nfa"
	"github.com/matalib/mata/symbol"
)

// ToMata renders a in the `.mata` explicit-section format:
// `@NFA-explicit\n%Alphabet-auto\n%Initial q<s>…\n%Final q<s>…\n`
// followed by one `q<src> <symbol> q<tgt>` line per transition.
func ToMata(a *nfa.Nfa) string {
	var b strings.Builder

	b.WriteString("@NFA-explicit\n")
	b.WriteString("%Alphabet-auto\n")

	b.WriteString("%Initial")
	for _, s := range a.Initial.Items() {
		fmt.Fprintf(&b, " q%d", s)
	}
	b.WriteString("\n")

	b.WriteString("%Final")
	for _, s := range a.Final.Items() {
		fmt.Fprintf(&b, " q%d", s)
	}
	b.WriteString("\n")

	for t := range a.Delta.Transitions() {
		sym := "eps"
		if !symbol.IsAnyEpsilon(t.Sym) {
			sym = fmt.Sprintf("%d", t.Sym)
		}
		fmt.Fprintf(&b, "q%d %s q%d\n", t.Src, sym, t.Tgt)
	}

	return b.String()
}

// ToMataNFT renders a in the NFT (transducer) wrapper format, appending
// the `%LevelsCnt n` / `%Levels q:ℓ …` directives of the NFT variant.
// States with no recorded level are omitted from the %Levels line.
func ToMataNFT(a *nfa.Nfa) string {
	var b strings.Builder
	b.WriteString(ToMata(a))

	if len(a.Levels) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "%%LevelsCnt %d\n", len(a.Levels))
	b.WriteString("%Levels")
	for q := 0; q < a.Size(); q++ {
		if lvl, ok := a.Levels[nfa.State(q)]; ok {
			fmt.Fprintf(&b, " q%d:%d", q, lvl)
		}
	}
	b.WriteString("\n")

	return b.String()
}
