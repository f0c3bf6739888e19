package runner

import (
	"fmt"

	"github.com/matalib/mata/nfa"
	"github.com/matalib/mata/paramset"
	"github.com/matalib/mata/serialize"
	"github.com/projectdiscovery/gologger"
)

// Run executes the operation named by opts.Op and writes the result to
// opts.Output (stdout by default), the way alterx's runner builds a
// Mutator from Options and streams results to a writer.
func Run(opts *Options) {
	a, err := buildNfa(opts.States, opts.Initial, opts.Final, opts.Trans)
	if err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	params := paramset.Set{}
	for k, v := range opts.Params.AsMap() {
		if s, ok := v.(string); ok {
			params[k] = s
		}
	}

	out, closeOut := openOutput(opts.Output)
	defer closeOut()

	switch opts.Op {
	case "trim":
		trimmed, _ := a.Trim()
		writeNfa(out, trimmed, opts.Format)

	case "reverse":
		writeNfa(out, a.Reverse(), opts.Format)

	case "determinize":
		writeNfa(out, a.Determinize(), opts.Format)

	case "complement":
		sigma, err := parseAlphabet(opts.Alphabet)
		if err != nil {
			gologger.Fatal().Msgf("%s\n", err)
		}
		sink := opts.Sink
		if sink < 0 {
			sink = opts.States
		}
		result, err := a.ComplementFromParams(sigma, nfa.State(sink), params)
		if err != nil {
			gologger.Fatal().Msgf("matacli: complement: %s\n", err)
		}
		writeNfa(out, result, opts.Format)

	case "minimize":
		writeNfa(out, a.Minimize(), opts.Format)

	case "reduce":
		result, err := a.ReduceFromParams(params)
		if err != nil {
			gologger.Fatal().Msgf("matacli: reduce: %s\n", err)
		}
		writeNfa(out, result, opts.Format)

	case "emptiness":
		empty, witness := a.IsLangEmpty()
		if empty {
			fmt.Fprintln(out, "empty")
			return
		}
		fmt.Fprintf(out, "non-empty witness-path=%v\n", witness.Path)

	case "run":
		word := parseWord(opts.Word)
		accepted, traces := a.Run(word)
		fmt.Fprintf(out, "accepted=%v traces=%v\n", accepted, traces)

	case "included", "universal", "equivalent":
		runDecision(out, opts, a, params)

	default:
		gologger.Fatal().Msgf("matacli: unknown -op %q\n", opts.Op)
	}
}

func runDecision(out interface{ Write([]byte) (int, error) }, opts *Options, a *nfa.Nfa, params paramset.Set) {
	switch opts.Op {
	case "universal":
		sigma, err := parseAlphabet(opts.Alphabet)
		if err != nil {
			gologger.Fatal().Msgf("%s\n", err)
		}
		ok, cex := a.IsUniversal(sigma)
		fmt.Fprintf(out, "universal=%v counterexample=%v\n", ok, cex)
		return
	}

	b, err := buildNfa(opts.States2, opts.Initial2, opts.Final2, opts.Trans2)
	if err != nil {
		gologger.Fatal().Msgf("matacli: second automaton: %s\n", err)
	}
	var alphabet []nfa.Symbol
	if len(opts.Alphabet) > 0 {
		alphabet, err = parseAlphabet(opts.Alphabet)
		if err != nil {
			gologger.Fatal().Msgf("%s\n", err)
		}
	}

	switch opts.Op {
	case "included":
		ok, cex := a.IsIncludedIn(b, alphabet)
		fmt.Fprintf(out, "included=%v counterexample=%v\n", ok, cex)
	case "equivalent":
		ok, cex := a.IsEquivalentTo(b, alphabet)
		fmt.Fprintf(out, "equivalent=%v counterexample=%v\n", ok, cex)
	}
}

func writeNfa(out interface{ Write([]byte) (int, error) }, a *nfa.Nfa, format string) {
	switch format {
	case "dot":
		fmt.Fprint(out, serialize.ToDOT(a))
	case "mata":
		fmt.Fprint(out, serialize.ToMata(a))
	default:
		gologger.Fatal().Msgf("matacli: unknown -format %q\n", format)
	}
}
