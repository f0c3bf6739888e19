// Package runner parses the matacli command line and builds its Options,
// following the split the projectdiscovery-alterx sibling repo uses between
// a thin cmd/ main and an internal/runner flag-parsing layer
// (internal/runner/runner.go in that repo).
package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the parsed matacli invocation: one automaton described by
// flat flags (there is no `.mata` parser), the operation to run
// on it, and, for binary operations, a second automaton plus output
// formatting.
type Options struct {
	States      int
	Initial     goflags.StringSlice
	Final       goflags.StringSlice
	Trans       goflags.StringSlice // "src:sym:tgt" triples
	Op          string
	Word        string
	Alphabet    goflags.StringSlice
	Sink        int
	Params      goflags.RuntimeMap // algorithm-selection parameter map

	States2  int
	Initial2 goflags.StringSlice
	Final2   goflags.StringSlice
	Trans2   goflags.StringSlice

	Format  string
	Output  string
	Verbose bool
	Silent  bool
}

// ParseFlags reads os.Args into an Options value.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`matacli - exercise mata NFA operations from the command line.`)

	flagSet.CreateGroup("automaton", "Automaton",
		flagSet.IntVarP(&opts.States, "states", "n", 0, "number of states of the automaton"),
		flagSet.StringSliceVarP(&opts.Initial, "initial", "i", nil, "initial state ids (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Final, "final", "f", nil, "final state ids (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Trans, "trans", "t", nil, "transitions as src:symbol:tgt (comma-separated, symbol is a single byte)", goflags.CommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("second", "Second automaton (for included/equivalent)",
		flagSet.IntVar(&opts.States2, "states2", 0, "number of states of the second automaton"),
		flagSet.StringSliceVarP(&opts.Initial2, "initial2", "i2", nil, "second automaton initial state ids", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Final2, "final2", "f2", nil, "second automaton final state ids", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Trans2, "trans2", "t2", nil, "second automaton transitions", goflags.CommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("operation", "Operation",
		flagSet.StringVarP(&opts.Op, "op", "o", "trim", "operation: trim|reverse|determinize|complement|minimize|reduce|emptiness|run|included|universal|equivalent"),
		flagSet.StringVarP(&opts.Word, "word", "w", "", "input word for -op run (one byte per symbol)"),
		flagSet.StringSliceVarP(&opts.Alphabet, "alphabet", "a", nil, "alphabet symbols for -op complement/universal (comma-separated bytes)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.IntVar(&opts.Sink, "sink", -1, "sink state id for -op complement (default: States)"),
		flagSet.RuntimeMapVarP(&opts.Params, "param", "p", nil, "algorithm-selection parameters in key=value form"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVar(&opts.Format, "format", "mata", "output format: mata|dot"),
		flagSet.StringVar(&opts.Output, "output-file", "", "write output to this file instead of stdout"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "only emit the result"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("matacli: could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.States <= 0 {
		gologger.Fatal().Msgf("matacli: -states must be positive")
	}

	return opts
}

func openOutput(path string) (*os.File, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		gologger.Fatal().Msgf("matacli: failed to open %s: %s\n", path, err)
	}

	return f, func() { _ = f.Close() }
}
