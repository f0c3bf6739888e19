// SPDX-License-Identifier: MIT
// Package ibuilder implements IntermediateAut, the neutral record an
// external `.mata`-section parser produces, and the two constructors that
// turn it into an Nfa: BuildNfa for an already explicit alphabet and
// BuildMintermizedNfa for a symbolic one.
//
// Configuration is functional-option style: a Config resolved from zero
// or more Option values, never a struct literal callers populate
// field-by-field.
package ibuilder

import "github.com/matalib/mata/minterm"

// Formula re-exports minterm.Formula: the raw formula tree a parser
// attaches to a symbolic transition, built from the not/and/or
// connectives, the true/false constants, and state/symbol/node leaves.
type Formula = minterm.Formula

// Transition is one edge of an IntermediateAut. Exactly one of Symbol or
// Formula is meaningful, selected by the owning IntermediateAut's
// Symbolic flag.
type Transition struct {
	Src     int
	Symbol  uint64
	Formula *Formula // only valid when Symbolic is true
	Tgt     int
}

// IntermediateAut is the parser-neutral record: a plain state
// count plus initial/final sets and transitions, with either explicit
// symbols or symbolic Boolean formulae over a fixed variable count.
type IntermediateAut struct {
	NumStates   int
	Initial     []int
	Final       []int
	Transitions []Transition
	Symbolic    bool
	NumVars     int // meaningful only when Symbolic
}

// Config resolves the options passed to the Build* constructors.
type Config struct {
	manager *minterm.Manager // supplied or created for BuildMintermizedNfa
}

// Option customizes a Build* call.
type Option func(*Config)

// WithManager supplies an existing minterm.Manager (e.g. one shared
// across several automata mintermized jointly, so their symbols stay
// comparable) instead of letting BuildMintermizedNfa create a fresh one
// sized to ia.NumVars.
func WithManager(m *minterm.Manager) Option {
	return func(c *Config) { c.manager = m }
}

func newConfig(ia *IntermediateAut, opts ...Option) *Config {
	cfg := &Config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.manager == nil {
		cfg.manager = minterm.NewManager(ia.NumVars)
	}

	return cfg
}
