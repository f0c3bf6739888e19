package nfa

import (
	"github.com/matalib/mata/mataerr"
	"github.com/matalib/mata/paramset"
	"github.com/matalib/mata/simulation"
)

// ComplementFromParams decodes the complement parameter map
// ({algorithm: classical, minimize: true|false}) and dispatches. classical
// is the only complementation algorithm this core implements (Complement),
// so any other algorithm value is an error rather than a silent fallback.
func (a *Nfa) ComplementFromParams(sigma []Symbol, sink State, params paramset.Set) (*Nfa, error) {
	if err := params.ValidateKeys("algorithm", "minimize"); err != nil {
		return nil, err
	}
	alg, err := params.OneOf("algorithm", "classical", "classical")
	if err != nil {
		return nil, err
	}
	if alg != "classical" {
		return nil, mataerr.Wrapf(mataerr.ErrUnknownParameter, "nfa: complement algorithm %q not implemented", alg)
	}
	minimize, err := params.Bool("minimize", false)
	if err != nil {
		return nil, err
	}

	out := a.Complement(sigma, sink)
	if minimize {
		out = out.Minimize()
	}

	return out, nil
}

// ReduceFromParams decodes the reduce parameter map ({algorithm:
// simulation | residual, direction: forward | backward | bidirectional,
// type: with | after}). Only algorithm=simulation, type=after is
// implemented: residual automata construction and the "with" (incremental,
// non-quotienting) simulation mode are recognized but unsupported
// (DESIGN.md), so both report ErrUnknownParameter rather than silently
// falling back.
func (a *Nfa) ReduceFromParams(params paramset.Set) (*Nfa, error) {
	if err := params.ValidateKeys("algorithm", "direction", "type"); err != nil {
		return nil, err
	}
	alg, err := params.OneOf("algorithm", "simulation", "simulation", "residual")
	if err != nil {
		return nil, err
	}
	if alg != "simulation" {
		return nil, mataerr.Wrapf(mataerr.ErrUnknownParameter, "nfa: reduce algorithm %q not implemented", alg)
	}
	typ, err := params.OneOf("type", "after", "with", "after")
	if err != nil {
		return nil, err
	}
	if typ != "after" {
		return nil, mataerr.Wrapf(mataerr.ErrUnknownParameter, "nfa: reduce type %q not implemented", typ)
	}
	dirStr, err := params.OneOf("direction", "bidirectional", "forward", "backward", "bidirectional")
	if err != nil {
		return nil, err
	}

	var dir simulation.Direction
	switch dirStr {
	case "forward":
		dir = simulation.Forward
	case "backward":
		dir = simulation.Backward
	default:
		dir = simulation.Bidirectional
	}

	return a.Reduce(WithDirection(dir))
}
