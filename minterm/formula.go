package minterm

import "github.com/matalib/mata/mataerr"

// FormulaKind tags one node of a raw transition-formula tree: the logical
// connectives not/and/or, the constants true/false, and leaves referencing
// a bit-vector variable, a state, or a named subgraph node.
type FormulaKind int

const (
	FormulaTrue FormulaKind = iota
	FormulaFalse
	FormulaVar   // leaf: bit-vector variable index
	FormulaState // leaf: state reference (initial/final formula graphs)
	FormulaNode  // leaf: named subgraph reference, resolved by the parser
	FormulaNot
	FormulaAnd
	FormulaOr
)

// Formula is the raw formula tree an external parser hands over on a
// symbolic transition, before any Boolean reasoning has happened. Only
// FromFormula interprets it; the tree itself carries no BDD state.
type Formula struct {
	Kind FormulaKind
	Var  int        // FormulaVar: variable index
	Ref  int        // FormulaState / FormulaNode: referenced id
	Args []*Formula // FormulaNot: 1 operand; FormulaAnd / FormulaOr: 2+
}

// FTrue returns the constant-true leaf.
func FTrue() *Formula { return &Formula{Kind: FormulaTrue} }

// FFalse returns the constant-false leaf.
func FFalse() *Formula { return &Formula{Kind: FormulaFalse} }

// FVar returns the leaf "bit-vector variable v is true".
func FVar(v int) *Formula { return &Formula{Kind: FormulaVar, Var: v} }

// FNot returns the negation of f.
func FNot(f *Formula) *Formula { return &Formula{Kind: FormulaNot, Args: []*Formula{f}} }

// FAnd returns the conjunction of args.
func FAnd(args ...*Formula) *Formula { return &Formula{Kind: FormulaAnd, Args: args} }

// FOr returns the disjunction of args.
func FOr(args ...*Formula) *Formula { return &Formula{Kind: FormulaOr, Args: args} }

// FromFormula converts a raw formula tree into a BDD over m's variables
// by a bottom-up walk: leaves become terminals or variables, connectives
// fold their converted operands through the manager.
//
// Returns mataerr.ErrBadInput for a variable index outside m's range, a
// state or node leaf (a transition guard must be a pure bit-vector
// predicate), a connective with the wrong operand count, or a nil tree.
func FromFormula(m *Manager, f *Formula) (Node, error) {
	if f == nil {
		return falseNode, mataerr.Wrap(mataerr.ErrBadInput, "minterm: nil formula")
	}

	switch f.Kind {
	case FormulaTrue:
		return m.True(), nil
	case FormulaFalse:
		return m.False(), nil
	case FormulaVar:
		if f.Var < 0 || f.Var >= m.nVars {
			return falseNode, mataerr.Wrapf(mataerr.ErrBadInput, "minterm: unknown variable %d", f.Var)
		}

		return m.Var(f.Var), nil
	case FormulaState, FormulaNode:
		return falseNode, mataerr.Wrap(mataerr.ErrBadInput, "minterm: state/node leaf in a transition formula")
	case FormulaNot:
		if len(f.Args) != 1 {
			return falseNode, mataerr.Wrapf(mataerr.ErrBadInput, "minterm: not expects 1 operand, got %d", len(f.Args))
		}
		sub, err := FromFormula(m, f.Args[0])
		if err != nil {
			return falseNode, err
		}

		return m.Not(sub), nil
	case FormulaAnd, FormulaOr:
		if len(f.Args) < 2 {
			return falseNode, mataerr.Wrapf(mataerr.ErrBadInput, "minterm: and/or expect 2+ operands, got %d", len(f.Args))
		}
		acc, err := FromFormula(m, f.Args[0])
		if err != nil {
			return falseNode, err
		}
		for _, arg := range f.Args[1:] {
			sub, err := FromFormula(m, arg)
			if err != nil {
				return falseNode, err
			}
			if f.Kind == FormulaAnd {
				acc = m.And(acc, sub)
			} else {
				acc = m.Or(acc, sub)
			}
		}

		return acc, nil
	default:
		return falseNode, mataerr.Wrapf(mataerr.ErrBadInput, "minterm: unknown formula kind %d", f.Kind)
	}
}
