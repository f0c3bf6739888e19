package minterm_test

import (
	"testing"

	"github.com/matalib/mata/mataerr"
	"github.com/matalib/mata/minterm"
	"github.com/stretchr/testify/require"
)

// TestMintermizeDisjointAndCovering: a
// symbolic NFA with alphabet a1,a2 and edges q -(a1|!a2)-> r,
// s -(a3&a4)-> t mintermizes into disjoint, covering minterms.
func TestMintermizeDisjointAndCovering(t *testing.T) {
	m := minterm.NewManager(4)

	phi1, err := minterm.FromFormula(m, minterm.FOr(minterm.FVar(0), minterm.FNot(minterm.FVar(1))))
	require.NoError(t, err)
	phi2, err := minterm.FromFormula(m, minterm.FAnd(minterm.FVar(2), minterm.FVar(3)))
	require.NoError(t, err)

	minterms := minterm.Mintermize(m, []minterm.Node{phi1, phi2})
	require.NotEmpty(t, minterms)

	// Pairwise disjoint.
	for i := range minterms {
		for j := i + 1; j < len(minterms); j++ {
			require.True(t, m.IsUnsat(m.And(minterms[i].Formula, minterms[j].Formula)))
		}
	}

	// Jointly exhaustive.
	union := m.False()
	for _, mt := range minterms {
		union = m.Or(union, mt.Formula)
	}
	require.Equal(t, m.True(), union)

	// Every formula is exactly the union of the minterms it covers.
	for _, phi := range []minterm.Node{phi1, phi2} {
		cov := minterm.Cover(m, phi, minterms)
		require.NotEmpty(t, cov)
		rebuilt := m.False()
		for _, idx := range cov {
			rebuilt = m.Or(rebuilt, minterms[idx].Formula)
		}
		require.Equal(t, phi, rebuilt)
	}
}

func TestManagerBasicLaws(t *testing.T) {
	m := minterm.NewManager(2)
	a, b := m.Var(0), m.Var(1)

	require.Equal(t, m.True(), m.Or(a, m.Not(a)))
	require.Equal(t, m.False(), m.And(a, m.Not(a)))
	require.True(t, m.Implies(m.And(a, b), a))
	require.False(t, m.Implies(a, b))
}

func TestFromFormulaBottomUpWalk(t *testing.T) {
	m := minterm.NewManager(2)

	// Constants, variables, and connectives all reduce to the same BDD
	// nodes direct Manager calls produce.
	got, err := minterm.FromFormula(m, minterm.FNot(minterm.FAnd(minterm.FVar(0), minterm.FTrue())))
	require.NoError(t, err)
	require.Equal(t, m.Not(m.Var(0)), got)

	got, err = minterm.FromFormula(m, minterm.FOr(minterm.FVar(1), minterm.FFalse()))
	require.NoError(t, err)
	require.Equal(t, m.Var(1), got)
}

func TestFromFormulaRejectsBadTrees(t *testing.T) {
	m := minterm.NewManager(1)

	tests := []struct {
		name string
		f    *minterm.Formula
	}{
		{"nil tree", nil},
		{"unknown variable", minterm.FVar(5)},
		{"state leaf", &minterm.Formula{Kind: minterm.FormulaState, Ref: 0}},
		{"node leaf", &minterm.Formula{Kind: minterm.FormulaNode, Ref: 2}},
		{"not arity", &minterm.Formula{Kind: minterm.FormulaNot}},
		{"and arity", minterm.FAnd(minterm.FVar(0))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := minterm.FromFormula(m, tc.f)
			require.ErrorIs(t, err, mataerr.ErrBadInput)
		})
	}
}
