package nfa_test

import (
	"testing"

	"github.com/matalib/mata/nfa"
	"github.com/stretchr/testify/require"
)

func singleLetter(sym nfa.Symbol) *nfa.Nfa {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.AddTransition(0, sym, 1)

	return a
}

func TestIsIncludedInTrue(t *testing.T) {
	a := singleLetter('x')
	b := nfa.New()
	b.SetInitial(0)
	b.SetFinal(1)
	b.AddTransition(0, 'x', 1)
	b.AddTransition(0, 'y', 1)

	ok, cex := a.IsIncludedIn(b, nil)
	require.True(t, ok)
	require.Nil(t, cex)
}

func TestIsIncludedInFalse(t *testing.T) {
	a := singleLetter('x')
	b := singleLetter('y')

	ok, cex := a.IsIncludedIn(b, nil)
	require.False(t, ok)
	require.Equal(t, []nfa.Symbol{'x'}, cex)
}

func TestIsEquivalentTo(t *testing.T) {
	a := singleLetter('x')
	b := singleLetter('x')
	ok, _ := a.IsEquivalentTo(b, nil)
	require.True(t, ok)

	c := singleLetter('y')
	ok, _ = a.IsEquivalentTo(c, nil)
	require.False(t, ok)
}

func TestIsUniversal(t *testing.T) {
	sigma := []nfa.Symbol{'x', 'y'}

	full := nfa.New()
	full.SetInitial(0)
	full.SetFinal(0)
	full.AddTransition(0, 'x', 0)
	full.AddTransition(0, 'y', 0)

	ok, _ := full.IsUniversal(sigma)
	require.True(t, ok)

	partial := singleLetter('x')
	ok, cex := partial.IsUniversal(sigma)
	require.False(t, ok)
	require.Empty(t, cex) // partial rejects the empty word, already a violation
}
