package nfa_test

import (
	"testing"

	"github.com/matalib/mata/alphabet"
	"github.com/matalib/mata/nfa"
	"github.com/stretchr/testify/require"
)

func TestMakeCompleteAddsSinkOnlyWhenNeeded(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.AddTransition(0, 'a', 1)

	sigma := []nfa.Symbol{'a', 'b'}
	complete := a.MakeComplete(sigma, 99)

	for _, q := range []nfa.State{0, 1, 99} {
		have := map[nfa.Symbol]bool{}
		for _, tgt := range complete.Post(q, 'a') {
			_ = tgt
			have['a'] = true
		}
		for _, tgt := range complete.Post(q, 'b') {
			_ = tgt
			have['b'] = true
		}
		require.True(t, have['a'], "state %d missing 'a'", q)
		require.True(t, have['b'], "state %d missing 'b'", q)
	}
}

func TestMakeCompleteNoOpWhenAlreadyComplete(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(0)
	a.AddTransition(0, 'a', 0)

	complete := a.MakeComplete([]nfa.Symbol{'a'}, 7)
	// sink (7) should have no outgoing transitions since nothing redirected.
	require.Empty(t, complete.Post(7, 'a'))
}

func TestCompleteWithAlphabetDelegatesToMakeComplete(t *testing.T) {
	direct := alphabet.NewDirect()
	symA := direct.AddAuto("a")
	symB := direct.AddAuto("b")

	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.AddTransition(0, symA, 1)

	out := a.CompleteWithAlphabet(direct, 5)
	require.NotEmpty(t, out.Post(0, symB))
}

func TestComplementAcceptsExactlyTheComplement(t *testing.T) {
	a := ab() // accepts only "ab" over {a,b}

	sigma := []nfa.Symbol{'a', 'b'}
	comp := a.Complement(sigma, 999)

	accepted, _ := comp.Run([]nfa.Symbol{'a', 'b'})
	require.False(t, accepted)

	accepted, _ = comp.Run([]nfa.Symbol{'a', 'a'})
	require.True(t, accepted)

	accepted, _ = comp.Run(nil)
	require.True(t, accepted)
}

func TestComplementWithAlphabetDelegatesToComplement(t *testing.T) {
	direct := alphabet.NewDirect()
	symA := direct.AddAuto("a")
	symB := direct.AddAuto("b")

	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.AddTransition(0, symA, 1)
	a.AddTransition(1, symB, 0)

	comp := a.ComplementWithAlphabet(direct, 999)

	accepted, _ := comp.Run([]nfa.Symbol{symA})
	require.False(t, accepted)
	accepted, _ = comp.Run(nil)
	require.True(t, accepted)
}

func TestMinimizeProducesLanguageEquivalentDeterministicResult(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.SetFinal(2)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(0, 'a', 2)
	a.AddTransition(1, 'b', 1)
	a.AddTransition(2, 'b', 2)

	min := a.Minimize()
	require.True(t, min.IsDeterministic())

	accepted, _ := min.Run([]nfa.Symbol{'a', 'b', 'b'})
	require.True(t, accepted)
	accepted, _ = min.Run([]nfa.Symbol{'b'})
	require.False(t, accepted)
}
