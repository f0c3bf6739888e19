package nfa_test

import (
	"testing"

	"github.com/matalib/mata/nfa"
	"github.com/matalib/mata/simulation"
	"github.com/stretchr/testify/require"
)

// TestReduceMergesSimulationEquivalentStates builds an automaton with two
// parallel branches reading the same symbols into final states that are
// otherwise indistinguishable, and checks Reduce merges them down while
// preserving acceptance.
func TestReduceMergesSimulationEquivalentStates(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.SetFinal(2)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(0, 'a', 2)
	// 1 and 2 are both final dead ends reachable the same way: equivalent.

	reduced, err := a.Reduce()
	require.NoError(t, err)
	require.LessOrEqual(t, reduced.Size(), a.Size())

	accepted, _ := reduced.Run([]nfa.Symbol{'a'})
	require.True(t, accepted)
}

func TestReduceWithExplicitDirectionStillPreservesLanguage(t *testing.T) {
	a := ab()
	reduced, err := a.Reduce(nfa.WithDirection(simulation.Forward))
	require.NoError(t, err)

	accepted, _ := reduced.Run([]nfa.Symbol{'a', 'b'})
	require.True(t, accepted)
	accepted, _ = reduced.Run([]nfa.Symbol{'b', 'a'})
	require.False(t, accepted)
}

func TestReduceNeverMergesFinalWithNonFinal(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(0, 'a', 2) // 2 is not final

	reduced, err := a.Reduce()
	require.NoError(t, err)
	accepted, _ := reduced.Run([]nfa.Symbol{'a'})
	require.True(t, accepted)
	// the automaton must still reject the empty word.
	accepted, _ = reduced.Run(nil)
	require.False(t, accepted)
}

func TestReduceBackwardDirectionPreservesLanguage(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetInitial(1)
	a.SetFinal(2)
	a.AddTransition(0, 'a', 2)
	a.AddTransition(1, 'a', 2)
	// 0 and 1 are both initial with identical outgoing behavior; the
	// backward relation on the reversed automaton merges them.

	reduced, err := a.Reduce(nfa.WithDirection(simulation.Backward))
	require.NoError(t, err)
	require.LessOrEqual(t, reduced.Size(), a.Size())

	accepted, _ := reduced.Run([]nfa.Symbol{'a'})
	require.True(t, accepted)
	accepted, _ = reduced.Run([]nfa.Symbol{'a', 'a'})
	require.False(t, accepted)
}
