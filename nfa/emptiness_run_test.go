package nfa_test

import (
	"testing"

	"github.com/matalib/mata/nfa"
	"github.com/stretchr/testify/require"
)

func TestIsLangEmptyOnEmptyAutomaton(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.AddTransition(0, 'a', 1) // no final state reachable

	empty, witness := a.IsLangEmpty()
	require.True(t, empty)
	require.Nil(t, witness)
}

func TestIsLangEmptyReturnsWitnessForNonEmptyLanguage(t *testing.T) {
	a := ab()

	empty, witness := a.IsLangEmpty()
	require.False(t, empty)
	require.NotNil(t, witness)
	require.Equal(t, []nfa.Symbol{'a', 'b'}, witness.Word)
	require.Equal(t, []nfa.State{0, 1, 2}, witness.Path)

	accepted, _ := a.Run(witness.Word)
	require.True(t, accepted)
}

func TestIsLangEmptyWitnessForDirectlyInitialFinalState(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(0)

	empty, witness := a.IsLangEmpty()
	require.False(t, empty)
	require.Empty(t, witness.Word)
	require.Equal(t, []nfa.State{0}, witness.Path)
}

func TestRunFollowsEpsilonBeforeAndAfterWord(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(3)
	a.AddTransition(0, nfa.EPSILON, 1)
	a.AddTransition(1, 'a', 2)
	a.AddTransition(2, nfa.EPSILON, 3)

	accepted, paths := a.Run([]nfa.Symbol{'a'})
	require.True(t, accepted)
	require.NotEmpty(t, paths)
}

func TestRunRecordsEveryHopOfAMultiHopEpsilonClosure(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(3)
	a.AddTransition(0, nfa.EPSILON, 1)
	a.AddTransition(1, nfa.EPSILON, 2)
	a.AddTransition(2, nfa.EPSILON, 3)

	accepted, paths := a.Run(nil)
	require.True(t, accepted)
	require.Contains(t, paths, []nfa.State{0, 1, 2, 3})
}

func TestRunRejectsWrongWord(t *testing.T) {
	a := ab()
	accepted, paths := a.Run([]nfa.Symbol{'b', 'a'})
	require.False(t, accepted)
	require.Empty(t, paths)
}

func TestRunOnEmptyWordAcceptsOnlyWhenInitialIsFinal(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(0)

	accepted, _ := a.Run(nil)
	require.True(t, accepted)

	b := ab()
	accepted, _ = b.Run(nil)
	require.False(t, accepted)
}
