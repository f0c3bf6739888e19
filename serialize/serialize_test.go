package serialize_test

import (
	"strings"
	"testing"

	"github.com/matalib/mata/nfa"
	"github.com/matalib/mata/serialize"
	"github.com/stretchr/testify/require"
)

func sampleNfa() *nfa.Nfa {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(1)
	a.AddTransition(0, 'x', 1)

	return a
}

func TestToDOT(t *testing.T) {
	out := serialize.ToDOT(sampleNfa())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Equal(t, "digraph finiteAutomaton {", lines[0])
	require.Equal(t, "node [shape=circle];", lines[1])
	require.Equal(t, "1 [shape=doublecircle];", lines[2])
	require.Equal(t, "0 -> {1 } [label=120];", lines[3])
	require.Equal(t, `node [shape=none, label=""];`, lines[4])
	require.Equal(t, "i0 -> 0;", lines[5])
	require.Equal(t, "}", lines[6])
}

func TestToDOTGroupsTargetsPerSymbol(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetFinal(2)
	a.AddTransition(0, 'x', 1)
	a.AddTransition(0, 'x', 2)

	out := serialize.ToDOT(a)
	require.Contains(t, out, "0 -> {1 2 } [label=120];")
}

func TestToMata(t *testing.T) {
	out := serialize.ToMata(sampleNfa())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Equal(t, "@NFA-explicit", lines[0])
	require.Equal(t, "%Alphabet-auto", lines[1])
	require.Equal(t, "%Initial q0", lines[2])
	require.Equal(t, "%Final q1", lines[3])
	require.Equal(t, "q0 120 q1", lines[4])
}

func TestToMataMultipleInitialAndFinalStatesOnOneLine(t *testing.T) {
	a := nfa.New()
	a.SetInitial(0)
	a.SetInitial(1)
	a.SetFinal(2)
	a.SetFinal(3)

	out := serialize.ToMata(a)
	require.True(t, strings.Contains(out, "%Initial q0 q1\n"))
	require.True(t, strings.Contains(out, "%Final q2 q3\n"))
}

func TestToMataNFTWithLevels(t *testing.T) {
	a := sampleNfa()
	a.Levels = map[nfa.State]uint{0: 0, 1: 1}
	out := serialize.ToMataNFT(a)
	require.True(t, strings.Contains(out, "%LevelsCnt 2\n"))
	require.True(t, strings.Contains(out, "%Levels q0:0 q1:1\n"))
}
