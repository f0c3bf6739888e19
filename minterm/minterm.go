package minterm

// Minterm is one disjoint, covering atom of the Boolean subalgebra
// generated by the input formulae, identified
// by its representative BDD node.
type Minterm struct {
	Formula Node
}

// Mintermize computes the coarsest set of pairwise-disjoint, jointly
// exhaustive minterms such that every formula in formulas is exactly the
// union of the minterms it implies.
//
// Starting from the single minterm "true", each formula splits every
// current minterm m into m∧φ and m∧¬φ, keeping only the satisfiable half
// (or halves) — the classical incremental partition-refinement
// construction for minterms, mirrored here on Delta's subset-refinement
// used by Determinize (nfa/determinize.go) rather than a novel algorithm.
func Mintermize(m *Manager, formulas []Node) []Minterm {
	current := []Node{m.True()}

	for _, phi := range formulas {
		var next []Node
		for _, part := range current {
			pos := m.And(part, phi)
			neg := m.And(part, m.Not(phi))
			if !m.IsUnsat(pos) {
				next = append(next, pos)
			}
			if !m.IsUnsat(neg) {
				next = append(next, neg)
			}
		}
		current = next
	}

	out := make([]Minterm, len(current))
	for i, f := range current {
		out[i] = Minterm{Formula: f}
	}

	return out
}

// Cover returns, for formula phi, the indices into minterms of every
// minterm phi implies — the set of explicit minterms an edge labeled phi
// expands into.
func Cover(m *Manager, phi Node, minterms []Minterm) []int {
	var idxs []int
	for i, mt := range minterms {
		if m.Implies(mt.Formula, phi) {
			idxs = append(idxs, i)
		}
	}

	return idxs
}
