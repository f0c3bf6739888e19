// Package mata is an in-memory nondeterministic finite automaton (NFA)
// library for Go: build automata over a 64-bit symbol alphabet, run the
// classical graph-level constructions (trim, reverse, epsilon elimination,
// determinize, product, concatenation, complement, Brzozowski minimize),
// decide language questions (emptiness with a witness, inclusion,
// universality, equivalence via an antichain algorithm), and reduce an
// automaton by a Paige-Tarjan-style simulation quotient.
//
// Everything is organized under one package per concern, the way its
// ancestor graph-theory library organized core/matrix/algorithms:
//
//	ordvec/     — sorted deduplicated generic vector
//	sparseset/  — O(1) small-integer set
//	symbol/     — the alphabet value type and its epsilon sentinels
//	delta/      — the sparse transition relation and its synchronized walks
//	nfa/        — the Nfa type and its graph-level algorithms
//	tarjan/     — a non-recursive SCC walker used for usefulness/emptiness
//	antichain/  — inclusion, universality, and equivalence checking
//	simulation/ — the LTS partition-refinement simulation engine
//	matrix/     — the growable square relation matrix behind simulation
//	minterm/    — BDD-backed mintermization for symbolic alphabets
//	ibuilder/   — the neutral IntermediateAut record and its Nfa builders
//	serialize/  — DOT and `.mata` text emission
//	alphabet/   — the external, possibly-dynamic alphabet contract
//	paramset/   — the string-keyed algorithm-selection parameter decoder
//	mataerr/    — the cross-cutting error-kind sentinels
//
// cmd/matacli is a thin command-line harness exercising the library end to
// end; building automata from a `.mata` text file is intentionally out of
// scope for this module.
package mata
