// SynchronizedIterators: lockstep walks over several
// sorted (symbol, target-set) sequences. Two combinators are exposed:
//
//   - SyncUnion walks N StatePosts together and, for every distinct symbol
//     appearing in ANY of them, yields the union of the target sets of the
//     rows that carry it. Used by Determinize's subset construction (union
//     over all member states' outgoing symbols).
//   - SyncCommon walks two StatePosts together and, for every symbol
//     appearing in BOTH, yields both target sets. Used by Product, which
//     only needs symbols common to both operands.
package delta

import "github.com/matalib/mata/ordvec"

// UnionStep is one step of a SyncUnion walk: a symbol and the union of
// targets across every input StatePost that has a post for it.
type UnionStep struct {
	Symbol Symbol
	Union  ordvec.OrdVector[State]
}

// SyncUnion merges rows (already sorted by Symbol, per StatePost's
// invariant) into ascending-symbol UnionSteps.
func SyncUnion(rows []*StatePost) []UnionStep {
	idx := make([]int, len(rows))
	var out []UnionStep
	for {
		// Find the smallest current symbol across all rows not yet exhausted.
		found := false
		var cur Symbol
		for r, row := range rows {
			if idx[r] >= len(row.posts) {
				continue
			}
			s := row.posts[idx[r]].Symbol
			if !found || s < cur {
				cur = s
				found = true
			}
		}
		if !found {
			break
		}

		var union ordvec.OrdVector[State]
		for r, row := range rows {
			if idx[r] < len(row.posts) && row.posts[idx[r]].Symbol == cur {
				union = ordvec.Union(&union, &row.posts[idx[r]].Targets)
				idx[r]++
			}
		}
		out = append(out, UnionStep{Symbol: cur, Union: union})
	}

	return out
}

// CommonStep is one step of a SyncCommon walk: a symbol present in both
// operands, with each operand's target set.
type CommonStep struct {
	Symbol      Symbol
	LeftTargets ordvec.OrdVector[State]
	RightTarget ordvec.OrdVector[State]
}

// SyncCommon merges two StatePosts, yielding only symbols present in both.
func SyncCommon(lhs, rhs *StatePost) []CommonStep {
	var out []CommonStep
	i, j := 0, 0
	for i < len(lhs.posts) && j < len(rhs.posts) {
		switch {
		case lhs.posts[i].Symbol < rhs.posts[j].Symbol:
			i++
		case rhs.posts[j].Symbol < lhs.posts[i].Symbol:
			j++
		default:
			out = append(out, CommonStep{
				Symbol:      lhs.posts[i].Symbol,
				LeftTargets: lhs.posts[i].Targets,
				RightTarget: rhs.posts[j].Targets,
			})
			i++
			j++
		}
	}

	return out
}
