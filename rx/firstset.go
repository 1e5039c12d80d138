package rx

import "github.com/cottand/regexalg/internal/letterset"

// FirstSet returns a list of pairwise disjoint LetterSets covering exactly
// the characters that may begin some string r accepts. Each element is a
// congruence class: every character in it takes the same derivative step
// of r. Disjointness is maintained by routing every composite case through
// letterset.Venn, the correctness-critical primitive behind this function.
func FirstSet(r Rx) []letterset.LetterSet {
	switch n := r.(type) {
	case phiNode, emptyNode:
		return nil
	case letterNode:
		return []letterset.LetterSet{letterset.Single(n.c)}
	case lettersNode:
		return []letterset.LetterSet{n.s}
	case starNode:
		return FirstSet(n.r)
	case repeatNode:
		return FirstSet(n.r)
	case concatNode:
		if !AcceptsEmpty(n.l) {
			return FirstSet(n.l)
		}
		return vennSets(FirstSet(n.l), FirstSet(n.r))
	case choiceNode:
		return vennSets(FirstSet(n.l), FirstSet(n.r))
	case varNode:
		internalVarEscape("FirstSet")
		panic("unreachable")
	default:
		internalInvariant("FirstSet: unhandled term variant %T", r)
		panic("unreachable")
	}
}

// vennSets partitions a ∪ b via letterset.Venn and keeps only the
// resulting character sets, discarding the Left/Right/Both tags — which is
// exactly what FirstSet needs: a disjoint cover of the union.
func vennSets(a, b []letterset.LetterSet) []letterset.LetterSet {
	pieces := letterset.Venn(a, b)
	out := make([]letterset.LetterSet, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Set)
	}
	return out
}
