package rx

import (
	"github.com/cottand/regexalg/internal/log"
	"github.com/cottand/regexalg/util/hset"
)

// rxHasher adapts Rx's structural hash to benbjohnson/immutable's Hasher
// interface, so the residue set below can reuse hset.HSet instead of a
// hand-rolled map[uint64]struct{}.
type rxHasher struct{}

func (rxHasher) Hash(value Rx) uint32 { return uint32(value.Hash()) }
func (rxHasher) Equal(a, b Rx) bool   { return Equal(a, b) }

// Accepts decides whether r matches s, by iterating partial derivatives
// over s's characters and checking whether any residue accepts the empty
// string. Residues are deduplicated at each step (a BFS over the set of
// distinct residues reached), which keeps memory bounded by the number of
// distinct residues ever reached without changing the observable boolean
// relative to a non-deduplicating implementation.
func Accepts(r Rx, s string) bool {
	residues := []Rx{r}
	for _, c := range s {
		seen := hset.Empty[Rx](rxHasher{})
		var next []Rx
		for _, res := range residues {
			for _, d := range PartialDeriv(res, c) {
				if isPhiStrict(d) {
					continue
				}
				if seen.Contains(d) {
					continue
				}
				seen.Add(d)
				next = append(next, d)
			}
		}
		residues = next
		log.DefaultLogger.Debug("membership step", "section", "derive", "char", string(c), "residues", len(residues))
		if len(residues) == 0 {
			return false
		}
	}
	for _, res := range residues {
		if AcceptsEmpty(res) {
			return true
		}
	}
	return false
}

// Rejects is the negation of Accepts.
func Rejects(r Rx, s string) bool {
	return !Accepts(r, s)
}
