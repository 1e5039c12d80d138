// Package size implements the Size collaborator named in the spec: an
// extended natural number (finite ℕ plus an Unbounded top element) used to
// bound the length of strings a term can match.
package size

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Size is an extended natural: either a finite count or Unbounded (∞).
// The zero value is the finite 0.
type Size struct {
	n         uint64
	unbounded bool
}

// Zero is the finite size 0.
var Zero = Size{}

// One is the finite size 1.
var One = Size{n: 1}

// Unbounded is the extended natural's top element, ∞.
var Unbounded = Size{unbounded: true}

// Of lifts any integer width into a finite Size. Negative values clamp to
// Zero since match-length bounds are never negative.
func Of[T constraints.Integer](v T) Size {
	if v < 0 {
		return Zero
	}
	return Size{n: uint64(v)}
}

// IsUnbounded reports whether s is the top element ∞.
func (s Size) IsUnbounded() bool { return s.unbounded }

// IsZero reports whether s is the finite value 0.
func (s Size) IsZero() bool { return !s.unbounded && s.n == 0 }

// Finite returns s's finite value and true, or (0, false) if s is Unbounded.
func (s Size) Finite() (uint64, bool) {
	if s.unbounded {
		return 0, false
	}
	return s.n, true
}

// Add implements extended-natural addition: Unbounded + x = Unbounded.
func (a Size) Add(b Size) Size {
	if a.unbounded || b.unbounded {
		return Unbounded
	}
	return Size{n: a.n + b.n}
}

// Mul implements extended-natural multiplication: 0·Unbounded = 0,
// n·Unbounded = Unbounded for n ≥ 1.
func (a Size) Mul(b Size) Size {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	if a.unbounded || b.unbounded {
		return Unbounded
	}
	return Size{n: a.n * b.n}
}

// MulInt multiplies by a plain non-negative int, following the same
// 0·Unbounded = 0 rule as Mul; used for Repeat(r,m,n)'s r_lo·m / r_hi·n.
func (a Size) MulInt(k int) Size {
	if k <= 0 {
		return Zero
	}
	return a.Mul(Of(k))
}

// Min returns the smaller of a and b, with Unbounded acting as the top element.
func (a Size) Min(b Size) Size {
	if a.unbounded {
		return b
	}
	if b.unbounded {
		return a
	}
	if a.n < b.n {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func (a Size) Max(b Size) Size {
	if a.unbounded || b.unbounded {
		return Unbounded
	}
	if a.n > b.n {
		return a
	}
	return b
}

// LessEq reports whether a ≤ b in the extended-natural order.
func (a Size) LessEq(b Size) bool {
	if b.unbounded {
		return true
	}
	if a.unbounded {
		return false
	}
	return a.n <= b.n
}

// Equal reports extended-natural equality.
func (a Size) Equal(b Size) bool {
	return a.unbounded == b.unbounded && (a.unbounded || a.n == b.n)
}

func (a Size) String() string {
	if a.unbounded {
		return "∞"
	}
	return fmt.Sprintf("%d", a.n)
}

// Range is a closed bound [Lo, Hi] on the length of matched strings.
type Range struct {
	Lo, Hi Size
}

// Single is the range matching exactly n characters.
func Single(n Size) Range { return Range{Lo: n, Hi: n} }

// Add implements elementwise addition of two ranges, used for Concat.
func (r Range) Add(other Range) Range {
	return Range{Lo: r.Lo.Add(other.Lo), Hi: r.Hi.Add(other.Hi)}
}

// Join implements the ∪-style combination used for Choice: pointwise min/max.
func (r Range) Join(other Range) Range {
	return Range{Lo: r.Lo.Min(other.Lo), Hi: r.Hi.Max(other.Hi)}
}

// Equal compares two ranges for extended-natural equality on both bounds.
func (r Range) Equal(other Range) bool {
	return r.Lo.Equal(other.Lo) && r.Hi.Equal(other.Hi)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s,%s]", r.Lo, r.Hi)
}
