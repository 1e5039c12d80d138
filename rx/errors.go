package rx

import "github.com/cottand/regexalg/rxerr"

func invalidRepeat(m, n int) error {
	return rxerr.Invalid("repeat bounds must satisfy 0 <= m <= n, got m=%d n=%d", m, n)
}

// internalVarEscape panics with an InternalInvariant error: a Var node
// reached code outside the single algorithm activation that introduced it.
// This is always a bug in this package, never a caller error.
func internalVarEscape(op string) {
	panic(rxerr.Internal("Var node escaped its activation during %s", op))
}

func internalInvariant(format string, args ...any) {
	panic(rxerr.Internal(format, args...))
}
