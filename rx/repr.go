package rx

import (
	"fmt"
	"strings"

	"github.com/cottand/regexalg/internal/letterset"
)

// precedence levels used to decide when Repr needs parentheses: choice
// binds loosest, then concatenation, then the postfix star/repeat
// operators; atoms never need parenthesizing.
const (
	precChoice = 0
	precConcat = 1
	precPostfix = 2
	precAtom    = 3
)

func termPrec(r Rx) int {
	switch r.(type) {
	case choiceNode:
		return precChoice
	case concatNode:
		return precConcat
	case starNode, repeatNode:
		return precPostfix
	default:
		return precAtom
	}
}

// Repr renders r as classical regex syntax: ∅ for the empty language, ""
// for the empty string, backslash-escaped literals, bracketed character
// classes, postfix * and {m,n}, and flattened | / juxtaposition for
// choice and concatenation. Repr never emits capturing groups; the
// parentheses it does emit exist only to preserve precedence.
func Repr(r Rx) string {
	var sb strings.Builder
	writeTerm(&sb, r, precChoice)
	return sb.String()
}

func writeTerm(sb *strings.Builder, r Rx, minPrec int) {
	if termPrec(r) < minPrec {
		sb.WriteByte('(')
		writeTermInner(sb, r)
		sb.WriteByte(')')
		return
	}
	writeTermInner(sb, r)
}

func writeTermInner(sb *strings.Builder, r Rx) {
	switch n := r.(type) {
	case phiNode:
		sb.WriteString("∅")
	case emptyNode:
		sb.WriteString(`""`)
	case letterNode:
		writeEscapedLiteral(sb, n.c)
	case lettersNode:
		writeLetterSet(sb, n.s)
	case choiceNode:
		writeTerm(sb, n.l, precChoice)
		sb.WriteByte('|')
		writeTerm(sb, n.r, precChoice)
	case concatNode:
		writeTerm(sb, n.l, precConcat)
		writeTerm(sb, n.r, precConcat)
	case starNode:
		writeTerm(sb, n.r, precAtom)
		sb.WriteByte('*')
	case repeatNode:
		writeTerm(sb, n.r, precAtom)
		fmt.Fprintf(sb, "{%d,%d}", n.m, n.n)
	case varNode:
		internalVarEscape("Repr")
	default:
		internalInvariant("Repr: unhandled term variant %T", r)
	}
}

func writeEscapedLiteral(sb *strings.Builder, c rune) {
	switch c {
	case '.', '*', '+', '?', '|', '(', ')', '[', ']', '{', '}', '\\', '^', '$':
		sb.WriteByte('\\')
	}
	sb.WriteRune(c)
}

func writeClassRune(sb *strings.Builder, c rune) {
	switch c {
	case ']', '^', '-', '\\':
		sb.WriteByte('\\')
	}
	sb.WriteRune(c)
}

func writeLetterSet(sb *strings.Builder, s letterset.LetterSet) {
	if s.Equal(letterset.Full) {
		sb.WriteByte('.')
		return
	}
	sb.WriteByte('[')
	for _, rg := range s.Ranges() {
		writeClassRune(sb, rg.Lo)
		if rg.Hi != rg.Lo {
			sb.WriteByte('-')
			writeClassRune(sb, rg.Hi)
		}
	}
	sb.WriteByte(']')
}

// Debug renders r as a Go-constructor-shaped expression, for diagnostics
// and test failure messages where the exact tree shape matters more than
// readability.
func Debug(r Rx) string {
	switch n := r.(type) {
	case phiNode:
		return "Phi"
	case emptyNode:
		return "Empty"
	case letterNode:
		return fmt.Sprintf("Letter(%q)", n.c)
	case lettersNode:
		return fmt.Sprintf("Letters(%s)", n.s.String())
	case choiceNode:
		return fmt.Sprintf("Or(%s, %s)", Debug(n.l), Debug(n.r))
	case concatNode:
		return fmt.Sprintf("Concat(%s, %s)", Debug(n.l), Debug(n.r))
	case starNode:
		return fmt.Sprintf("Star(%s)", Debug(n.r))
	case repeatNode:
		return fmt.Sprintf("Repeat(%s, %d, %d)", Debug(n.r), n.m, n.n)
	case varNode:
		return fmt.Sprintf("Var(%d)", n.k)
	default:
		return fmt.Sprintf("<%T>", r)
	}
}
