// Package rxparse translates classical regex syntax into rx.Rx term-algebra
// values. It supports literals, ., character classes ([...] and [^...]
// with ranges), the \d \D \w \W \s \S shorthands, *, +, ?, {m}, {m,},
// {m,n}, | and non-capturing grouping. There is no capture-group or
// backreference support: the term algebra has no construct to express
// either, so "(" only ever introduces a precedence group.
package rxparse

import (
	"strconv"
	"strings"

	"github.com/cottand/regexalg/internal/letterset"
	"github.com/cottand/regexalg/rx"
	"github.com/cottand/regexalg/rxerr"
	"github.com/cottand/regexalg/util"
)

type parser struct {
	pattern []rune
	pos     int
	// groups tracks the opening position of every "(" currently nested,
	// so an unterminated group reports where it started rather than
	// just where parsing gave up.
	groups util.Stack[int]
}

// Parse compiles pattern into an Rx term, or returns a ParseError-coded
// error describing where the pattern is malformed.
func Parse(pattern string) (rx.Rx, error) {
	p := &parser{pattern: []rune(pattern)}
	term, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.pattern) {
		return nil, rxerr.Parse("unexpected %q at position %d", p.pattern[p.pos], p.pos)
	}
	return term, nil
}

func (p *parser) parseAlternation() (rx.Rx, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	result := first
	for p.pos < len(p.pattern) && p.pattern[p.pos] == '|' {
		p.pos++
		next, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		result = rx.Or(result, next)
	}
	return result, nil
}

func (p *parser) parseConcatenation() (rx.Rx, error) {
	var result rx.Rx = rx.Empty
	for p.pos < len(p.pattern) {
		ch := p.pattern[p.pos]
		if ch == ')' || ch == '|' {
			break
		}
		term, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		result = rx.Concat(result, term)
	}
	return result, nil
}

func (p *parser) parseRepetition() (rx.Rx, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.pos < len(p.pattern) {
		switch p.pattern[p.pos] {
		case '*':
			p.pos++
			atom = rx.Star(atom)
		case '+':
			p.pos++
			atom = rx.Concat(atom, rx.Star(atom))
		case '?':
			p.pos++
			atom = rx.Or(atom, rx.Empty)
		case '{':
			bounded, err := p.parseBoundedRepeat(atom)
			if err != nil {
				return nil, err
			}
			atom = bounded
		default:
			return atom, nil
		}
	}
	return atom, nil
}

// parseBoundedRepeat parses the body of a {...} quantifier already
// positioned at the opening brace, translating {m}, {m,} and {m,n} into
// the term algebra's primitives: {m,n} is rx.Repeat directly, {m} is
// rx.Pow, and {m,} (unbounded) has no direct algebra constructor so it
// is built as atom^m · atom*.
func (p *parser) parseBoundedRepeat(atom rx.Rx) (rx.Rx, error) {
	start := p.pos
	p.pos++ // consume '{'
	bodyStart := p.pos
	for p.pos < len(p.pattern) && p.pattern[p.pos] != '}' {
		p.pos++
	}
	if p.pos >= len(p.pattern) {
		return nil, rxerr.Parse("unterminated repeat bound starting at position %d", start)
	}
	body := string(p.pattern[bodyStart:p.pos])
	p.pos++ // consume '}'

	if !strings.Contains(body, ",") {
		m, err := parseNonNegInt(body, start)
		if err != nil {
			return nil, err
		}
		return rx.Pow(atom, m), nil
	}

	head, tail := util.StringTakeUntil(body, ',')
	m, err := parseNonNegInt(head, start)
	if err != nil {
		return nil, err
	}
	if tail == "" {
		return rx.Concat(rx.Pow(atom, m), rx.Star(atom)), nil
	}
	n, err := parseNonNegInt(tail, start)
	if err != nil {
		return nil, err
	}
	result, rerr := rx.Repeat(atom, m, n)
	if rerr != nil {
		return nil, rxerr.Parse("invalid repeat bound {%d,%d} at position %d: %v", m, n, start, rerr)
	}
	return result, nil
}

func parseNonNegInt(s string, pos int) (int, error) {
	if s == "" {
		return 0, rxerr.Parse("missing repeat bound number near position %d", pos)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, rxerr.Parse("invalid repeat bound %q near position %d", s, pos)
	}
	return n, nil
}

func (p *parser) parseAtom() (rx.Rx, error) {
	if p.pos >= len(p.pattern) {
		return nil, rxerr.Parse("unexpected end of pattern")
	}
	ch := p.pattern[p.pos]
	switch ch {
	case '(':
		p.pos++
		p.groups.Push(p.pos - 1)
		sub, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.pattern) || p.pattern[p.pos] != ')' {
			openPos, _ := p.groups.Pop()
			return nil, rxerr.Parse("unterminated group opened at position %d", openPos)
		}
		p.groups.Pop()
		p.pos++
		return sub, nil
	case '.':
		p.pos++
		return rx.Dot, nil
	case '\\':
		return p.parseEscape()
	case '[':
		return p.parseClass()
	case '*', '+', '?', '{', ')', '|':
		return nil, rxerr.Parse("unexpected metacharacter %q at position %d", ch, p.pos)
	default:
		p.pos++
		return rx.Letter(ch), nil
	}
}

func (p *parser) parseEscape() (rx.Rx, error) {
	start := p.pos
	p.pos++ // consume backslash
	if p.pos >= len(p.pattern) {
		return nil, rxerr.Parse("dangling escape at position %d", start)
	}
	esc := p.pattern[p.pos]
	p.pos++
	switch esc {
	case 'd':
		return rx.Range('0', '9'), nil
	case 'D':
		return rx.Not(rx.Range('0', '9')), nil
	case 'w':
		return wordClass(), nil
	case 'W':
		return rx.Not(wordClass()), nil
	case 's':
		return spaceClass(), nil
	case 'S':
		return rx.Not(spaceClass()), nil
	case 'n':
		return rx.Letter('\n'), nil
	case 't':
		return rx.Letter('\t'), nil
	case 'r':
		return rx.Letter('\r'), nil
	default:
		return rx.Letter(esc), nil
	}
}

// parseClass parses a [...] or [^...] character class, positioned at the
// opening bracket. Ranges are collected as util.Pair values before being
// handed to letterset.FromRanges, which normalizes and merges them.
func (p *parser) parseClass() (rx.Rx, error) {
	start := p.pos
	p.pos++ // consume '['
	negate := false
	if p.pos < len(p.pattern) && p.pattern[p.pos] == '^' {
		negate = true
		p.pos++
	}
	var ranges []util.Pair[rune, rune]
	first := true
	for p.pos < len(p.pattern) && (p.pattern[p.pos] != ']' || first) {
		first = false
		lo, err := p.classChar()
		if err != nil {
			return nil, err
		}
		hi := lo
		if p.pos+1 < len(p.pattern) && p.pattern[p.pos] == '-' && p.pattern[p.pos+1] != ']' {
			p.pos++ // consume '-'
			hi, err = p.classChar()
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, rxerr.Parse("invalid range %q-%q in class starting at position %d", lo, hi, start)
			}
		}
		ranges = append(ranges, util.NewPair(lo, hi))
	}
	if p.pos >= len(p.pattern) || p.pattern[p.pos] != ']' {
		return nil, rxerr.Parse("unterminated character class starting at position %d", start)
	}
	p.pos++

	lsRanges := make([]letterset.Range, len(ranges))
	for i, r := range ranges {
		lsRanges[i] = letterset.Range{Lo: r.Fst, Hi: r.Snd}
	}
	set := letterset.FromRanges(lsRanges)
	if negate {
		set = letterset.Full.Diff(set)
	}
	return rx.Letters(set), nil
}

func (p *parser) classChar() (rune, error) {
	c := p.pattern[p.pos]
	if c != '\\' {
		p.pos++
		return c, nil
	}
	p.pos++
	if p.pos >= len(p.pattern) {
		return 0, rxerr.Parse("dangling escape in character class at position %d", p.pos)
	}
	esc := p.pattern[p.pos]
	p.pos++
	switch esc {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	default:
		return esc, nil
	}
}
