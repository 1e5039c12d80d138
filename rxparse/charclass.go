package rxparse

import "github.com/cottand/regexalg/rx"

// wordClass is \w: ASCII letters, digits and underscore.
func wordClass() rx.Rx {
	return rx.Or(rx.Or(rx.Range('a', 'z'), rx.Range('A', 'Z')), rx.Or(rx.Range('0', '9'), rx.Letter('_')))
}

// spaceClass is \s: the common ASCII whitespace characters.
func spaceClass() rx.Rx {
	var r rx.Rx = rx.Letter(' ')
	for _, c := range []rune{'\t', '\n', '\r', '\f', '\v'} {
		r = rx.Or(r, rx.Letter(c))
	}
	return r
}
