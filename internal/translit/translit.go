package translit

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Transliterator converts Latin text to Serbian Cyrillic.
type Transliterator struct {
	table     *table
	normalize bool
}

// Option configures a Transliterator.
type Option func(*Transliterator)

// WithNormalization composes input to NFC before conversion, so that a base
// letter followed by a combining caron or acute is matched like the
// precomposed letter.
func WithNormalization() Option {
	return func(t *Transliterator) {
		t.normalize = true
	}
}

// New returns a Transliterator over the built-in table.
func New(opts ...Option) *Transliterator {
	t := &Transliterator{table: defaultTable}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var std = New()

// Transliterate converts s with the default Transliterator.
func Transliterate(s string) string {
	return std.Transliterate(s)
}

// Transliterate replaces every recognized Latin grapheme in s with its
// Cyrillic equivalent, trying the longest candidate first at each position.
// Unrecognized runes are copied unchanged.
func (t *Transliterator) Transliterate(s string) string {
	if s == "" {
		return ""
	}
	if t.normalize {
		s = norm.NFC.String(s)
	}

	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(s); {
		matched := false
		for n := t.table.maxLen; n > 0; n-- {
			end, ok := advanceRunes(s, i, n)
			if !ok {
				continue
			}
			if cyr, found := t.table.byKey[s[i:end]]; found {
				b.WriteString(cyr)
				i = end
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
	}

	return b.String()
}

// advanceRunes returns the byte offset n runes past start, or false when s
// has fewer than n runes left.
func advanceRunes(s string, start, n int) (int, bool) {
	end := start
	for k := 0; k < n; k++ {
		if end >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return end, true
}
