package classify

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownVariant is returned by ParseVariant for empty or unrecognized names.
var ErrUnknownVariant = errors.New("unknown classifier variant")

// Variant selects the field shape a corpus is expected to have.
type Variant int

const (
	// Lex is the morphological lexicon shape: flexform, lemma, tag, frequency.
	Lex Variant = iota + 1
	// Wac is the web-corpus shape, which carries an extra lemma-like column
	// before the tag.
	Wac
)

const (
	punct = `[!"'(),\-.:;?]`
	word  = `[a-zčćžšđâîôﬂǌüöäø’A-ZČĆŽŠĐ0-9_\-]+`
)

var variants = map[Variant]struct {
	name  string
	shape *regexp.Regexp
}{
	Lex: {
		name:  "lex",
		shape: regexp.MustCompile(`^(` + punct + `|` + word + `)\s+(` + punct + `|` + word + `)\s+([a-zA-Z0-9\-]+)\s+(\d+)*`),
	},
	Wac: {
		name:  "wac",
		shape: regexp.MustCompile(`^(` + word + `)\s+(` + punct + `|` + word + `)\s+(` + punct + `|` + word + `)\s+([a-zA-Z0-9\-]+)\s+(\d+)*`),
	},
}

// ParseVariant resolves a variant name such as "lex" or "wac".
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, def := range variants {
		if def.name == name {
			return v, nil
		}
	}
	if name == "" {
		return 0, fmt.Errorf("%w: none selected (want one of %s)", ErrUnknownVariant, strings.Join(Variants(), ", "))
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
}

// Variants lists the recognized variant names in declaration order.
func Variants() []string {
	return []string{Lex.String(), Wac.String()}
}

func (v Variant) String() string {
	if def, ok := variants[v]; ok {
		return def.name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Shape returns the structural pattern for v, or nil for an unknown variant.
func (v Variant) Shape() *regexp.Regexp {
	return variants[v].shape
}
