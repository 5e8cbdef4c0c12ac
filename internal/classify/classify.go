package classify

import "strings"

// Separator is the corpus field separator.
const Separator = "\t"

// A record has four fields plus an optional fifth group. Four-field lines
// such as "mačka\tmačka\tN\t42" are records too: the corpora in use carry
// the trailing group only on some lines.
const (
	minFields  = 4 // flexform, lemma, tag, frequency
	maxFields  = 5 // plus the optional trailing group
	keepFields = 4
)

// Record is one well-formed corpus entry.
type Record struct {
	Flexform  string
	Lemma     string
	Tag       string
	Frequency string
}

// Fields returns the record in output column order.
func (r Record) Fields() []string {
	return []string{r.Flexform, r.Lemma, r.Tag, r.Frequency}
}

// Result is the outcome of classifying a single line.
type Result struct {
	Matched bool
	Record  Record

	// ShapeOK reports whether a matched line also fits the variant's
	// structural pattern. It does not affect routing.
	ShapeOK bool

	// Fields holds the preserved leading fields of an unmatched line.
	Fields []string
	// Dropped counts the fields beyond the fourth that were discarded.
	Dropped int
}

// Classifier splits lines according to one Variant.
type Classifier struct {
	variant Variant
}

// New returns a Classifier for v.
func New(v Variant) *Classifier {
	return &Classifier{variant: v}
}

// Variant returns the variant the classifier was built with.
func (c *Classifier) Variant() Variant {
	return c.variant
}

// Classify splits line on tabs. The line must already have its terminator
// removed.
func (c *Classifier) Classify(line string) Result {
	tokens := strings.Split(line, Separator)

	if len(tokens) >= minFields && len(tokens) <= maxFields {
		res := Result{
			Matched: true,
			Record: Record{
				Flexform:  tokens[0],
				Lemma:     tokens[1],
				Tag:       tokens[2],
				Frequency: tokens[3],
			},
		}
		if shape := c.variant.Shape(); shape != nil {
			res.ShapeOK = shape.MatchString(line)
		}
		return res
	}

	return unmatched(tokens)
}

// Unmatched reports line as unmatched regardless of its shape, keeping the
// leading fields the same way Classify does.
func Unmatched(line string) Result {
	return unmatched(strings.Split(line, Separator))
}

// unmatched keeps at most the first four fields; the rest are lost.
func unmatched(tokens []string) Result {
	res := Result{Fields: tokens}
	if len(tokens) > keepFields {
		res.Fields = tokens[:keepFields]
		res.Dropped = len(tokens) - keepFields
	}
	return res
}
