package translit

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Pair maps one Latin grapheme to its Cyrillic replacement.
type Pair struct {
	Latin    string
	Cyrillic string
}

// latinToCyrillic is the full substitution table. Order carries no meaning:
// the scanner always tries the longest key first.
var latinToCyrillic = []Pair{
	// upper case and title case digraphs
	{"DŽ", "Џ"},
	{"Dž", "Џ"},
	{"LJ", "Љ"},
	{"Lj", "Љ"},
	{"NJ", "Њ"},
	{"Nj", "Њ"},

	// upper case
	{"A", "А"},
	{"B", "Б"},
	{"V", "В"},
	{"G", "Г"},
	{"D", "Д"},
	{"Đ", "Ђ"},
	{"Ð", "Ђ"}, // U+00D0 eth, common stand-in for Đ
	{"E", "Е"},
	{"Ž", "Ж"},
	{"Z", "З"},
	{"I", "И"},
	{"J", "Ј"},
	{"K", "К"},
	{"L", "Л"},
	{"M", "М"},
	{"N", "Н"},
	{"O", "О"},
	{"P", "П"},
	{"R", "Р"},
	{"S", "С"},
	{"T", "Т"},
	{"Ć", "Ћ"},
	{"U", "У"},
	{"F", "Ф"},
	{"H", "Х"},
	{"C", "Ц"},
	{"Č", "Ч"},
	{"Š", "Ш"},

	// lower case
	{"dž", "џ"},
	{"lj", "љ"},
	{"nj", "њ"},
	{"a", "а"},
	{"b", "б"},
	{"v", "в"},
	{"g", "г"},
	{"d", "д"},
	{"đ", "ђ"},
	{"e", "е"},
	{"ž", "ж"},
	{"z", "з"},
	{"i", "и"},
	{"j", "ј"},
	{"k", "к"},
	{"l", "л"},
	{"m", "м"},
	{"n", "н"},
	{"o", "о"},
	{"p", "п"},
	{"r", "р"},
	{"s", "с"},
	{"t", "т"},
	{"ć", "ћ"},
	{"u", "у"},
	{"f", "ф"},
	{"h", "х"},
	{"c", "ц"},
	{"č", "ч"},
	{"š", "ш"},

	// single code point digraph letters (Latin Extended-B)
	{"Ǆ", "Џ"},
	{"ǅ", "Џ"},
	{"ǆ", "џ"},
	{"Ǉ", "Љ"},
	{"ǈ", "Љ"},
	{"ǉ", "љ"},
	{"Ǌ", "Њ"},
	{"ǋ", "Њ"},
	{"ǌ", "њ"},

	// typographic ligature
	{"ﬂ", "фл"},
}

// table is the validated lookup form of a pair list.
type table struct {
	byKey  map[string]string
	maxLen int // longest key, in runes
}

var defaultTable = mustBuildTable(latinToCyrillic)

func mustBuildTable(pairs []Pair) *table {
	t, err := buildTable(pairs)
	if err != nil {
		panic(err)
	}
	return t
}

// buildTable rejects empty keys, duplicate keys and Cyrillic keys.
func buildTable(pairs []Pair) (*table, error) {
	t := &table{byKey: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		if p.Latin == "" {
			return nil, fmt.Errorf("empty Latin key for %q", p.Cyrillic)
		}
		if p.Cyrillic == "" {
			return nil, fmt.Errorf("empty Cyrillic value for %q", p.Latin)
		}
		if _, dup := t.byKey[p.Latin]; dup {
			return nil, fmt.Errorf("duplicate Latin key %q", p.Latin)
		}
		for _, r := range p.Latin {
			if unicode.Is(unicode.Cyrillic, r) {
				return nil, fmt.Errorf("Latin key %q contains Cyrillic rune %q", p.Latin, r)
			}
		}
		t.byKey[p.Latin] = p.Cyrillic
		if n := utf8.RuneCountInString(p.Latin); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t, nil
}

// Pairs returns a copy of the substitution table.
func Pairs() []Pair {
	out := make([]Pair, len(latinToCyrillic))
	copy(out, latinToCyrillic)
	return out
}
