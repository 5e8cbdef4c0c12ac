// Package translit converts Latin-script Serbian and Croatian text into
// Serbian Cyrillic. Digraphs such as "dž", "lj" and "nj" map to a single
// Cyrillic letter and are always matched before their one-letter prefixes.
package translit
