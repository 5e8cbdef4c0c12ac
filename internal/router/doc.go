// Package router owns the per-letter output files of a run and decides which
// of them a record belongs to.
//
// Every letter of the Serbian Cyrillic alphabet has a directory named after
// the letter's Latin spelling, holding a words file for lemmas that start in
// lower case and a names file for lemmas that start in upper case. Two extra
// buckets, misc and unmatched, hold a single words file each: misc receives
// records whose lemma does not start with a Cyrillic letter, unmatched
// receives lines that could not be split into a record at all.
package router
