package router

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind distinguishes the two files of a letter bucket.
type Kind int

const (
	// Words receives lemmas that start in lower case.
	Words Kind = iota
	// Names receives lemmas that start in upper case.
	Names
)

func (k Kind) String() string {
	if k == Names {
		return "names"
	}
	return "words"
}

// Target identifies one output file.
type Target struct {
	Bucket string
	Kind   Kind
}

// FileName returns the base name of the file, e.g. "em-words.txt".
func (t Target) FileName() string {
	return fmt.Sprintf("%s-%s.txt", t.Bucket, t.Kind)
}

type bucketFile struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// Buckets holds every output file of a run open for appending.
type Buckets struct {
	baseDir string
	logger  *slog.Logger
	files   map[Target]*bucketFile
	order   []Target
	byRune  map[rune]string
	closed  bool
}

// Open creates the bucket directory tree below baseDir and opens every output
// file in append mode. All directories are created before the first file is
// opened. If opening any file fails, the ones already open are closed.
func Open(baseDir string, logger *slog.Logger) (*Buckets, error) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, name := range BucketNames() {
		dir := filepath.Join(baseDir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	b := &Buckets{
		baseDir: baseDir,
		logger:  logger,
		files:   make(map[Target]*bucketFile, 2*len(letters)+2),
		byRune:  make(map[rune]string, len(letters)),
	}
	for _, l := range Letters() {
		b.byRune[l.Rune] = l.Name
	}

	for _, t := range targets() {
		if err := b.open(t); err != nil {
			return nil, errors.Join(err, b.Close())
		}
	}

	return b, nil
}

// targets lists every output file in a stable order.
func targets() []Target {
	ts := make([]Target, 0, 2*len(letters)+2)
	for _, l := range letters {
		ts = append(ts, Target{l.Name, Words}, Target{l.Name, Names})
	}
	return append(ts, Target{Misc, Words}, Target{Unmatched, Words})
}

func (b *Buckets) open(t Target) error {
	path := b.Path(t)
	b.logger.Debug("Opening output file", "path", path)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	b.files[t] = &bucketFile{path: path, file: f, w: bufio.NewWriter(f)}
	b.order = append(b.order, t)
	return nil
}

// Path returns the location of t below the base directory.
func (b *Buckets) Path(t Target) string {
	return filepath.Join(b.baseDir, t.Bucket, t.FileName())
}

// Route picks the output file for a transliterated lemma from its first rune.
// A rune whose lower-case form is a Cyrillic letter goes to that letter's
// words file when already lower case and to its names file otherwise.
// Everything else, including an empty lemma, goes to misc.
func (b *Buckets) Route(lemma string) Target {
	r, size := utf8.DecodeRuneInString(lemma)
	if size == 0 {
		return Target{Misc, Words}
	}

	lower := unicode.ToLower(r)
	name, ok := b.byRune[lower]
	if !ok {
		return Target{Misc, Words}
	}
	if r == lower {
		return Target{name, Words}
	}
	return Target{name, Names}
}

// Write appends fields to t as one tab-separated, newline-terminated line.
func (b *Buckets) Write(t Target, fields ...string) error {
	if b.closed {
		return errors.New("write to closed buckets")
	}
	bf, ok := b.files[t]
	if !ok {
		return fmt.Errorf("no output file for %s", t.FileName())
	}

	if _, err := bf.w.WriteString(strings.Join(fields, "\t")); err != nil {
		return fmt.Errorf("failed to write %s: %w", bf.path, err)
	}
	if err := bf.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write %s: %w", bf.path, err)
	}
	return nil
}

// WriteUnmatched appends the preserved fields of a line that did not classify.
func (b *Buckets) WriteUnmatched(fields []string) error {
	return b.Write(Target{Unmatched, Words}, fields...)
}

// Close flushes and closes every open file. Calling it again is a no-op.
func (b *Buckets) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	for _, t := range b.order {
		bf := b.files[t]
		b.logger.Debug("Closing output file", "path", bf.path)
		if err := bf.w.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush %s: %w", bf.path, err))
		}
		if err := bf.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", bf.path, err))
		}
	}
	return errors.Join(errs...)
}

// Len reports how many files are open.
func (b *Buckets) Len() int {
	if b.closed {
		return 0
	}
	return len(b.order)
}
