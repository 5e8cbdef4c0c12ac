package router

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"

	"codeberg.org/snonux/lexsplit/internal/testutil"
)

func openBuckets(t *testing.T) (*Buckets, string) {
	t.Helper()

	dir := t.TempDir()
	b, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b, dir
}

func TestOpen_CreatesLayout(t *testing.T) {
	b, dir := openBuckets(t)

	if got, want := b.Len(), 2*len(letters)+2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	for _, l := range letters {
		testutil.AssertFileExists(t, filepath.Join(dir, l.Name, l.Name+"-words.txt"))
		testutil.AssertFileExists(t, filepath.Join(dir, l.Name, l.Name+"-names.txt"))
	}
	testutil.AssertFileExists(t, filepath.Join(dir, "misc", "misc-words.txt"))
	testutil.AssertFileExists(t, filepath.Join(dir, "unmatched", "unmatched-words.txt"))
	testutil.AssertFileNotExists(t, filepath.Join(dir, "misc", "misc-names.txt"))
	testutil.AssertFileNotExists(t, filepath.Join(dir, "unmatched", "unmatched-names.txt"))
}

func TestOpen_DirectoryFailure(t *testing.T) {
	// A regular file where the base directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	testutil.CreateTestFile(t, blocker, []byte("x"))

	if _, err := Open(blocker, nil); err == nil {
		t.Fatal("expected error when base dir is a file")
	}
}

func TestOpen_FileFailure(t *testing.T) {
	// A directory where the last letter's names file should be, so the
	// letter files before it are already open when Open fails.
	dir := t.TempDir()
	last := letters[len(letters)-1].Name
	blocker := filepath.Join(dir, last, last+"-names.txt")
	if err := os.MkdirAll(blocker, 0755); err != nil {
		t.Fatalf("Failed to create blocker: %v", err)
	}

	b, err := Open(dir, nil)
	if err == nil {
		t.Fatal("expected error when an output file cannot be opened")
	}
	if b != nil {
		t.Error("Open() returned buckets alongside an error")
	}
	if !strings.Contains(err.Error(), "failed to open output file") {
		t.Errorf("error = %v, want open failure", err)
	}

	// The files opened before the failure were released and can be reopened.
	if err := os.Remove(blocker); err != nil {
		t.Fatalf("Failed to remove blocker: %v", err)
	}
	again, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open() after failure error = %v", err)
	}
	if err := again.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestRoute(t *testing.T) {
	b, _ := openBuckets(t)

	tests := []struct {
		lemma string
		want  Target
	}{
		{"мачка", Target{"em", Words}},
		{"Београд", Target{"be", Names}},
		{"џеп", Target{"dzhe", Words}},
		{"Љубљана", Target{"lje", Names}},
		{"шума", Target{"sha", Words}},
		{"в2", Target{"ve", Words}},
		{"2в", Target{Misc, Words}},
		{"?", Target{Misc, Words}},
		{"quay", Target{Misc, Words}},
		{"ы", Target{Misc, Words}}, // Cyrillic, but not in the Serbian alphabet
		{"", Target{Misc, Words}},
	}

	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			if got := b.Route(tt.lemma); got != tt.want {
				t.Errorf("Route(%q) = %+v, want %+v", tt.lemma, got, tt.want)
			}
		})
	}
}

func TestRoute_Alphabet(t *testing.T) {
	b, _ := openBuckets(t)

	alphabet := Letters()
	if len(alphabet) != 30 {
		t.Fatalf("Letters() returned %d letters, want 30", len(alphabet))
	}
	for _, l := range alphabet {
		lower := string(l.Rune) + "x"
		if got, want := b.Route(lower), (Target{l.Name, Words}); got != want {
			t.Errorf("Route(%q) = %+v, want %+v", lower, got, want)
		}
		upper := string(unicode.ToUpper(l.Rune)) + "x"
		if got, want := b.Route(upper), (Target{l.Name, Names}); got != want {
			t.Errorf("Route(%q) = %+v, want %+v", upper, got, want)
		}
	}
}

func TestLetters_ReturnsCopy(t *testing.T) {
	got := Letters()
	got[0].Name = "changed"
	if Letters()[0].Name != "a" {
		t.Error("Letters() exposes the package alphabet")
	}
}

func TestWriteAndClose(t *testing.T) {
	b, dir := openBuckets(t)

	if err := b.Write(b.Route("мачка"), "мачка", "мачка", "N", "42"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := b.WriteUnmatched([]string{"???", "foo"}); err != nil {
		t.Fatalf("WriteUnmatched() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	testutil.AssertFileContent(t, filepath.Join(dir, "em", "em-words.txt"), []byte("мачка\tмачка\tN\t42\n"))
	testutil.AssertFileContent(t, filepath.Join(dir, "unmatched", "unmatched-words.txt"), []byte("???\tfoo\n"))
	testutil.AssertFileContent(t, filepath.Join(dir, "em", "em-names.txt"), []byte{})
}

func TestClose_Twice(t *testing.T) {
	b, _ := openBuckets(t)

	if err := b.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", b.Len())
	}
	if err := b.Write(Target{Misc, Words}, "x"); err == nil {
		t.Error("expected error writing after Close")
	}
}

func TestWrite_UnknownTarget(t *testing.T) {
	b, _ := openBuckets(t)

	if err := b.Write(Target{Misc, Names}, "x"); err == nil {
		t.Error("expected error for misc names file")
	}
}

func TestOpen_Appends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "be", "be-names.txt")

	for i := 0; i < 2; i++ {
		b, err := Open(dir, nil)
		if err != nil {
			t.Fatalf("Open() run %d error = %v", i, err)
		}
		if err := b.Write(b.Route("Београд"), "Београд", "Београд", "N", "10"); err != nil {
			t.Fatalf("Write() run %d error = %v", i, err)
		}
		if err := b.Close(); err != nil {
			t.Fatalf("Close() run %d error = %v", i, err)
		}
	}

	want := "Београд\tБеоград\tN\t10\nБеоград\tБеоград\tN\t10\n"
	testutil.AssertFileContent(t, path, []byte(want))
}

func TestBucketNames(t *testing.T) {
	names := BucketNames()
	if len(names) != len(letters)+2 {
		t.Fatalf("len(BucketNames()) = %d", len(names))
	}
	if names[len(names)-2] != Misc || names[len(names)-1] != Unmatched {
		t.Errorf("misc/unmatched not last: %v", names[len(names)-2:])
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate bucket name %q", n)
		}
		seen[n] = true
	}
}

func TestTargetFileName(t *testing.T) {
	if got := (Target{"em", Names}).FileName(); got != "em-names.txt" {
		t.Errorf("FileName() = %q", got)
	}
}
