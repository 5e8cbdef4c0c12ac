package batch

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// MaxLineSize bounds the part of a single corpus line that is kept. Longer
// lines are cut to this many bytes and reported through Truncated.
const MaxLineSize = 1 << 20

// Reader yields the lines of a corpus file with terminators removed.
type Reader struct {
	path         string
	file         *os.File
	decompressor io.Closer
	br           *bufio.Reader
	line         string
	truncated    bool
	count        int
	err          error
}

// Open opens path for reading, decompressing .gz and .xz files on the fly.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	var src io.Reader = f
	var decompressor io.Closer

	switch {
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		src = gzr
		decompressor = gzr
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		src = xzr
	}

	return &Reader{
		path:         path,
		file:         f,
		decompressor: decompressor,
		br:           bufio.NewReaderSize(src, 64*1024),
	}, nil
}

// Next advances to the next line and reports whether there is one. A line
// longer than MaxLineSize is still returned, cut short, and the rest of it is
// skipped.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	var buf []byte
	truncated := false
	read := false

	for {
		chunk, err := r.br.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		content := chunk
		if err == nil {
			content = bytes.TrimSuffix(bytes.TrimSuffix(content, []byte{'\n'}), []byte{'\r'})
		}
		if room := MaxLineSize - len(buf); len(content) > room {
			buf = append(buf, content[:room]...)
			truncated = true
		} else {
			buf = append(buf, content...)
		}

		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF {
			if !read {
				return false
			}
			break
		}
		if err != nil {
			r.err = err
			return false
		}
		break
	}

	r.line = trimTerminator(string(buf))
	r.truncated = truncated
	r.count++
	return true
}

// Line returns the current line.
func (r *Reader) Line() string {
	return r.line
}

// Truncated reports whether the current line exceeded MaxLineSize.
func (r *Reader) Truncated() bool {
	return r.truncated
}

// Count returns how many lines have been read so far.
func (r *Reader) Count() int {
	return r.count
}

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	if r.err != nil {
		return fmt.Errorf("failed to read %s at line %d: %w", r.path, r.count+1, r.err)
	}
	return nil
}

// Close closes the input and any decompressor.
func (r *Reader) Close() error {
	var first error
	if r.decompressor != nil {
		first = r.decompressor.Close()
	}
	if err := r.file.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

// trimTerminator removes what is left of a line terminator after the "\n"
// itself, so "\r\n" and "\r\r\n" endings both come out clean.
func trimTerminator(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// Fingerprint returns the hex BLAKE3 digest of the raw (still compressed)
// file at path.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash input file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
