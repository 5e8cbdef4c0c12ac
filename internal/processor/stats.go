package processor

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats summarizes a finished run.
type Stats struct {
	Input  string
	Digest string

	Total     int
	Matched   int
	Unmatched int

	// Destinations of matched lines.
	Words int
	Names int
	Misc  int

	// OffShape counts matched lines that do not fit the variant's pattern.
	OffShape int
	// DroppedFields counts fields lost from unmatched lines beyond the fourth.
	DroppedFields int

	Duration time.Duration
}

// Print writes a human readable summary.
func (s *Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "\n=== Corpus Split Summary ===\n")
	fmt.Fprintf(w, "Input: %s\n", s.Input)
	fmt.Fprintf(w, "Total lines: %s\n", humanize.Comma(int64(s.Total)))
	fmt.Fprintf(w, "Matched: %s (words %s, names %s, misc %s)\n",
		humanize.Comma(int64(s.Matched)),
		humanize.Comma(int64(s.Words)),
		humanize.Comma(int64(s.Names)),
		humanize.Comma(int64(s.Misc)))
	fmt.Fprintf(w, "Unmatched: %s\n", humanize.Comma(int64(s.Unmatched)))
	if s.DroppedFields > 0 {
		fmt.Fprintf(w, "Fields dropped from unmatched lines: %s\n", humanize.Comma(int64(s.DroppedFields)))
	}
	fmt.Fprintf(w, "Elapsed: %s\n", s.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "============================\n")
}
