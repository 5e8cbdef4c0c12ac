package processor

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"codeberg.org/snonux/lexsplit/internal/archive"
	"codeberg.org/snonux/lexsplit/internal/batch"
	"codeberg.org/snonux/lexsplit/internal/classify"
	"codeberg.org/snonux/lexsplit/internal/cli"
	"codeberg.org/snonux/lexsplit/internal/router"
	"codeberg.org/snonux/lexsplit/internal/translit"
)

// Processor handles one corpus split
type Processor struct {
	flags  *cli.Flags
	logger *slog.Logger
	state  State

	classifier     *classify.Classifier
	transliterator *translit.Transliterator
}

// NewProcessor creates a new processor. A nil logger uses slog.Default().
func NewProcessor(flags *cli.Flags, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}

	var opts []translit.Option
	if flags.Normalize {
		opts = append(opts, translit.WithNormalization())
	}

	return &Processor{
		flags:          flags,
		logger:         logger,
		transliterator: translit.New(opts...),
	}
}

// State returns the phase the processor is in.
func (p *Processor) State() State {
	return p.state
}

func (p *Processor) setState(s State) {
	p.state = s
	p.logger.Debug("Entering state", "state", s.String())
}

// Run performs the split. Configuration problems, an unreadable input
// included, are returned as *ConfigError before any output file is touched.
// Once the buckets are open they are closed on every return path.
func (p *Processor) Run() (stats *Stats, err error) {
	start := time.Now()

	p.setState(Initializing)
	variant, err := p.validate()
	if err != nil {
		return nil, err
	}
	p.classifier = classify.New(variant)

	in, err := batch.Open(p.flags.InputFile)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	defer in.Close()

	stats = &Stats{Input: p.flags.InputFile}
	if stats.Digest, err = batch.Fingerprint(p.flags.InputFile); err != nil {
		return nil, &ConfigError{Err: err}
	}

	p.setState(Open)
	if p.flags.Archive {
		archived, err := archive.ArchiveBuckets(p.flags.BaseDir, router.BucketNames())
		if err != nil {
			return nil, fmt.Errorf("failed to archive previous output: %w", err)
		}
		if archived != "" {
			p.logger.Info("Archived previous output", "path", archived)
		}
	}

	buckets, err := router.Open(p.flags.BaseDir, p.logger)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	defer func() {
		p.setState(Closing)
		if cerr := buckets.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output files: %w", cerr)
		}
		if err == nil {
			p.setState(Done)
		}
	}()

	p.setState(Processing)
	p.logger.Info("Started processing input file",
		"input", p.flags.InputFile,
		"variant", variant.String(),
		"blake3", stats.Digest,
		"base_dir", p.flags.BaseDir)

	if err := p.processLines(in, buckets, stats); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	p.logger.Info("Finished processing input file",
		"input", p.flags.InputFile,
		"total", stats.Total,
		"matched", stats.Matched,
		"unmatched", stats.Unmatched)

	return stats, nil
}

// validate checks the configuration and resolves the classifier variant.
func (p *Processor) validate() (classify.Variant, error) {
	p.logger.Debug("Configuration", "flags", fmt.Sprintf("%+v", *p.flags))

	if p.flags.InputFile == "" {
		return 0, &ConfigError{Err: ErrNoInput}
	}
	if _, err := os.Stat(p.flags.InputFile); err != nil {
		if os.IsNotExist(err) {
			return 0, &ConfigError{Err: fmt.Errorf("%w: %s", ErrInputNotFound, p.flags.InputFile)}
		}
		return 0, &ConfigError{Err: fmt.Errorf("unable to open input file: %w", err)}
	}

	variant, err := classify.ParseVariant(p.flags.Regex)
	if err != nil {
		return 0, &ConfigError{Err: err}
	}
	if p.flags.FirstNLines < 0 {
		return 0, &ConfigError{Err: fmt.Errorf("first-n-lines must not be negative, got %d", p.flags.FirstNLines)}
	}
	return variant, nil
}

func (p *Processor) processLines(in *batch.Reader, buckets *router.Buckets, stats *Stats) error {
	limit := p.flags.FirstNLines

	for in.Next() {
		stats.Total++
		if err := p.processLine(in.Count(), in.Line(), in.Truncated(), buckets, stats); err != nil {
			return err
		}
		if limit > 0 && stats.Total >= limit {
			p.logger.Info("Line limit reached", "limit", limit)
			break
		}
	}
	return in.Err()
}

func (p *Processor) processLine(lineNo int, line string, truncated bool, buckets *router.Buckets, stats *Stats) error {
	var res classify.Result
	if truncated {
		// Only the head of the line was kept, so it is never a record.
		p.logger.Warn("Line too long",
			"line_no", lineNo,
			"kept_bytes", len(line),
			"max_bytes", batch.MaxLineSize)
		res = classify.Unmatched(line)
	} else {
		res = p.classifier.Classify(line)
	}

	if !res.Matched {
		stats.Unmatched++
		stats.DroppedFields += res.Dropped
		p.logger.Warn("Unmatched line",
			"line_no", lineNo,
			"line", line,
			"fields", len(res.Fields)+res.Dropped,
			"dropped", res.Dropped)
		return buckets.WriteUnmatched(res.Fields)
	}

	stats.Matched++
	rec := res.Record
	if !res.ShapeOK {
		stats.OffShape++
		p.logger.Debug("Line does not fit variant shape",
			"line_no", lineNo,
			"variant", p.classifier.Variant().String())
	}

	flexform := p.transliterator.Transliterate(rec.Flexform)
	lemma := p.transliterator.Transliterate(rec.Lemma)
	target := buckets.Route(lemma)

	p.logger.Debug("Routing record",
		"line_no", lineNo,
		"flexform", flexform,
		"lemma", lemma,
		"tag", rec.Tag,
		"frequency", rec.Frequency,
		"file", target.FileName())

	switch {
	case target.Bucket == router.Misc:
		stats.Misc++
	case target.Kind == router.Names:
		stats.Names++
	default:
		stats.Words++
	}

	return buckets.Write(target, flexform, lemma, rec.Tag, rec.Frequency)
}
