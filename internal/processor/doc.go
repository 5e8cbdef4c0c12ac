// Package processor runs one corpus split from start to finish: it checks
// the configuration, opens the output buckets, classifies, transliterates and
// routes every input line, and closes all files again before reporting the
// line counts.
package processor
