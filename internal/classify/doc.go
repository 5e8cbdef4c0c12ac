// Package classify splits raw corpus lines into records. A line with the
// expected number of tab-separated fields becomes a Record; anything else is
// reported as unmatched together with the leading fields worth keeping.
package classify
