// Package batch reads a corpus file line by line. Plain, gzip and xz
// compressed inputs are recognized by file extension.
package batch
