package processor

import "errors"

var (
	// ErrNoInput means no input file was configured.
	ErrNoInput = errors.New("input file was not specified")
	// ErrInputNotFound means the configured input file does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
)

// ConfigError is a fatal configuration problem detected before any output
// file is opened.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
