package cli

import "os"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile string

	// Input
	InputFile   string
	Regex       string
	FirstNLines int
	Normalize   bool

	// Output
	BaseDir string
	Archive bool

	// Logging
	Debug     bool
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		BaseDir:   os.TempDir(),
		LogFormat: "text",
	}
}
