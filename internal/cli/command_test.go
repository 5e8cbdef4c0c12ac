package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// resetViper clears global viper state for the duration of a test.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "lexsplit" {
		t.Errorf("Expected Use to be 'lexsplit', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "transliterator") {
		t.Errorf("Expected Short description to mention the transliterator, got %q", cmd.Short)
	}

	flagTests := []struct {
		name      string
		shorthand string
	}{
		{"config", ""},
		{"input-file", "i"},
		{"base-dir", "b"},
		{"regex", "r"},
		{"debug", "d"},
		{"first-n-lines", "n"},
		{"normalize", ""},
		{"archive", ""},
		{"log-format", ""},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Fatalf("Expected flag %s to exist", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("flag %s shorthand = %q, want %q", tt.name, flag.Shorthand, tt.shorthand)
			}
		})
	}
}

func TestCreateRootCommand_RejectsArgs(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())
	if err := cmd.Args(cmd, []string{"stray"}); err == nil {
		t.Error("Expected positional arguments to be rejected")
	}
}

func TestSetupFlags(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	baseDir := cmd.Flags().Lookup("base-dir")
	if baseDir == nil {
		t.Fatal("base-dir flag not found")
	}
	if baseDir.DefValue != os.TempDir() {
		t.Errorf("Expected default base dir to be %s, got %s", os.TempDir(), baseDir.DefValue)
	}

	regex := cmd.Flags().Lookup("regex")
	if !strings.Contains(regex.Usage, "lex") || !strings.Contains(regex.Usage, "wac") {
		t.Errorf("regex usage does not list variants: %q", regex.Usage)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	cmd.Flags().Set("input-file", "/corpus/sr.txt")
	cmd.Flags().Set("regex", "wac")
	cmd.Flags().Set("first-n-lines", "25")

	if got := viper.GetString("input.file"); got != "/corpus/sr.txt" {
		t.Errorf("Expected input.file to be /corpus/sr.txt, got %s", got)
	}
	if got := viper.GetString("classifier.variant"); got != "wac" {
		t.Errorf("Expected classifier.variant to be wac, got %s", got)
	}
	if got := viper.GetInt("input.first_n_lines"); got != 25 {
		t.Errorf("Expected input.first_n_lines to be 25, got %d", got)
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `input:
  file: /corpus/sr.txt
classifier:
  variant: lex`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			InitConfig(tt.setupFunc(t))

			t.Setenv("LEXSPLIT_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			t.Setenv("LEXSPLIT_OUTPUT_BASE_DIR", "/from/env")
			if got := viper.GetString("output.base_dir"); got != "/from/env" {
				t.Errorf("nested key from environment = %q, want /from/env", got)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	resetViper(t)

	cfgPath := filepath.Join(t.TempDir(), "lexsplit.yaml")
	content := `input:
  file: /corpus/from-config.txt
  first_n_lines: 100
classifier:
  variant: wac
log:
  debug: true
translit:
  normalize: true`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)
	InitConfig(cfgPath)

	// Command line beats the config file.
	cmd.Flags().Set("regex", "lex")

	ApplyConfig(flags)

	if flags.InputFile != "/corpus/from-config.txt" {
		t.Errorf("InputFile = %q", flags.InputFile)
	}
	if flags.FirstNLines != 100 {
		t.Errorf("FirstNLines = %d, want 100", flags.FirstNLines)
	}
	if flags.Regex != "lex" {
		t.Errorf("Regex = %q, want flag value lex", flags.Regex)
	}
	if !flags.Debug || !flags.Normalize {
		t.Errorf("Debug = %v, Normalize = %v, want both true", flags.Debug, flags.Normalize)
	}
	if flags.BaseDir != os.TempDir() {
		t.Errorf("BaseDir = %q, want default %q", flags.BaseDir, os.TempDir())
	}
	if flags.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default text", flags.LogFormat)
	}
}
