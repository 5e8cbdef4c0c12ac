package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lexsplit/internal"
	"codeberg.org/snonux/lexsplit/internal/classify"
)

// viperKeys maps flag names to their configuration keys.
var viperKeys = map[string]string{
	"input-file":    "input.file",
	"regex":         "classifier.variant",
	"first-n-lines": "input.first_n_lines",
	"normalize":     "translit.normalize",
	"base-dir":      "output.base_dir",
	"archive":       "output.archive",
	"debug":         "log.debug",
	"log-format":    "log.format",
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lexsplit",
		Short: "Serbian corpus splitter and transliterator",
		Long: `lexsplit reads a tab-separated morphological corpus (flexform, lemma,
part-of-speech tag, frequency), converts Latin-script entries to Serbian
Cyrillic and appends every record to a file chosen by the first letter of
its lemma.

Output goes to <base-dir>/<letter>/<letter>-words.txt for lemmas starting in
lower case and <letter>-names.txt for lemmas starting in upper case. Records
whose lemma does not start with a Cyrillic letter go to misc/, lines that do
not split into a record go to unmatched/. Files are appended to, never
truncated.

Examples:
  lexsplit -i sr-lex.txt -r lex -b ./out
  lexsplit -i srwac.tsv.xz -r wac -n 1000 --debug`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lexsplit.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.InputFile, "input-file", "i", "", "Corpus file to process (.gz and .xz are decompressed)")
	cmd.Flags().StringVarP(&flags.BaseDir, "base-dir", "b", flags.BaseDir, "Base output directory")
	cmd.Flags().StringVarP(&flags.Regex, "regex", "r", "", fmt.Sprintf("Classifier variant: %s", strings.Join(classify.Variants(), ", ")))
	cmd.Flags().BoolVarP(&flags.Debug, "debug", "d", false, "Enable debug logging")
	cmd.Flags().IntVarP(&flags.FirstNLines, "first-n-lines", "n", 0, "Process only the first N lines (0 = all)")
	cmd.Flags().BoolVar(&flags.Normalize, "normalize", false, "Compose input to Unicode NFC before transliteration")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move output of previous runs to <base-dir>/archive before processing")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	for name, key := range viperKeys {
		viper.BindPFlag(key, fs.Lookup(name))
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".lexsplit" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lexsplit")
	}

	// Environment variables, e.g. LEXSPLIT_INPUT_FILE for input.file
	viper.SetEnvPrefix("LEXSPLIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies values from the config file and environment into flags.
// A flag given on the command line takes precedence, since viper resolves a
// changed flag before any other source.
func ApplyConfig(flags *Flags) {
	if viper.IsSet("input.file") {
		flags.InputFile = viper.GetString("input.file")
	}
	if viper.IsSet("classifier.variant") {
		flags.Regex = viper.GetString("classifier.variant")
	}
	if viper.IsSet("input.first_n_lines") {
		flags.FirstNLines = viper.GetInt("input.first_n_lines")
	}
	if viper.IsSet("translit.normalize") {
		flags.Normalize = viper.GetBool("translit.normalize")
	}
	if viper.IsSet("output.base_dir") {
		flags.BaseDir = viper.GetString("output.base_dir")
	}
	if viper.IsSet("output.archive") {
		flags.Archive = viper.GetBool("output.archive")
	}
	if viper.IsSet("log.debug") {
		flags.Debug = viper.GetBool("log.debug")
	}
	if viper.IsSet("log.format") {
		flags.LogFormat = viper.GetString("log.format")
	}
}
