package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/lexsplit/internal/cli"
	"codeberg.org/snonux/lexsplit/internal/logging"
	"codeberg.org/snonux/lexsplit/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	cli.ApplyConfig(flags)

	logger, err := logging.New(flags.Debug, flags.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	proc := processor.NewProcessor(flags, logger)
	stats, err := proc.Run()
	if err != nil {
		return err
	}

	stats.Print(cmd.OutOrStdout())
	return nil
}
