package cmd

import (
	"fmt"
	"os"

	"raff/cli"
	"raff/cmd/raff/cmd/catalog"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "raff",
	Short:         "Reads and writes RAFF chunk containers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.raff", "Home directory for raff's configuration and catalog.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, cli.FormatText, "Output format (text or json).")
	catalog.AddCmd(rootCmd)
}
