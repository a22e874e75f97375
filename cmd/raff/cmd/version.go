package cmd

import (
	"fmt"

	"raff/version"
	"raff/wire"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the raff version and the container format version it writes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("raff %s (%s), format %s\n", version.GitTag, version.GitCommit, wire.NewRaffHeader())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
