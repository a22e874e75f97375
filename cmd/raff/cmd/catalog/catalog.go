package catalog

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Commands for the local container catalog.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
