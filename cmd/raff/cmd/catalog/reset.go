package catalog

import (
	"fmt"

	"raff/cli"
	"raff/store"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Removes every recorded container from the catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenCatalog(cmd)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := store.TruncateCatalog(db); err != nil {
			return err
		}
		fmt.Println("Catalog reset.")
		return nil
	},
}

func init() {
	cmd.AddCommand(resetCmd)
}
