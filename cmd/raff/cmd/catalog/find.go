package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"raff/cli"
	"raff/container"
	"raff/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <file>",
	Short: "Lists recorded containers with the same contents as file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		summary, err := container.Summarize(bufio.NewReader(f))
		if err != nil {
			return errors.Wrapf(err, "error inspecting %s", args[0])
		}

		db, err := cli.OpenCatalog(cmd)
		if err != nil {
			return err
		}
		defer db.Close()
		paths, err := store.PathsWithDigest(db, summary.Digest)
		if err != nil {
			return err
		}

		if format == cli.FormatJSON {
			if paths == nil {
				paths = []string{}
			}
			return json.NewEncoder(os.Stdout).Encode(paths)
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(findCmd)
}
