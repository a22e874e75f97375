package catalog

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"raff/cli"
	"raff/store"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists recorded containers.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}
		db, err := cli.OpenCatalog(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stream, err := store.StreamContainerInfo(db)
		if err != nil {
			return err
		}
		defer stream.Close()

		var infos []*store.ContainerInfo
		for {
			info, err := stream.Next()
			if err != nil {
				return err
			}
			if info == nil {
				break
			}
			infos = append(infos, info)
		}

		if format == cli.FormatJSON {
			encoder := json.NewEncoder(os.Stdout)
			for _, info := range infos {
				if err := encoder.Encode(info); err != nil {
					return err
				}
			}
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"Path",
			"Version",
			"Chunks",
			"Tags",
			"Total Bytes",
			"Recorded At",
		})
		for _, info := range infos {
			table.Append([]string{
				info.Path,
				info.Version,
				strconv.Itoa(info.Chunks),
				strings.Join(info.Tags, ","),
				strconv.FormatUint(info.TotalBytes, 10),
				info.RecordedAt.Format(time.RFC3339),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	cmd.AddCommand(listCmd)
}
