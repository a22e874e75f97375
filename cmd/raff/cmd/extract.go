package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"

	"raff/cli"
	"raff/container"
	"raff/log"
	"raff/tag"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var extractTag string

var extractCmd = &cobra.Command{
	Use:   "extract <file> <dir>",
	Short: "Writes each chunk payload of a RAFF container to its own file.",
	Long: `Writes each chunk payload of a RAFF container to <dir>/<index>_<tag>.bin.
With --tag, only chunks carrying that tag are written.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		lgr := log.WithModule("extract")

		var filter *tag.Tag
		if extractTag != "" {
			t, err := tag.New(extractTag)
			if err != nil {
				return errors.Wrap(err, "invalid tag filter")
			}
			filter = &t
		}

		maxLen := cfg.Extract.MaxPayloadBytes
		if maxLen < 0 || maxLen > math.MaxUint32 {
			maxLen = math.MaxUint32
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		stream, err := container.OpenChunkStream(bufio.NewReader(f), container.WithMaxPayloadLen(uint32(maxLen)))
		if err != nil {
			return err
		}

		outDir := args[1]
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return errors.Wrap(err, "error creating output directory")
		}

		var written int
		for {
			index := stream.Count()
			chunk, err := stream.Next()
			if err != nil {
				return errors.Wrapf(err, "error reading chunk %d", index)
			}
			if chunk == nil {
				break
			}
			name := chunk.Header.Tag.Name
			if filter != nil && name != *filter {
				continue
			}
			outPath := filepath.Join(outDir, fmt.Sprintf("%04d_%s.bin", index, name))
			if err := ioutil.WriteFile(outPath, chunk.Payload, 0644); err != nil {
				return errors.Wrapf(err, "error writing %s", outPath)
			}
			lgr.Debug("extracted chunk", "tag", name, "size", chunk.Header.Size, "path", outPath)
			written++
		}

		fmt.Printf("extracted %d of %d chunks\n", written, stream.Count())
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractTag, cli.FlagTag, "", "Only extract chunks with this tag.")
	rootCmd.AddCommand(extractCmd)
}
