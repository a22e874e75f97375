package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"strings"

	"raff/cli"
	"raff/container"
	"raff/log"
	"raff/tag"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var packTag string

type packEntry struct {
	tag  tag.Tag
	path string
}

var packCmd = &cobra.Command{
	Use:   "pack <out> [tag=file...]",
	Short: "Writes files into a new RAFF container, one chunk per file.",
	Long: `Writes files into a new RAFF container, one chunk per file, in the order
given. With no tag=file pairs, stdin is packed as a single chunk tagged with
--tag.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		lgr := log.WithModule("pack")

		entries, err := parsePackEntries(args[1:])
		if err != nil {
			return err
		}

		var stdinData []byte
		var stdinTag tag.Tag
		if len(entries) == 0 {
			if isatty.IsTerminal(os.Stdin.Fd()) {
				return errors.New("no tag=file pairs given and stdin is a terminal")
			}
			tagStr := packTag
			if tagStr == "" {
				tagStr = cfg.Pack.DefaultTag
			}
			stdinTag, err = tag.New(tagStr)
			if err != nil {
				return errors.Wrap(err, "invalid stdin tag")
			}
			stdinData, err = ioutil.ReadAll(os.Stdin)
			if err != nil {
				return errors.Wrap(err, "error reading stdin")
			}
		}

		outPath := args[0]
		f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return errors.Wrap(err, "error opening output file")
		}
		defer f.Close()
		bw := bufio.NewWriter(f)

		w, err := container.NewWriter(bw)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			if err := w.WriteChunk(stdinTag, stdinData); err != nil {
				return err
			}
		}
		for _, entry := range entries {
			lgr.Debug("packing file", "tag", entry.tag.String(), "path", entry.path)
			if err := packFile(w, entry); err != nil {
				return err
			}
		}
		if err := bw.Flush(); err != nil {
			return errors.Wrap(err, "error flushing output file")
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "error closing output file")
		}

		if cfg.Inspect.Record {
			if err := recordContainers(cmd, []string{outPath}); err != nil {
				return err
			}
		}

		fmt.Printf("Wrote %d chunks (%d bytes) to %s.\n", w.Chunks(), w.BytesWritten(), outPath)
		return nil
	},
}

func parsePackEntries(args []string) ([]packEntry, error) {
	entries := make([]packEntry, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[1] == "" {
			return nil, errors.Errorf("invalid chunk argument %q, expected tag=file", arg)
		}
		t, err := tag.New(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid chunk argument %q", arg)
		}
		entries = append(entries, packEntry{
			tag:  t,
			path: parts[1],
		})
	}
	return entries, nil
}

func packFile(w *container.Writer, entry packEntry) error {
	f, err := os.Open(entry.path)
	if err != nil {
		return errors.Wrap(err, "error opening chunk file")
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "error reading chunk file info")
	}
	if stat.Size() > math.MaxUint32 {
		return errors.Errorf("chunk file %s is %d bytes, larger than a chunk can hold", entry.path, stat.Size())
	}
	return w.WriteChunkFrom(entry.tag, uint32(stat.Size()), bufio.NewReader(f))
}

func init() {
	packCmd.Flags().StringVar(&packTag, cli.FlagTag, "", "Tag for data read from stdin. Defaults to pack.default_tag from the config.")
	rootCmd.AddCommand(packCmd)
}
