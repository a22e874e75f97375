package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"raff/cli"
	"raff/config"
	"raff/container"
	"raff/log"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

var inspectRecord bool

type inspectResult struct {
	Path string `json:"path"`
	*container.Summary
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Validates RAFF containers and lists their chunks.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}

		results, err := summarizeFiles(context.Background(), args, cfg.Inspect.Workers)
		if err != nil {
			return err
		}

		record := cfg.Inspect.Record
		if cmd.Flags().Changed(cli.FlagRecord) {
			record = inspectRecord
		}
		if record {
			if err := recordResults(cmd, results); err != nil {
				return err
			}
		}

		if format == cli.FormatJSON {
			encoder := json.NewEncoder(os.Stdout)
			for _, res := range results {
				if err := encoder.Encode(res); err != nil {
					return err
				}
			}
			return nil
		}

		for i, res := range results {
			if i > 0 {
				fmt.Println()
			}
			renderSummary(res)
		}
		return nil
	},
}

// summarizeFiles summarizes each file on its own stream, at most workers at
// a time. Results are returned in argument order.
func summarizeFiles(ctx context.Context, paths []string, workers int) ([]*inspectResult, error) {
	if workers < 1 {
		workers = 1
	}
	lgr := log.WithModule("inspect")
	results := make([]*inspectResult, len(paths))
	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i := i
		path := path
		if err := sem.Acquire(gCtx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			lgr.Debug("inspecting container", "path", path)
			summary, err := summarizeFile(path)
			if err != nil {
				return errors.Wrapf(err, "error inspecting %s", path)
			}
			results[i] = &inspectResult{
				Path:    path,
				Summary: summary,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func summarizeFile(path string) (*container.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return container.Summarize(bufio.NewReader(f))
}

// recordContainers summarizes paths and stores the results in the catalog.
func recordContainers(cmd *cobra.Command, paths []string) error {
	results := make([]*inspectResult, 0, len(paths))
	for _, path := range paths {
		summary, err := summarizeFile(path)
		if err != nil {
			return errors.Wrapf(err, "error inspecting %s", path)
		}
		results = append(results, &inspectResult{
			Path:    path,
			Summary: summary,
		})
	}
	return recordResults(cmd, results)
}

// recordResults stores already computed summaries in the catalog. It is a
// no-op with a warning when the home directory has not been initialized.
func recordResults(cmd *cobra.Command, results []*inspectResult) error {
	lgr := log.WithModule("catalog")
	homeDir := cli.GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return err
	}
	if !exists {
		lgr.Warn("not recording containers, home directory is not initialized", "home", homeDir)
		return nil
	}

	db, err := cli.OpenCatalog(cmd)
	if err != nil {
		return err
	}
	defer db.Close()
	for _, res := range results {
		if err := cli.RecordSummary(db, res.Path, res.Summary); err != nil {
			return errors.Wrapf(err, "error recording %s", res.Path)
		}
	}
	return nil
}

func renderSummary(res *inspectResult) {
	fmt.Printf("%s: RAFF %s, %d chunks, %d payload bytes, %d total bytes\n",
		res.Path,
		res.Version,
		len(res.Chunks),
		res.PayloadBytes,
		res.TotalBytes,
	)
	fmt.Printf("digest: %s\n", res.Digest)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"Index",
		"Tag",
		"Size",
		"Offset",
		"Digest",
	})
	for _, c := range res.Chunks {
		table.Append([]string{
			strconv.Itoa(c.Index),
			c.Tag,
			strconv.FormatUint(uint64(c.Size), 10),
			strconv.FormatUint(c.Offset, 10),
			c.Digest.String(),
		})
	}
	table.Render()
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectRecord, cli.FlagRecord, true, "Record inspected containers in the catalog. Defaults to inspect.record from the config.")
	rootCmd.AddCommand(inspectCmd)
}
