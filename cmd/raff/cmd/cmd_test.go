package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"raff/cli"
	"raff/config"
	"raff/container"
	"raff/store"
	"raff/tag"
	"raff/testutil/testfs"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func writeTestContainer(t *testing.T, dir string, name string, chunks int) string {
	var buf bytes.Buffer
	w, err := container.NewWriter(&buf)
	require.NoError(t, err)
	for j := 0; j < chunks; j++ {
		require.NoError(t, w.WriteChunk(tag.MustNew("da"), []byte{byte(j)}))
	}
	return testfs.WriteFile(t, dir, name, buf.Bytes())
}

func homeCmd(home string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String(cli.FlagHome, home, "")
	return cmd
}

func TestParsePackEntries(t *testing.T) {
	entries, err := parsePackEntries([]string{"xb=a.bin", "_9=dir/b=c.bin"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, tag.MustNew("xb"), entries[0].tag)
	require.Equal(t, "a.bin", entries[0].path)
	require.Equal(t, tag.MustNew("_9"), entries[1].tag)
	require.Equal(t, "dir/b=c.bin", entries[1].path)

	entries, err = parsePackEntries(nil)
	require.NoError(t, err)
	require.Empty(t, entries)

	for _, arg := range []string{"xb", "xb=", "9-=a.bin", "x.=a.bin", "xbc=a.bin", "=a.bin"} {
		_, err := parsePackEntries([]string{arg})
		require.Error(t, err, arg)
	}
}

func TestSummarizeFiles(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	var paths []string
	for i, name := range []string{"a.raff", "b.raff", "c.raff"} {
		paths = append(paths, writeTestContainer(t, dir, name, i+1))
	}

	results, err := summarizeFiles(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, res := range results {
		require.Equal(t, paths[i], res.Path)
		require.Len(t, res.Chunks, i+1)
		require.Equal(t, "0.1", res.Version)
	}

	bad := testfs.WriteFile(t, dir, "bad.raff", []byte("not a container"))
	_, err = summarizeFiles(context.Background(), append(paths, bad), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), bad)
}

func TestRecordResults(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	home := filepath.Join(dir, "home")
	require.NoError(t, config.InitHomeDir(home))

	path := writeTestContainer(t, dir, "a.raff", 2)
	results, err := summarizeFiles(context.Background(), []string{path}, 1)
	require.NoError(t, err)

	// recording works from the summaries alone, without the file
	require.NoError(t, os.Remove(path))
	require.NoError(t, recordResults(homeCmd(home), results))

	db, err := store.Open(config.ExpandDBPath(home))
	require.NoError(t, err)
	defer db.Close()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	info, err := store.GetContainerInfo(db, abs)
	require.NoError(t, err)
	require.Equal(t, 2, info.Chunks)
	require.Equal(t, []string{"da", "da"}, info.Tags)
	require.Equal(t, results[0].Digest, info.Digest)
}

func TestRecordResults_NoHomeDir(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	home := filepath.Join(dir, "missing")

	path := writeTestContainer(t, dir, "a.raff", 1)
	require.NoError(t, recordContainers(homeCmd(home), []string{path}))
	exists, err := config.HomeDirExists(home)
	require.NoError(t, err)
	require.False(t, exists)
}
