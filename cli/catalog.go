package cli

import (
	"path/filepath"
	"time"

	"raff/config"
	"raff/container"
	"raff/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

// OpenCatalog opens the catalog database in the home directory. The home
// directory must have been initialized.
func OpenCatalog(cmd *cobra.Command) (*leveldb.DB, error) {
	homeDir := GetHomeDir(cmd)
	if err := config.EnsureHomeDir(homeDir); err != nil {
		return nil, err
	}
	db, err := store.Open(config.ExpandDBPath(homeDir))
	if err != nil {
		return nil, errors.Wrap(err, "error opening catalog")
	}
	return db, nil
}

// RecordSummary stores a container summary in the catalog under the file's
// absolute path.
func RecordSummary(db *leveldb.DB, path string, summary *container.Summary) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "error resolving container path")
	}
	return store.SetContainerInfo(db, &store.ContainerInfo{
		Path:         abs,
		Version:      summary.Version,
		Chunks:       len(summary.Chunks),
		Tags:         summary.Tags(),
		PayloadBytes: summary.PayloadBytes,
		TotalBytes:   summary.TotalBytes,
		Digest:       summary.Digest,
		RecordedAt:   time.Now(),
	})
}
