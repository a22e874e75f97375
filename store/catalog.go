package store

import (
	"encoding/json"
	"time"

	"raff/crypto"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// ContainerInfo is the catalog record for one container file. It is keyed
// by the file's absolute path.
type ContainerInfo struct {
	Path         string      `json:"path"`
	Version      string      `json:"version"`
	Chunks       int         `json:"chunks"`
	Tags         []string    `json:"tags"`
	PayloadBytes uint64      `json:"payload_bytes"`
	TotalBytes   uint64      `json:"total_bytes"`
	Digest       crypto.Hash `json:"digest"`
	RecordedAt   time.Time   `json:"recorded_at"`
}

var ErrContainerNotFound = errors.New("container not found")

var (
	catalogPrefix          = Prefixer("catalog")
	catalogContainerPrefix = Prefixer(string(catalogPrefix("container")))
	catalogDigestPrefix    = Prefixer(string(catalogPrefix("digest")))
)

func SetContainerInfo(db *leveldb.DB, info *ContainerInfo) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		return SetContainerInfoTx(tx, info)
	})
}

// SetContainerInfoTx replaces the record for info.Path, keeping the digest
// lookup keys consistent.
func SetContainerInfoTx(tx *leveldb.Transaction, info *ContainerInfo) error {
	prev, err := getContainerInfo(tx, info.Path)
	if err != nil && !errors.Is(err, ErrContainerNotFound) {
		return err
	}
	if prev != nil && prev.Digest != info.Digest {
		if err := tx.Delete(catalogDigestPrefix(prev.Digest.String(), prev.Path), nil); err != nil {
			return errors.Wrap(err, "error deleting stale digest key")
		}
	}
	if err := tx.Put(catalogContainerPrefix(info.Path), mustMarshalJSON(info), nil); err != nil {
		return errors.Wrap(err, "error writing container info")
	}
	if err := tx.Put(catalogDigestPrefix(info.Digest.String(), info.Path), []byte{}, nil); err != nil {
		return errors.Wrap(err, "error writing digest key")
	}
	logger.Debug("recorded container", "path", info.Path, "digest", info.Digest.String())
	return nil
}

func GetContainerInfo(db *leveldb.DB, path string) (*ContainerInfo, error) {
	return getContainerInfo(db, path)
}

type getter interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

func getContainerInfo(g getter, path string) (*ContainerInfo, error) {
	b, err := g.Get(catalogContainerPrefix(path), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(ErrContainerNotFound, "no record for %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error reading container info")
	}
	info := new(ContainerInfo)
	mustUnmarshalJSON(b, info)
	return info, nil
}

func DeleteContainerInfo(db *leveldb.DB, path string) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		info, err := getContainerInfo(tx, path)
		if errors.Is(err, ErrContainerNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(catalogDigestPrefix(info.Digest.String(), path), nil); err != nil {
			return errors.Wrap(err, "error deleting digest key")
		}
		if err := tx.Delete(catalogContainerPrefix(path), nil); err != nil {
			return errors.Wrap(err, "error deleting container info")
		}
		return nil
	})
}

// PathsWithDigest returns the paths of every recorded container whose bytes
// hash to digest.
func PathsWithDigest(db *leveldb.DB, digest crypto.Hash) ([]string, error) {
	prefix := catalogDigestPrefix(digest.String(), "")
	iter := db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var paths []string
	for iter.Next() {
		paths = append(paths, string(iter.Key()[len(prefix):]))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "error iterating digest keys")
	}
	return paths, nil
}

type ContainerInfoStream struct {
	iter iterator.Iterator
}

// Next returns the next record, or nil once the catalog is exhausted.
func (s *ContainerInfoStream) Next() (*ContainerInfo, error) {
	if !s.iter.Next() {
		return nil, s.iter.Error()
	}
	info := new(ContainerInfo)
	mustUnmarshalJSON(s.iter.Value(), info)
	return info, nil
}

func (s *ContainerInfoStream) Close() error {
	s.iter.Release()
	return s.iter.Error()
}

func StreamContainerInfo(db *leveldb.DB) (*ContainerInfoStream, error) {
	iter := db.NewIterator(util.BytesPrefix(catalogContainerPrefix("")), nil)
	return &ContainerInfoStream{
		iter: iter,
	}, nil
}

func TruncateCatalog(db *leveldb.DB) error {
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		iter := tx.NewIterator(util.BytesPrefix(catalogPrefix("")), nil)
		defer iter.Release()
		for iter.Next() {
			if err := tx.Delete(iter.Key(), nil); err != nil {
				return errors.Wrap(err, "error deleting catalog key")
			}
		}
		return iter.Error()
	})
	if err != nil {
		return errors.Wrap(err, "error truncating catalog")
	}
	return nil
}

func mustMarshalJSON(in interface{}) []byte {
	out, err := json.Marshal(in)
	if err != nil {
		panic(err)
	}
	return out
}

func mustUnmarshalJSON(data []byte, in interface{}) {
	if err := json.Unmarshal(data, in); err != nil {
		panic(err)
	}
}
