package container

import (
	"io"

	"raff/crypto"

	"github.com/pkg/errors"
)

type ChunkSummary struct {
	Index  int         `json:"index"`
	Tag    string      `json:"tag"`
	Size   uint32      `json:"size"`
	Offset uint64      `json:"offset"`
	Digest crypto.Hash `json:"digest"`
}

// Summary describes a whole container. Digest covers every byte of the
// container, header included.
type Summary struct {
	Version      string         `json:"version"`
	Chunks       []ChunkSummary `json:"chunks"`
	PayloadBytes uint64         `json:"payload_bytes"`
	TotalBytes   uint64         `json:"total_bytes"`
	Digest       crypto.Hash    `json:"digest"`
}

// Tags returns the chunk tags in container order.
func (s *Summary) Tags() []string {
	tags := make([]string, len(s.Chunks))
	for i, c := range s.Chunks {
		tags[i] = c.Tag
	}
	return tags
}

// Summarize walks a container to its end, hashing each payload as it
// streams past. Payloads are never held in memory.
func Summarize(r io.Reader) (*Summary, error) {
	whole := crypto.NewBlake2B256()
	cs, err := OpenChunkStream(io.TeeReader(r, whole))
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Version: cs.Header().String(),
		Chunks:  make([]ChunkSummary, 0),
	}
	for {
		offset := cs.Offset()
		h, pr, err := cs.NextReader()
		if err != nil {
			return nil, err
		}
		if h == nil {
			break
		}

		chunkHash := crypto.NewBlake2B256()
		if _, err := io.Copy(chunkHash, pr); err != nil {
			return nil, errors.Wrapf(err, "error reading chunk %s payload at offset %d", h.Tag.Name, offset)
		}
		summary.Chunks = append(summary.Chunks, ChunkSummary{
			Index:  len(summary.Chunks),
			Tag:    h.Tag.Name.String(),
			Size:   h.Size,
			Offset: offset,
			Digest: crypto.SumHash(chunkHash),
		})
		summary.PayloadBytes += uint64(h.Size)
	}

	summary.TotalBytes = cs.Offset()
	summary.Digest = crypto.SumHash(whole)
	return summary, nil
}
