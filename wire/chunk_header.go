package wire

import (
	"io"

	"raff/dwire"
	"raff/tag"
)

// MaxChunkHeaderLen is the longest possible encoded ChunkHeader.
const MaxChunkHeaderLen = TagHeaderLen + dwire.MaxSizeLen

var _ dwire.EncodeDecoder = (*ChunkHeader)(nil)

// ChunkHeader precedes every chunk payload. Size is the exact length of the
// payload that follows it.
type ChunkHeader struct {
	Tag  TagHeader
	Size uint32
}

func NewChunkHeader(name tag.Tag, size uint32) *ChunkHeader {
	return &ChunkHeader{
		Tag:  NewTagHeader(name),
		Size: size,
	}
}

// Len returns the encoded length of the header.
func (h *ChunkHeader) Len() int {
	return TagHeaderLen + dwire.SizeLen(h.Size)
}

func (h *ChunkHeader) Encode(w io.Writer) error {
	if err := h.Tag.Encode(w); err != nil {
		return err
	}
	return dwire.WriteSize(w, h.Size)
}

// Decode reads a tag and a size. h is only modified when both succeed.
func (h *ChunkHeader) Decode(r io.Reader) error {
	var th TagHeader
	if err := th.Decode(r); err != nil {
		return err
	}
	size, err := dwire.ReadSize(r)
	if err != nil {
		return err
	}
	h.Tag = th
	h.Size = size
	return nil
}
