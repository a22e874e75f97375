package wire

import (
	"io"
	"math"

	"raff/tag"

	"github.com/pkg/errors"
)

// WriteRaffHeader writes the container header for the supported version.
func WriteRaffHeader(w io.Writer) error {
	h := NewRaffHeader()
	return h.Encode(w)
}

// ReadRaffHeader reads a container header and rejects any version other
// than SupportedMajor.SupportedMinor.
func ReadRaffHeader(r io.Reader) (*RaffHeader, error) {
	h := new(RaffHeader)
	if err := h.Decode(r); err != nil {
		return nil, err
	}
	if !h.IsSupported() {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %s", h)
	}
	return h, nil
}

// WriteChunk writes a chunk header sized to data, followed by data itself.
func WriteChunk(w io.Writer, name tag.Tag, data []byte) error {
	if uint64(len(data)) > math.MaxUint32 {
		return errors.Wrapf(ErrOutOfRange, "chunk payload of %d bytes", len(data))
	}
	header := NewChunkHeader(name, uint32(len(data)))
	if err := header.Encode(w); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadChunkHeader reads the header of the next chunk. The caller must
// consume exactly Size payload bytes before reading the next header.
func ReadChunkHeader(r io.Reader) (*ChunkHeader, error) {
	h := new(ChunkHeader)
	if err := h.Decode(r); err != nil {
		return nil, err
	}
	return h, nil
}
