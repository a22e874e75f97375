package container

import (
	"io"

	"raff/log"
	"raff/octet"
	"raff/tag"
	"raff/wire"

	"github.com/pkg/errors"
)

var logger = log.WithModule("container")

type Writer struct {
	w      *octet.Writer
	chunks int
}

// NewWriter writes the container header to w and returns a Writer for the
// chunks that follow.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := octet.NewWriter(w)
	if err := wire.WriteRaffHeader(cw); err != nil {
		return nil, errors.Wrap(err, "error writing container header")
	}
	return &Writer{
		w: cw,
	}, nil
}

func (w *Writer) WriteChunk(name tag.Tag, data []byte) error {
	if err := wire.WriteChunk(w.w, name, data); err != nil {
		return errors.Wrapf(err, "error writing chunk %s", name)
	}
	w.chunks++
	logger.Trace("wrote chunk", "tag", name.String(), "size", len(data))
	return nil
}

// WriteChunkFrom writes a chunk of exactly size bytes copied from r, without
// buffering the payload. It fails if r ends early; the container is then
// truncated and should be discarded.
func (w *Writer) WriteChunkFrom(name tag.Tag, size uint32, r io.Reader) error {
	header := wire.NewChunkHeader(name, size)
	if err := header.Encode(w.w); err != nil {
		return errors.Wrapf(err, "error writing chunk header %s", name)
	}
	n, err := io.CopyN(w.w, r, int64(size))
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return errors.Wrapf(err, "error copying chunk %s payload after %d of %d bytes", name, n, size)
	}
	w.chunks++
	logger.Trace("wrote chunk", "tag", name.String(), "size", size)
	return nil
}

// Chunks returns the number of chunks written so far.
func (w *Writer) Chunks() int {
	return w.chunks
}

// BytesWritten returns the number of bytes written, header included.
func (w *Writer) BytesWritten() uint64 {
	return w.w.Count()
}
