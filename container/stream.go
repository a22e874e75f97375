package container

import (
	"io"
	"io/ioutil"

	"raff/octet"
	"raff/wire"

	"github.com/pkg/errors"
)

var ErrPayloadTooLarge = errors.New("chunk payload too large")

// Chunk is a decoded chunk. Offset is the position of its header in the
// container.
type Chunk struct {
	Header  wire.ChunkHeader
	Payload []byte
	Offset  uint64
}

type StreamOption func(cs *ChunkStream)

// WithMaxPayloadLen makes Next reject chunks whose declared size exceeds n,
// before any payload memory is allocated. Zero means no limit.
func WithMaxPayloadLen(n uint32) StreamOption {
	return func(cs *ChunkStream) {
		cs.maxPayloadLen = n
	}
}

type ChunkStream struct {
	r             *octet.Reader
	header        wire.RaffHeader
	maxPayloadLen uint32
	pending       *io.LimitedReader
	count         int
}

// OpenChunkStream reads and validates the container header from r. The
// stream takes ownership of r; nothing else should read from it.
func OpenChunkStream(r io.Reader, opts ...StreamOption) (*ChunkStream, error) {
	or := octet.NewReader(r)
	h, err := wire.ReadRaffHeader(or)
	if err != nil {
		return nil, errors.Wrap(err, "error reading container header")
	}
	cs := &ChunkStream{
		r:      or,
		header: *h,
	}
	for _, opt := range opts {
		opt(cs)
	}
	logger.Debug("opened container", "version", h.String())
	return cs, nil
}

func (cs *ChunkStream) Header() wire.RaffHeader {
	return cs.header
}

// Offset returns the number of container bytes consumed so far.
func (cs *ChunkStream) Offset() uint64 {
	return cs.r.Count()
}

// Count returns the number of chunk headers read so far.
func (cs *ChunkStream) Count() int {
	return cs.count
}

// NextReader reads the next chunk header and returns a reader over exactly
// its payload. Unread payload bytes are skipped on the following call. At a
// clean end of the container it returns nil, nil, nil.
func (cs *ChunkStream) NextReader() (*wire.ChunkHeader, io.Reader, error) {
	if err := cs.drain(); err != nil {
		return nil, nil, err
	}

	end, err := cs.r.HasReachedEnd()
	if err != nil {
		return nil, nil, err
	}
	if end {
		return nil, nil, nil
	}

	offset := cs.r.Count()
	h, err := wire.ReadChunkHeader(cs.r)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error reading chunk header at offset %d", offset)
	}
	cs.count++
	cs.pending = &io.LimitedReader{
		R: cs.r,
		N: int64(h.Size),
	}
	return h, &payloadReader{lr: cs.pending}, nil
}

// Next reads the next chunk, payload included. At a clean end of the
// container it returns nil, nil.
func (cs *ChunkStream) Next() (*Chunk, error) {
	if err := cs.drain(); err != nil {
		return nil, err
	}
	offset := cs.r.Count()
	h, pr, err := cs.NextReader()
	if err != nil || h == nil {
		return nil, err
	}
	if cs.maxPayloadLen > 0 && h.Size > cs.maxPayloadLen {
		return nil, errors.Wrapf(
			ErrPayloadTooLarge,
			"chunk %s at offset %d declares %d bytes, limit is %d",
			h.Tag.Name,
			offset,
			h.Size,
			cs.maxPayloadLen,
		)
	}

	payload := make([]byte, h.Size)
	if _, err := io.ReadFull(pr, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Wrapf(err, "error reading chunk %s payload at offset %d", h.Tag.Name, offset)
	}
	return &Chunk{
		Header:  *h,
		Payload: payload,
		Offset:  offset,
	}, nil
}

func (cs *ChunkStream) drain() error {
	if cs.pending == nil {
		return nil
	}
	pending := cs.pending
	cs.pending = nil
	if _, err := io.Copy(ioutil.Discard, pending); err != nil {
		return errors.Wrap(err, "error skipping chunk payload")
	}
	if pending.N > 0 {
		return errors.Wrap(io.ErrUnexpectedEOF, "error skipping chunk payload")
	}
	return nil
}

type payloadReader struct {
	lr *io.LimitedReader
}

func (p *payloadReader) Read(b []byte) (int, error) {
	n, err := p.lr.Read(b)
	if err == io.EOF && p.lr.N > 0 {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}
