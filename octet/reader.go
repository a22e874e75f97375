package octet

import (
	"bufio"
	"io"
	"sync/atomic"
)

type Reader struct {
	br    *bufio.Reader
	count uint64
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
)

// NewReader wraps r. The returned Reader buffers ahead of the caller, so r
// must not be read from directly afterwards.
func NewReader(r io.Reader) *Reader {
	if or, ok := r.(*Reader); ok {
		return or
	}
	return &Reader{
		br: bufio.NewReader(r),
	}
}

// Count returns the number of bytes handed to the caller so far.
func (c *Reader) Count() uint64 {
	return atomic.LoadUint64(&c.count)
}

func (c *Reader) Reset() {
	atomic.StoreUint64(&c.count, 0)
}

func (c *Reader) Read(p []byte) (int, error) {
	n, err := c.br.Read(p)
	atomic.AddUint64(&c.count, uint64(n))
	return n, err
}

func (c *Reader) ReadByte() (byte, error) {
	b, err := c.br.ReadByte()
	if err != nil {
		return 0, err
	}
	atomic.AddUint64(&c.count, 1)
	return b, nil
}

// HasReachedEnd reports whether the underlying stream is exhausted. It
// blocks until at least one byte is available or the stream ends. Errors
// other than io.EOF are returned to the caller.
func (c *Reader) HasReachedEnd() (bool, error) {
	_, err := c.br.Peek(1)
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
