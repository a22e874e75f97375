package octet

import (
	"io"
	"sync/atomic"
)

type Writer struct {
	w     io.Writer
	count uint64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

func (c *Writer) Count() uint64 {
	return atomic.LoadUint64(&c.count)
}

func (c *Writer) Reset() {
	atomic.StoreUint64(&c.count, 0)
}

func (c *Writer) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	atomic.AddUint64(&c.count, uint64(n))
	return n, err
}
