package dwire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type byteReader struct {
	r   io.Reader
	buf []byte
}

// newByteReader returns r itself when it can already read single bytes, so
// that wrapping never reads past the requested octet.
func newByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteReader{
		r:   r,
		buf: make([]byte, 1, 1),
	}
}

func (r *byteReader) ReadByte() (byte, error) {
	_, err := io.ReadFull(r.r, r.buf)
	if err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// DecodeFields decodes each field in the variadic items argument from the
// Reader. Items provided to DecodeFields must be pointer types.
func DecodeFields(r io.Reader, items ...interface{}) error {
	for _, item := range items {
		if err := DecodeField(r, item); err != nil {
			return err
		}
	}

	return nil
}

// DecodeField decodes the field in the item argument from the Reader. The item
// provided to DecodeField must be a pointer type, or a []byte whose length
// is the number of bytes to read.
func DecodeField(r io.Reader, item interface{}) error {
	var err error
	switch it := item.(type) {
	case Decoder:
		err = it.Decode(r)
	case *uint8:
		b := make([]byte, 1, 1)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = b[0]
	case *uint16:
		b := make([]byte, 2, 2)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = binary.BigEndian.Uint16(b)
	case *uint32:
		b := make([]byte, 4, 4)
		if _, err := io.ReadFull(r, b); err != nil {
			return err
		}
		*it = binary.BigEndian.Uint32(b)
	case []byte:
		_, err = io.ReadFull(r, it)
	case uint8, uint16, uint32:
		err = errors.New("can only decode into pointer types")
	default:
		err = errors.New(fmt.Sprintf("type %T cannot be decoded", item))
	}

	return err
}
