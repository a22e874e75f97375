package dwire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Encoder is an interface that allows arbitrary types to be
// encoded. Types implementing the Encoder interface can be
// encoded using EncodeField or EncodeFields.
type Encoder interface {
	Encode(w io.Writer) error
}

// Decoder is an interface that allows arbitrary types to be
// decoded. Types implementing the Decoder interface can be
// decoded using DecodeField or DecodeFields.
type Decoder interface {
	Decode(r io.Reader) error
}

type EncodeDecoder interface {
	Encoder
	Decoder
}

// EncodeFields encodes each field in the variadic items argument into
// the Writer, in order.
func EncodeFields(w io.Writer, items ...interface{}) error {
	for _, item := range items {
		if err := EncodeField(w, item); err != nil {
			return err
		}
	}

	return nil
}

// EncodeField encodes a single item into the Writer.
func EncodeField(w io.Writer, item interface{}) error {
	var err error
	switch it := item.(type) {
	case Encoder:
		err = it.Encode(w)
	case uint8:
		_, err = w.Write([]byte{it})
	case uint16:
		b := make([]byte, 2, 2)
		binary.BigEndian.PutUint16(b, it)
		_, err = w.Write(b)
	case uint32:
		b := make([]byte, 4, 4)
		binary.BigEndian.PutUint32(b, it)
		_, err = w.Write(b)
	case []byte:
		_, err = w.Write(it)
	default:
		err = errors.New(fmt.Sprintf("type %T cannot be encoded", item))
	}

	return err
}
