package dwire

import (
	"io"

	"github.com/pkg/errors"
)

const (
	// MaxSizeLen is the maximum number of octets in an encoded size. 32 bits
	// at 7 bits per octet need 5 octets.
	MaxSizeLen = 5

	sizeContinuation = 0x80
	sizeGroupMask    = 0x7f

	// the fifth octet may only carry bits 28 through 31
	lastSizeOctetMax = 0x0f
)

var ErrOutOfRange = errors.New("size out of range")

// SizeLen returns the number of octets EncodeSize would produce for n.
func SizeLen(n uint32) int {
	l := 1
	for n >>= 7; n > 0; n >>= 7 {
		l++
	}
	return l
}

// EncodeSize encodes n seven bits per octet, least significant group first.
func EncodeSize(n uint32) []byte {
	out := make([]byte, 0, SizeLen(n))
	for {
		octet := byte(n & sizeGroupMask)
		n >>= 7
		if n == 0 {
			return append(out, octet)
		}
		out = append(out, octet|sizeContinuation)
	}
}

// WriteSize writes the encoded form of n to the Writer.
func WriteSize(w io.Writer, n uint32) error {
	_, err := w.Write(EncodeSize(n))
	return err
}

// ReadSize decodes a size from the Reader one octet at a time. It returns
// ErrOutOfRange if the encoding does not fit in MaxSizeLen octets or
// overflows 32 bits. An EOF before the first octet is returned as io.EOF,
// after it as io.ErrUnexpectedEOF.
func ReadSize(r io.Reader) (uint32, error) {
	br := newByteReader(r)

	var size uint32
	for i := 0; i < MaxSizeLen; i++ {
		octet, err := br.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if i == MaxSizeLen-1 && octet > lastSizeOctetMax {
			return 0, errors.Wrapf(ErrOutOfRange, "size octet %d is 0x%02x", i, octet)
		}

		size |= uint32(octet&sizeGroupMask) << (7 * uint(i))
		if octet&sizeContinuation == 0 {
			return size, nil
		}
	}

	// unreachable: the last octet check above rejects any continuation
	return 0, ErrOutOfRange
}
