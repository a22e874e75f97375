/*
Package dwire implements the primitive field encodings used by the RAFF
container format.

Fundamental types:

	- uint8: Encoded as a single byte in the range 0x00-0xff.
	- uint16: Encoded as two big-endian bytes in the range 0x0000-0xffff.
	- uint32: Encoded as four big-endian bytes in the range
	  0x00000000-0xffffffff.
	- []byte: Encoded as the raw bytes, without a length prefix. On decode,
	  the length of the destination slice determines how many bytes are read.

Sizes:

	Chunk sizes are uint32 values encoded seven bits per octet, least
	significant group first. The high bit of each octet is set when another
	octet follows. An encoded size is between 1 and MaxSizeLen octets long.

	n := dwire.EncodeSize(300) // []byte{0xac, 0x02}

To encode values into a Writer:

	err := dwire.EncodeFields(w, uint16(0x7862), uint32(1))

To decode values from a Reader:

	var t uint16
	var n uint32
	err := dwire.DecodeFields(r, &t, &n)

Note that values passed to DecodeField/DecodeFields MUST be pointers.

dwire exposes Encoder and Decoder interfaces, which allow arbitrary types to be
encoded and decoded by EncodeField/DecodeField. For example:

	type Foo struct {
		Value uint16
	}

	func (f *Foo) Encode(w io.Writer) error {
		return dwire.EncodeFields(w, f.Value)
	}

	func (f *Foo) Decode(r io.Reader) error {
		return dwire.DecodeFields(r, &f.Value)
	}

Errors returned by the underlying Reader or Writer are passed through
unchanged.
*/
package dwire
