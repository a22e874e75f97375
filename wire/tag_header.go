package wire

import (
	"io"

	"raff/dwire"
	"raff/tag"
)

// TagHeaderLen is the encoded length of a TagHeader.
const TagHeaderLen = 2

var _ dwire.EncodeDecoder = (*TagHeader)(nil)

// TagHeader is the wire form of a chunk tag: the packed tag value as a
// big-endian uint16.
type TagHeader struct {
	Name tag.Tag
}

func NewTagHeader(name tag.Tag) TagHeader {
	return TagHeader{
		Name: name,
	}
}

func (h *TagHeader) Encode(w io.Writer) error {
	return dwire.EncodeField(w, h.Name.Value())
}

func (h *TagHeader) Decode(r io.Reader) error {
	var v uint16
	if err := dwire.DecodeField(r, &v); err != nil {
		return err
	}
	name, err := tag.FromValue(v)
	if err != nil {
		return err
	}
	h.Name = name
	return nil
}
