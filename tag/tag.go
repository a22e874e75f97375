package tag

import (
	"fmt"

	"github.com/pkg/errors"
)

// Len is the number of characters in a tag.
const Len = 2

var ErrInvalidFormat = errors.New("invalid format")

// Tag is a validated two-character chunk identifier. The first character
// occupies the high byte of the packed value.
type Tag struct {
	v uint16
}

// New packs a two-character string into a Tag. Both characters must satisfy
// IsValidChar.
func New(s string) (Tag, error) {
	if len(s) != Len {
		return Tag{}, errors.Wrapf(ErrInvalidFormat, "tag must be exactly %d characters long, got %d", Len, len(s))
	}
	if !IsValidChar(s[0]) || !IsValidChar(s[1]) {
		return Tag{}, errors.Wrapf(ErrInvalidFormat, "invalid characters in tag %q", s)
	}
	return Tag{v: uint16(s[0])<<8 | uint16(s[1])}, nil
}

// FromValue validates an already-packed tag, as read off the wire.
func FromValue(v uint16) (Tag, error) {
	hi, lo := byte(v>>8), byte(v)
	if !IsValidChar(hi) || !IsValidChar(lo) {
		return Tag{}, errors.Wrapf(ErrInvalidFormat, "invalid characters in tag value 0x%04x", v)
	}
	return Tag{v: v}, nil
}

// MustNew is like New but panics on invalid input. It is meant for tag
// literals.
func MustNew(s string) Tag {
	t, err := New(s)
	if err != nil {
		panic(err)
	}
	return t
}

func IsValidChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '_'
}

func (t Tag) Value() uint16 {
	return t.v
}

func (t Tag) String() string {
	return string([]byte{byte(t.v >> 8), byte(t.v)})
}

func (t Tag) GoString() string {
	return fmt.Sprintf("tag.MustNew(%q)", t.String())
}
