package wire

import (
	"fmt"
	"io"

	"raff/dwire"

	"github.com/pkg/errors"
)

const (
	// IconMagic is the UTF-8 encoding of U+1F98A, the fox face.
	IconMagic uint32 = 0xF09FA68A
	// TextMagic is "RAFF" in ASCII.
	TextMagic uint32 = 0x52414646

	SupportedMajor uint8 = 0
	SupportedMinor uint8 = 1

	// RaffHeaderLen is the encoded length of a RaffHeader.
	RaffHeaderLen = 12

	versionSeparator  = '.'
	versionTerminator = '\n'
)

var _ dwire.EncodeDecoder = (*RaffHeader)(nil)

// RaffHeader is the container preamble: two magic words followed by the
// format version as "<major>.<minor>\n".
type RaffHeader struct {
	Major uint8
	Minor uint8
}

// NewRaffHeader returns a header carrying the supported version.
func NewRaffHeader() RaffHeader {
	return RaffHeader{
		Major: SupportedMajor,
		Minor: SupportedMinor,
	}
}

func NewRaffHeaderWithVersion(major, minor uint8) RaffHeader {
	return RaffHeader{
		Major: major,
		Minor: minor,
	}
}

func (h RaffHeader) IsSupported() bool {
	return h.Major == SupportedMajor && h.Minor == SupportedMinor
}

func (h RaffHeader) String() string {
	return fmt.Sprintf("%d.%d", h.Major, h.Minor)
}

func (h *RaffHeader) Encode(w io.Writer) error {
	return dwire.EncodeFields(
		w,
		IconMagic,
		TextMagic,
		FromVersion(h.Major),
		uint8(versionSeparator),
		FromVersion(h.Minor),
		uint8(versionTerminator),
	)
}

// Decode validates the magic words and the version punctuation. It does not
// check whether the version is supported; see ReadRaffHeader.
func (h *RaffHeader) Decode(r io.Reader) error {
	var icon, text uint32
	if err := dwire.DecodeField(r, &icon); err != nil {
		return err
	}
	if icon != IconMagic {
		return errors.Wrapf(ErrInvalidMagic, "bad icon 0x%08x", icon)
	}
	if err := dwire.DecodeField(r, &text); err != nil {
		return err
	}
	if text != TextMagic {
		return errors.Wrapf(ErrInvalidMagic, "bad text 0x%08x", text)
	}

	version := make([]byte, 4)
	if err := dwire.DecodeField(r, version); err != nil {
		return err
	}
	if version[1] != versionSeparator {
		return errors.Wrapf(ErrInvalidFormat, "bad version separator 0x%02x", version[1])
	}
	if version[3] != versionTerminator {
		return errors.Wrapf(ErrInvalidFormat, "bad version terminator 0x%02x", version[3])
	}

	h.Major = ToVersion(version[0])
	h.Minor = ToVersion(version[2])
	return nil
}

// ToVersion converts an ASCII digit to its value. Any other byte yields 0
// rather than an error.
func ToVersion(b byte) uint8 {
	if b < '0' || b > '9' {
		return 0
	}
	return b - '0'
}

// FromVersion converts a version number to its ASCII digit. Values above 9
// are written as '0'.
func FromVersion(v uint8) byte {
	if v > 9 {
		return '0'
	}
	return v + '0'
}
