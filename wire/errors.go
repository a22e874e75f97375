package wire

import (
	"raff/dwire"
	"raff/tag"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat is returned for malformed tags, separators and
	// terminators. It is the same value as tag.ErrInvalidFormat.
	ErrInvalidFormat = tag.ErrInvalidFormat
	// ErrOutOfRange is returned for sizes that do not fit in 32 bits. It is
	// the same value as dwire.ErrOutOfRange.
	ErrOutOfRange         = dwire.ErrOutOfRange
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
)
