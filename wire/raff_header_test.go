package wire

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var headerFixture = []byte{
	0xF0, 0x9F, 0xA6, 0x8A, // icon
	0x52, 0x41, 0x46, 0x46, // RAFF
	0x30, 0x2E, 0x31, 0x0A, // 0.1
}

func TestReadRaffHeader(t *testing.T) {
	h, err := ReadRaffHeader(bytes.NewReader(headerFixture))
	require.NoError(t, err)
	require.EqualValues(t, 0, h.Major)
	require.EqualValues(t, 1, h.Minor)
	require.Equal(t, "0.1", h.String())
}

func TestWriteRaffHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRaffHeader(&buf))
	require.EqualValues(t, headerFixture, buf.Bytes())
	require.Equal(t, RaffHeaderLen, buf.Len())
}

func TestRaffHeader_BadMagic(t *testing.T) {
	for i := 0; i < 8; i++ {
		data := append([]byte(nil), headerFixture...)
		data[i] ^= 0x01
		_, err := ReadRaffHeader(bytes.NewReader(data))
		require.Error(t, err, "byte %d", i)
		require.True(t, errors.Is(err, ErrInvalidMagic), "byte %d: %v", i, err)
	}
}

func TestRaffHeader_BadPunctuation(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		val  byte
	}{
		{"separator", 9, ','},
		{"terminator", 11, '\r'},
		{"terminator missing", 11, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]byte(nil), headerFixture...)
			data[tt.idx] = tt.val
			var h RaffHeader
			err := h.Decode(bytes.NewReader(data))
			require.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
		})
	}
}

func TestRaffHeader_UnsupportedVersion(t *testing.T) {
	data := append([]byte(nil), headerFixture...)
	data[8] = '9'

	var h RaffHeader
	require.NoError(t, h.Decode(bytes.NewReader(data)))
	require.EqualValues(t, 9, h.Major)
	require.EqualValues(t, 1, h.Minor)
	require.False(t, h.IsSupported())

	_, err := ReadRaffHeader(bytes.NewReader(data))
	require.True(t, errors.Is(err, ErrUnsupportedVersion), "got %v", err)
}

func TestRaffHeader_LenientDigits(t *testing.T) {
	// Non-digit version bytes decode as 0, so 0xFF.'1' reads as 0.1.
	data := append([]byte(nil), headerFixture...)
	data[8] = 0xFF
	h, err := ReadRaffHeader(bytes.NewReader(data))
	require.NoError(t, err)
	require.EqualValues(t, 0, h.Major)
	require.EqualValues(t, 1, h.Minor)
}

func TestRaffHeader_Truncated(t *testing.T) {
	for i := 0; i < RaffHeaderLen; i++ {
		_, err := ReadRaffHeader(bytes.NewReader(headerFixture[:i]))
		require.Error(t, err, "length %d", i)
		if i%4 == 0 {
			require.Equal(t, io.EOF, err, "length %d", i)
		} else {
			require.Equal(t, io.ErrUnexpectedEOF, err, "length %d", i)
		}
	}
}

func TestRaffHeader_EncodeWithVersion(t *testing.T) {
	tests := []struct {
		major, minor uint8
		out          string
	}{
		{0, 1, "0.1\n"},
		{3, 7, "3.7\n"},
		{9, 9, "9.9\n"},
		{10, 255, "0.0\n"},
	}
	for _, tt := range tests {
		h := NewRaffHeaderWithVersion(tt.major, tt.minor)
		var buf bytes.Buffer
		require.NoError(t, h.Encode(&buf))
		require.Equal(t, tt.out, string(buf.Bytes()[8:]))
	}
}

func TestVersionDigits(t *testing.T) {
	for v := uint8(0); v <= 9; v++ {
		require.Equal(t, v, ToVersion(FromVersion(v)))
	}
	require.EqualValues(t, 0, ToVersion('/'))
	require.EqualValues(t, 0, ToVersion(':'))
	require.EqualValues(t, 0, ToVersion(0xFF))
	require.EqualValues(t, '0', FromVersion(10))
}
