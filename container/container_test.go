package container

import (
	"bytes"
	"io"
	"testing"

	"raff/crypto"
	"raff/tag"
	"raff/wire"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type testChunk struct {
	tag  string
	data []byte
}

var testChunks = []testChunk{
	{"xb", bytes.Repeat([]byte{0xff}, 0x53)},
	{"e0", []byte{}},
	{"bg", crypto.RandBytes(128)},
	{"_9", crypto.RandBytes(20000)},
}

func writeTestContainer(t *testing.T) []byte {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	for _, c := range testChunks {
		require.NoError(t, w.WriteChunk(tag.MustNew(c.tag), c.data))
	}
	require.Equal(t, len(testChunks), w.Chunks())
	require.EqualValues(t, buf.Len(), w.BytesWritten())
	return buf.Bytes()
}

func TestWriter_Layout(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteChunk(tag.MustNew("xb"), []byte{0x01, 0x02}))
	require.EqualValues(t, []byte{
		0xF0, 0x9F, 0xA6, 0x8A,
		0x52, 0x41, 0x46, 0x46,
		0x30, 0x2E, 0x31, 0x0A,
		0x78, 0x62, 0x02, 0x01, 0x02,
	}, buf.Bytes())
}

func TestChunkStream_Next(t *testing.T) {
	data := writeTestContainer(t)
	cs, err := OpenChunkStream(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, wire.NewRaffHeader(), cs.Header())

	offset := uint64(wire.RaffHeaderLen)
	for _, c := range testChunks {
		chunk, err := cs.Next()
		require.NoError(t, err)
		require.NotNil(t, chunk)
		require.Equal(t, c.tag, chunk.Header.Tag.Name.String())
		require.EqualValues(t, len(c.data), chunk.Header.Size)
		require.EqualValues(t, len(c.data), len(chunk.Payload))
		if len(c.data) > 0 {
			require.EqualValues(t, c.data, chunk.Payload)
		}
		require.Equal(t, offset, chunk.Offset)
		offset += uint64(chunk.Header.Len()) + uint64(chunk.Header.Size)
	}

	chunk, err := cs.Next()
	require.NoError(t, err)
	require.Nil(t, chunk)
	require.Equal(t, len(testChunks), cs.Count())
	require.EqualValues(t, len(data), cs.Offset())
}

func TestChunkStream_NextReaderSkipsUnread(t *testing.T) {
	data := writeTestContainer(t)
	cs, err := OpenChunkStream(bytes.NewReader(data))
	require.NoError(t, err)

	var tags []string
	for {
		h, pr, err := cs.NextReader()
		require.NoError(t, err)
		if h == nil {
			break
		}
		require.NotNil(t, pr)
		tags = append(tags, h.Tag.Name.String())
	}
	require.Equal(t, []string{"xb", "e0", "bg", "_9"}, tags)
}

func TestChunkStream_PartialRead(t *testing.T) {
	data := writeTestContainer(t)
	cs, err := OpenChunkStream(bytes.NewReader(data))
	require.NoError(t, err)

	h, pr, err := cs.NextReader()
	require.NoError(t, err)
	require.EqualValues(t, 0x53, h.Size)
	buf := make([]byte, 10)
	_, err = io.ReadFull(pr, buf)
	require.NoError(t, err)

	chunk, err := cs.Next()
	require.NoError(t, err)
	require.Equal(t, "e0", chunk.Header.Tag.Name.String())
}

func TestChunkStream_Empty(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewWriter(&buf)
	require.NoError(t, err)

	cs, err := OpenChunkStream(&buf)
	require.NoError(t, err)
	chunk, err := cs.Next()
	require.NoError(t, err)
	require.Nil(t, chunk)
}

func TestChunkStream_Errors(t *testing.T) {
	data := writeTestContainer(t)

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[5] = 'X'
		_, err := OpenChunkStream(bytes.NewReader(bad))
		require.True(t, errors.Is(err, wire.ErrInvalidMagic), "got %v", err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[8] = '9'
		_, err := OpenChunkStream(bytes.NewReader(bad))
		require.True(t, errors.Is(err, wire.ErrUnsupportedVersion), "got %v", err)
	})

	t.Run("truncated payload", func(t *testing.T) {
		cs, err := OpenChunkStream(bytes.NewReader(data[:wire.RaffHeaderLen+10]))
		require.NoError(t, err)
		_, err = cs.Next()
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
	})

	t.Run("truncated unread payload", func(t *testing.T) {
		cs, err := OpenChunkStream(bytes.NewReader(data[:wire.RaffHeaderLen+10]))
		require.NoError(t, err)
		h, _, err := cs.NextReader()
		require.NoError(t, err)
		require.NotNil(t, h)
		_, _, err = cs.NextReader()
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
	})

	t.Run("truncated header", func(t *testing.T) {
		cs, err := OpenChunkStream(bytes.NewReader(data[:wire.RaffHeaderLen+1]))
		require.NoError(t, err)
		_, err = cs.Next()
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
	})

	t.Run("bad tag", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[wire.RaffHeaderLen] = '-'
		cs, err := OpenChunkStream(bytes.NewReader(bad))
		require.NoError(t, err)
		_, err = cs.Next()
		require.True(t, errors.Is(err, wire.ErrInvalidFormat), "got %v", err)
	})

	t.Run("payload limit", func(t *testing.T) {
		cs, err := OpenChunkStream(bytes.NewReader(data), WithMaxPayloadLen(0x52))
		require.NoError(t, err)
		_, err = cs.Next()
		require.True(t, errors.Is(err, ErrPayloadTooLarge), "got %v", err)
	})
}

func TestWriter_WriteChunkFrom(t *testing.T) {
	payload := crypto.RandBytes(1000)

	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteChunkFrom(tag.MustNew("st"), uint32(len(payload)), bytes.NewReader(payload)))

	cs, err := OpenChunkStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	chunk, err := cs.Next()
	require.NoError(t, err)
	require.EqualValues(t, payload, chunk.Payload)

	err = w.WriteChunkFrom(tag.MustNew("st"), 2000, bytes.NewReader(payload))
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
}

func TestSummarize(t *testing.T) {
	data := writeTestContainer(t)
	summary, err := Summarize(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, "0.1", summary.Version)
	require.Equal(t, []string{"xb", "e0", "bg", "_9"}, summary.Tags())
	require.EqualValues(t, len(data), summary.TotalBytes)
	require.Equal(t, crypto.Blake2B256(data), summary.Digest)

	var payloadBytes uint64
	for i, c := range testChunks {
		cs := summary.Chunks[i]
		require.Equal(t, i, cs.Index)
		require.EqualValues(t, len(c.data), cs.Size)
		require.Equal(t, crypto.Blake2B256(c.data), cs.Digest)
		payloadBytes += uint64(len(c.data))
	}
	require.Equal(t, payloadBytes, summary.PayloadBytes)
	require.EqualValues(t, wire.RaffHeaderLen, summary.Chunks[0].Offset)
}

func TestSummarize_Truncated(t *testing.T) {
	data := writeTestContainer(t)
	_, err := Summarize(bytes.NewReader(data[:len(data)-1]))
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)

	_, err = Summarize(bytes.NewReader(nil))
	require.True(t, errors.Is(err, io.EOF), "got %v", err)
}
