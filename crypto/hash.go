package crypto

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

type Hash [32]byte

var ZeroHash Hash

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%x\"", h[:])), nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var hashStr string
	if err := json.Unmarshal(b, &hashStr); err != nil {
		return err
	}
	decoded, err := NewHashFromHex(hashStr)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func Blake2B256(data ...[]byte) Hash {
	h := NewBlake2B256()
	for _, chunk := range data {
		h.Write(chunk)
	}
	return SumHash(h)
}

// NewBlake2B256 returns a streaming BLAKE2b-256 hasher for use with SumHash.
func NewBlake2B256() hash.Hash {
	// never returns an error if key is nil
	h, _ := blake2b.New256(nil)
	return h
}

func SumHash(h hash.Hash) Hash {
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func NewHashFromBytes(b []byte) (Hash, error) {
	if len(b) != 32 {
		return ZeroHash, errors.New("hash must be 32 bytes")
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

func NewHashFromHex(in string) (Hash, error) {
	b, err := hex.DecodeString(in)
	if err != nil {
		return ZeroHash, errors.Wrap(err, "error decoding hash hex")
	}
	return NewHashFromBytes(b)
}
