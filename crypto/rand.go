package crypto

import "crypto/rand"

// RandBytes returns n bytes from the system CSPRNG.
func RandBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}
