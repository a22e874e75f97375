// Package octet provides the byte streams RAFF codecs read from and write to.
// Reader adds end-of-stream probing and a consumed-byte count to any
// io.Reader; Writer counts bytes written.
package octet
