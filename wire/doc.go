/*
Package wire implements the RAFF container format.

A container is a 12-byte header followed by zero or more chunks:

	F0 9F A6 8A      icon magic
	52 41 46 46      "RAFF"
	30 2E 31 0A      version "0.1\n"

	tag (2 bytes, big-endian) | size (1-5 bytes) | payload (size bytes)
	...

There is no end marker. Writers call WriteRaffHeader once and then
WriteChunk for each chunk. Readers call ReadRaffHeader once, then alternate
ReadChunkHeader with reading Size payload bytes until the stream is
exhausted.
*/
package wire
