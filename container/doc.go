// Package container reads and writes whole RAFF containers on top of the
// header and chunk codecs in package wire.
//
// A Writer emits the container header once and then one chunk per call. A
// ChunkStream validates the container header and yields chunks until the
// underlying stream is exhausted; the format has no end marker, so a clean
// end is only recognized between chunks.
package container
