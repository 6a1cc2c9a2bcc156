// Package stream provides the line source and record sink the
// deduplication engine works over.
//
// Each side has two variants chosen once at open time: a file-backed one
// that owns and closes its *os.File, and a stream-backed one wrapping a
// process stream (stdin, stdout) or any io.Reader / io.Writer, which is
// flushed but never closed. Callers only see the LineReader and
// RecordWriter interfaces.
package stream
