package stream

import (
	"bufio"
	"io"
	"os"

	"github.com/arthur-debert/uniqr/pkg/errors"
)

// RecordWriter receives formatted output records.
type RecordWriter interface {
	// WriteRecord writes s exactly as given.
	WriteRecord(s string) error
	// Name identifies the destination in diagnostics.
	Name() string
	// Close flushes buffered records and releases the destination.
	Close() error
}

// bufferedRecords holds the state shared by both writer variants
type bufferedRecords struct {
	name string
	bw   *bufio.Writer
}

func (b *bufferedRecords) WriteRecord(s string) error {
	if _, err := b.bw.WriteString(s); err != nil {
		return b.writeError(err)
	}
	return nil
}

func (b *bufferedRecords) Name() string { return b.name }

func (b *bufferedRecords) flush() error {
	if err := b.bw.Flush(); err != nil {
		return b.writeError(err)
	}
	return nil
}

func (b *bufferedRecords) writeError(err error) error {
	return errors.WithDetail(
		errors.Wrapf(err, errors.ErrWrite, "failed to write %s", b.name),
		"path", b.name)
}

// fileRecordWriter writes to a file it owns
type fileRecordWriter struct {
	bufferedRecords
	file *os.File
}

func (f *fileRecordWriter) Close() error {
	flushErr := f.flush()
	if err := f.file.Close(); err != nil && flushErr == nil {
		return errors.Wrapf(err, errors.ErrClose, "failed to close %s", f.name)
	}
	return flushErr
}

// streamRecordWriter writes to a stream it does not own
type streamRecordWriter struct {
	bufferedRecords
}

func (s *streamRecordWriter) Close() error { return s.flush() }

// OpenOutput opens path for writing, creating or truncating it. An empty
// path selects standard output.
func OpenOutput(path string) (RecordWriter, error) {
	if path == "" {
		return NewNamedWriter(os.Stdout, "standard output"), nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithDetail(
			errors.Wrapf(err, errors.ErrFileCreate, "cannot create output %s", path),
			"path", path)
	}

	return &fileRecordWriter{
		bufferedRecords: bufferedRecords{name: path, bw: bufio.NewWriterSize(file, bufferSize)},
		file:            file,
	}, nil
}

// NewWriter wraps w in a stream-backed RecordWriter. Closing it flushes
// but leaves w open.
func NewWriter(w io.Writer) RecordWriter {
	return NewNamedWriter(w, "output")
}

// NewNamedWriter is NewWriter with a name used in error messages
func NewNamedWriter(w io.Writer, name string) RecordWriter {
	return &streamRecordWriter{
		bufferedRecords: bufferedRecords{name: name, bw: bufio.NewWriterSize(w, bufferSize)},
	}
}
