package stream

import (
	"bufio"
	"io"
	"os"

	"github.com/arthur-debert/uniqr/pkg/errors"
)

// StdinMarker is the input path that selects standard input
const StdinMarker = "-"

const bufferSize = 64 * 1024

// LineReader yields input lines one at a time.
type LineReader interface {
	// ReadLine returns the next line including its terminator. A final
	// line without a terminator is returned as-is with a nil error. Once
	// the input is exhausted it returns "" and io.EOF.
	ReadLine() (string, error)
	// Name identifies the source in diagnostics.
	Name() string
	Close() error
}

// bufferedLines holds the state shared by both reader variants
type bufferedLines struct {
	name string
	br   *bufio.Reader
}

func (b *bufferedLines) ReadLine() (string, error) {
	line, err := b.br.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}
	if err != nil {
		return "", errors.WithDetail(
			errors.Wrapf(err, errors.ErrRead, "failed to read %s", b.name),
			"path", b.name)
	}
	return line, nil
}

func (b *bufferedLines) Name() string { return b.name }

// fileLineReader reads from a file it owns
type fileLineReader struct {
	bufferedLines
	file *os.File
}

func (f *fileLineReader) Close() error {
	if err := f.file.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrClose, "failed to close %s", f.name)
	}
	return nil
}

// streamLineReader reads from a stream it does not own
type streamLineReader struct {
	bufferedLines
}

func (s *streamLineReader) Close() error { return nil }

// OpenInput opens path for line reading. "-" and "" select standard input,
// which never fails to open.
func OpenInput(path string) (LineReader, error) {
	if path == StdinMarker || path == "" {
		return NewNamedReader(os.Stdin, "standard input"), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithDetail(
			errors.Wrapf(err, errors.ErrFileOpen, "cannot open input %s", path),
			"path", path)
	}

	return &fileLineReader{
		bufferedLines: bufferedLines{name: path, br: bufio.NewReaderSize(file, bufferSize)},
		file:          file,
	}, nil
}

// NewReader wraps r in a stream-backed LineReader. Closing it leaves r open.
func NewReader(r io.Reader) LineReader {
	return NewNamedReader(r, "input")
}

// NewNamedReader is NewReader with a name used in error messages
func NewNamedReader(r io.Reader, name string) LineReader {
	return &streamLineReader{
		bufferedLines: bufferedLines{name: name, br: bufio.NewReaderSize(r, bufferSize)},
	}
}
