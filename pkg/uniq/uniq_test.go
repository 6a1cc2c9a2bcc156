package uniq

import (
	"bytes"
	stderrors "errors"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/arthur-debert/uniqr/pkg/config"
	"github.com/arthur-debert/uniqr/pkg/errors"
	"github.com/arthur-debert/uniqr/pkg/stream"
	"github.com/arthur-debert/uniqr/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dedup runs Process over an in-memory input and returns the output
func dedup(t *testing.T, input string, showCount bool) (string, Summary) {
	t.Helper()
	var buf bytes.Buffer
	w := stream.NewWriter(&buf)

	summary, err := Process(stream.NewReader(strings.NewReader(input)), w, showCount)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.String(), summary
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPlain string
		wantCount string
	}{
		{
			name:      "consecutive_duplicates_merge",
			input:     "a\na\nb\n",
			wantPlain: "a\nb\n",
			wantCount: "   2 a\n   1 b\n",
		},
		{
			name:      "non_consecutive_duplicates_stay",
			input:     "a\nb\na\n",
			wantPlain: "a\nb\na\n",
			wantCount: "   1 a\n   1 b\n   1 a\n",
		},
		{
			name:      "empty_input",
			input:     "",
			wantPlain: "",
			wantCount: "",
		},
		{
			name:      "all_identical",
			input:     "x\nx\nx\nx\n",
			wantPlain: "x\n",
			wantCount: "   4 x\n",
		},
		{
			name:      "single_line_without_newline",
			input:     "a",
			wantPlain: "a",
			wantCount: "   1 a",
		},
		{
			name:      "last_line_without_newline_joins_run",
			input:     "a\na",
			wantPlain: "a\n",
			wantCount: "   2 a\n",
		},
		{
			name:      "last_line_without_newline_new_run",
			input:     "a\nb",
			wantPlain: "a\nb",
			wantCount: "   1 a\n   1 b",
		},
		{
			name:      "crlf_and_lf_are_equal",
			input:     "a\r\na\nb\r\n",
			wantPlain: "a\r\nb\r\n",
			wantCount: "   2 a\r\n   1 b\r\n",
		},
		{
			name:      "blank_lines",
			input:     "\n\n\na\n\n",
			wantPlain: "\na\n\n",
			wantCount: "   3 \n   1 a\n   1 \n",
		},
		{
			name:      "whitespace_is_significant",
			input:     "a\na \n a\n",
			wantPlain: "a\na \n a\n",
			wantCount: "   1 a\n   1 a \n   1  a\n",
		},
		{
			name:      "case_is_significant",
			input:     "a\nA\n",
			wantPlain: "a\nA\n",
			wantCount: "   1 a\n   1 A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, _ := dedup(t, tt.input, false)
			assert.Equal(t, tt.wantPlain, plain)

			counted, _ := dedup(t, tt.input, true)
			assert.Equal(t, tt.wantCount, counted)
		})
	}
}

func TestProcessSummary(t *testing.T) {
	_, summary := dedup(t, "a\na\nb\nc\nc\nc", false)
	assert.Equal(t, Summary{Lines: 6, Runs: 3}, summary)

	_, summary = dedup(t, "", true)
	assert.Equal(t, Summary{}, summary)
}

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		line      string
		count     int
		showCount bool
		want      string
	}{
		{"a\n", 1, false, "a\n"},
		{"a\n", 7, false, "a\n"},
		{"a\n", 1, true, "   1 a\n"},
		{"a", 12, true, "  12 a"},
		{"a\n", 9999, true, "9999 a\n"},
		{"a\n", 12345, true, "12345 a\n"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.count)+"_"+strconv.FormatBool(tt.showCount), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRecord(tt.line, tt.count, tt.showCount))
		})
	}
}

// randomInput builds input from a small alphabet so runs are common
func randomInput(rng *rand.Rand) string {
	words := []string{"a", "b", "c", ""}
	var sb strings.Builder
	n := rng.Intn(40)
	for i := 0; i < n; i++ {
		sb.WriteString(words[rng.Intn(len(words))])
		if i < n-1 || rng.Intn(2) == 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// splitLines mirrors the reader: terminators kept, final fragment kept
func splitLines(s string) []string {
	var lines []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		input := randomInput(rng)
		inputLines := splitLines(input)

		plain, summary := dedup(t, input, false)
		counted, _ := dedup(t, input, true)

		// Deduplicating already deduplicated output changes nothing
		again, _ := dedup(t, plain, false)
		require.Equal(t, plain, again, "idempotence, input %q", input)

		// Emitted counts add up to the number of input lines
		total := 0
		for _, record := range splitLines(counted) {
			n, err := strconv.Atoi(strings.TrimSpace(record[:CountWidth]))
			require.NoError(t, err, "record %q", record)
			total += n
		}
		require.Equal(t, len(inputLines), total, "count conservation, input %q", input)
		require.Equal(t, len(inputLines), summary.Lines)

		// Output representatives are the run heads, in order
		var heads []string
		for j, line := range inputLines {
			if j == 0 || !sameContent(line, inputLines[j-1]) {
				heads = append(heads, line)
			}
		}
		require.Equal(t, strings.Join(heads, ""), plain, "order preservation, input %q", input)
		require.Equal(t, len(heads), summary.Runs)
	}
}

type errReader struct{ err error }

func (e errReader) ReadLine() (string, error) { return "", e.err }
func (e errReader) Name() string              { return "broken" }
func (e errReader) Close() error              { return nil }

type errWriter struct {
	err     error
	written []string
}

func (e *errWriter) WriteRecord(s string) error {
	e.written = append(e.written, s)
	return e.err
}
func (e *errWriter) Name() string { return "broken" }
func (e *errWriter) Close() error { return nil }

func TestProcessErrors(t *testing.T) {
	t.Run("read_error", func(t *testing.T) {
		cause := errors.New(errors.ErrRead, "read failed")
		var buf bytes.Buffer

		_, err := Process(errReader{err: cause}, stream.NewWriter(&buf), false)
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, buf.String())
	})

	t.Run("write_error_aborts", func(t *testing.T) {
		cause := stderrors.New("disk full")
		w := &errWriter{err: cause}

		_, err := Process(stream.NewReader(strings.NewReader("a\nb\nc\n")), w, false)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, []string{"a\n"}, w.written, "no records after the first failure")
	})
}

func TestRun(t *testing.T) {
	t.Run("file_to_file_with_count", func(t *testing.T) {
		dir := t.TempDir()
		in := testutil.CreateFile(t, dir, "in.txt", "a\na\nb\n")
		out := filepath.Join(dir, "out.txt")

		require.NoError(t, Run(config.Config{InFile: in, OutFile: out, Count: true}))
		assert.Equal(t, "   2 a\n   1 b\n", testutil.ReadFile(t, out))
	})

	t.Run("stdin_to_stdout", func(t *testing.T) {
		out := testutil.WithStdio(t, "a\na\nb\n", func() {
			require.NoError(t, Run(config.Config{InFile: "-"}))
		})
		assert.Equal(t, "a\nb\n", out)
	})

	t.Run("stdin_empty", func(t *testing.T) {
		out := testutil.WithStdio(t, "", func() {
			require.NoError(t, Run(config.Config{InFile: "-", Count: true}))
		})
		assert.Equal(t, "", out)
	})

	t.Run("empty_input_creates_empty_output", func(t *testing.T) {
		dir := t.TempDir()
		in := testutil.CreateFile(t, dir, "empty.txt", "")
		out := filepath.Join(dir, "out.txt")

		require.NoError(t, Run(config.Config{InFile: in, OutFile: out}))
		assert.Equal(t, "", testutil.ReadFile(t, out))
	})

	t.Run("output_is_truncated", func(t *testing.T) {
		dir := t.TempDir()
		in := testutil.CreateFile(t, dir, "in.txt", "x\nx\n")
		out := testutil.CreateFile(t, dir, "out.txt", "stale\nstale\nstale\n")

		require.NoError(t, Run(config.Config{InFile: in, OutFile: out}))
		assert.Equal(t, "x\n", testutil.ReadFile(t, out))
	})

	t.Run("missing_input", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "blargh")
		out := filepath.Join(dir, "out.txt")

		err := Run(config.Config{InFile: in, OutFile: out})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileOpen))
		assert.Contains(t, err.Error(), in)

		testutil.AssertNoFile(t, out)
	})

	t.Run("uncreatable_output", func(t *testing.T) {
		dir := t.TempDir()
		in := testutil.CreateFile(t, dir, "in.txt", "a\n")
		out := filepath.Join(dir, "missing-dir", "out.txt")

		err := Run(config.Config{InFile: in, OutFile: out})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileCreate))
		assert.Contains(t, err.Error(), out)
	})
}
