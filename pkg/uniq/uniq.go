// Package uniq collapses runs of consecutive identical lines.
//
// A run is buffered as its first line, verbatim, plus an occurrence count.
// Lines compare equal when they match after trailing line terminators are
// removed, so "a" at end of input joins a preceding "a\n" run. Only one run
// is held at a time, so memory is bounded by the longest line.
package uniq

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/uniqr/pkg/config"
	"github.com/arthur-debert/uniqr/pkg/logging"
	"github.com/arthur-debert/uniqr/pkg/stream"
)

// CountWidth is the minimum width of the right-justified count prefix
const CountWidth = 4

// Summary describes a completed pass.
type Summary struct {
	// Lines is the number of input lines consumed.
	Lines int
	// Runs is the number of records emitted.
	Runs int
}

// Run opens the streams named by cfg and deduplicates input into output.
// The output is flushed and closed on every path; a close failure is
// reported only when the pass itself succeeded.
func Run(cfg config.Config) (err error) {
	logger := logging.GetLogger("uniq")

	in, err := stream.OpenInput(cfg.InFile)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := stream.OpenOutput(cfg.OutFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	done := logging.LogOperationStart(logger, "dedup")
	summary, err := Process(in, out, cfg.Count)
	done()
	if err != nil {
		return err
	}

	logger.Debug().
		Str("input", in.Name()).
		Str("output", out.Name()).
		Int("lines", summary.Lines).
		Int("runs", summary.Runs).
		Msg("Deduplication finished")

	return nil
}

// Process reads r to exhaustion, writing one record per run of equal
// lines to w. It does not close either side. The first read or write
// error aborts the pass.
func Process(r stream.LineReader, w stream.RecordWriter, showCount bool) (Summary, error) {
	var summary Summary

	current, err := r.ReadLine()
	if err == io.EOF {
		return summary, nil
	}
	if err != nil {
		return summary, err
	}
	count := 1
	summary.Lines = 1

	for {
		line, err := r.ReadLine()
		exhausted := err == io.EOF
		if err != nil && !exhausted {
			return summary, err
		}

		if !exhausted {
			summary.Lines++
			if sameContent(line, current) {
				count++
				continue
			}
		}

		if err := w.WriteRecord(FormatRecord(current, count, showCount)); err != nil {
			return summary, err
		}
		summary.Runs++

		if exhausted {
			return summary, nil
		}
		current, count = line, 1
	}
}

// FormatRecord renders one run. line is written verbatim, with whatever
// terminator it had.
func FormatRecord(line string, count int, showCount bool) string {
	if !showCount {
		return line
	}
	return fmt.Sprintf("%*d %s", CountWidth, count, line)
}

// sameContent compares two lines ignoring trailing \n and \r\n
func sameContent(a, b string) bool {
	return trimTerminator(a) == trimTerminator(b)
}

func trimTerminator(line string) string {
	if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(trimmed, "\r")
	}
	return line
}
