package helpfile

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/byte4ever/helpmerge/helpdoc/example"
	"github.com/byte4ever/helpmerge/helpdoc/helpblock"
)

// Stats summarises a merge over one file.
type Stats struct {
	// Blocks is the number of help blocks found.
	Blocks int
	// Matched counts blocks with generated examples.
	Matched int
	// Commands counts blocks that gained examples.
	Commands int
	// Added is the number of examples appended.
	Added int
}

// Merger merges generated examples into help files.
type Merger struct {
	Scanner Scanner
	Blocks  helpblock.Merger
}

// MergeContent returns content with the examples of
// generated appended to the matching help blocks. Blocks
// of commands absent from generated are left as they are.
func (m Merger) MergeContent(
	content string,
	generated map[string][]example.Record,
) (string, Stats, error) {
	const errCtx = "merging help content"

	segs, err := m.Scanner.Scan(content)
	if err != nil {
		return "", Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	var (
		stats Stats
		sb    strings.Builder
	)

	sb.Grow(len(content))

	for _, seg := range segs {
		if seg.Block == nil {
			sb.WriteString(seg.Text)

			continue
		}

		blk := seg.Block
		stats.Blocks++

		sb.WriteString(blk.Start)
		sb.WriteString(strings.Join(blk.Body, ""))

		if recs, ok := generated[blk.Command]; ok {
			stats.Matched++

			res, mergeErr := m.Blocks.Merge(blk.Command, blk.Body, recs)
			if mergeErr != nil {
				return "", Stats{}, fmt.Errorf(
					"%s: %w", errCtx, mergeErr,
				)
			}

			if res.Added > 0 {
				stats.Commands++
				stats.Added += res.Added
				sb.WriteString(withLineEnding(res.Text, blk))
			}
		}

		sb.WriteString(blk.End)
	}

	return sb.String(), stats, nil
}

// withLineEnding converts the LF terminated text to the
// line ending of blk's start marker.
func withLineEnding(text string, blk *Block) string {
	if !strings.HasSuffix(blk.Start, "\r\n") {
		return text
	}

	return strings.ReplaceAll(text, "\n", "\r\n")
}

// MergeFile merges generated examples into the help file
// at path and replaces it through a temporary file in the
// same directory. The original stays intact on failure.
func (m Merger) MergeFile(
	path string,
	generated map[string][]example.Record,
) (Stats, error) {
	const errCtx = "merging help file"

	slog.Info("processing help file", "path", path)

	raw, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	out, stats, err := m.MergeContent(string(raw), generated)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	if err := atomic.WriteFile(
		path, strings.NewReader(out),
	); err != nil {
		return Stats{}, fmt.Errorf(
			"%s: replace %s: %w", errCtx, path, err,
		)
	}

	slog.Info(
		"merged help file",
		"path", path,
		"blocks", stats.Blocks,
		"commands", stats.Commands,
		"examples", stats.Added,
	)

	return stats, nil
}
