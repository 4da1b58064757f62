package helpblock

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/byte4ever/helpmerge/helpdoc/example"
)

// Merger appends generated examples to help blocks.
type Merger struct {
	Formatter example.Formatter
}

// Result describes what Merge appended to a block.
type Result struct {
	// Text goes right before the block's end marker.
	// Empty when nothing was added.
	Text string
	// Added counts the appended examples.
	Added int
	// KeyAdded is true when an "examples" key was
	// emitted.
	KeyAdded bool
}

// Merge returns the text to append to the block made of
// lines so that it also carries the generated examples of
// cmd. A generated example is added only when no existing
// example has the same signature. Generated examples that
// share a signature are added together.
func (m Merger) Merge(
	cmd string,
	lines []string,
	generated []example.Record,
) (Result, error) {
	const errCtx = "merging help block"

	if len(generated) == 0 {
		return Result{}, nil
	}

	help, err := Parse(lines)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %s: %w", errCtx, cmd, err)
	}

	existing, err := example.GroupBySignature(cmd, help.Examples)
	if err != nil {
		return Result{}, fmt.Errorf(
			"%s: %s: existing examples: %w", errCtx, cmd, err,
		)
	}

	incoming, err := example.GroupBySignature(cmd, generated)
	if err != nil {
		return Result{}, fmt.Errorf(
			"%s: %s: generated examples: %w", errCtx, cmd, err,
		)
	}

	slog.Debug(
		"grouped examples",
		"command", cmd,
		"existing", existing.Len(),
		"generated", incoming.Len(),
	)

	outer, inner := InferIndent(lines)

	var (
		res Result
		sb  strings.Builder
	)

	for _, bucket := range incoming.Buckets() {
		if existing.Has(bucket.Signature) {
			continue
		}

		if !res.KeyAdded && !help.HasExamplesKey {
			sb.WriteString(outer + examplesKey + ":\n")
			res.KeyAdded = true
		}

		slog.Info(
			"merging examples",
			"command", cmd,
			"signature", bucket.Signature.String(),
			"count", len(bucket.Records),
		)

		for _, rec := range bucket.Records {
			sb.WriteString(m.Formatter.Format(cmd, rec, inner))
			res.Added++
		}
	}

	res.Text = sb.String()

	return res, nil
}
