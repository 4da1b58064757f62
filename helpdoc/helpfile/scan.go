package helpfile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnterminatedBlock is returned when a help block has
// no end marker.
var ErrUnterminatedBlock = errors.New("unterminated help block")

// DefaultIdentifier is the variable help blocks are
// assigned to.
const DefaultIdentifier = "helps"

const endMarker = `"""`

// Block is a command help block. Start and End are the
// marker lines; Body holds the lines in between. Every
// line keeps its line terminator.
type Block struct {
	Command string
	Start   string
	Body    []string
	End     string
}

// Segment is either plain text or a help block.
type Segment struct {
	Text  string
	Block *Block
}

// Scanner finds help blocks assigned to Identifier.
type Scanner struct {
	// Identifier is the assigned variable. Empty means
	// DefaultIdentifier.
	Identifier string
}

func (s Scanner) identifier() string {
	if s.Identifier == "" {
		return DefaultIdentifier
	}

	return s.Identifier
}

func (s Scanner) startPattern() *regexp.Regexp {
	return regexp.MustCompile(
		`^` + regexp.QuoteMeta(s.identifier()) +
			`\['(.*?)'\] = """\r?\n?$`,
	)
}

// Scan splits content into segments. Concatenating the
// text of all segments, with each block rendered as
// Start, Body and End, yields content again.
func (s Scanner) Scan(content string) ([]Segment, error) {
	const errCtx = "scanning help file"

	start := s.startPattern()
	prefix := s.identifier() + "['"

	var (
		segs  []Segment
		plain strings.Builder
		block *Block
	)

	flush := func() {
		if plain.Len() > 0 {
			segs = append(segs, Segment{Text: plain.String()})
			plain.Reset()
		}
	}

	for _, line := range splitLines(content) {
		if block != nil {
			if strings.TrimRight(line, "\r\n") == endMarker {
				block.End = line
				segs = append(segs, Segment{Block: block})
				block = nil

				continue
			}

			block.Body = append(block.Body, line)

			continue
		}

		if !strings.HasPrefix(line, prefix) {
			plain.WriteString(line)

			continue
		}

		m := start.FindStringSubmatch(line)
		if m == nil {
			plain.WriteString(line)

			continue
		}

		flush()

		block = &Block{
			Command: strings.TrimSpace(m[1]),
			Start:   line,
		}
	}

	if block != nil {
		return nil, fmt.Errorf(
			"%s: %w: %q", errCtx, ErrUnterminatedBlock, block.Command,
		)
	}

	flush()

	return segs, nil
}

// String renders the block back to text.
func (b *Block) String() string {
	return b.Start + strings.Join(b.Body, "") + b.End
}

// splitLines splits content after every newline. The last
// element has no terminator when content does not end with
// a newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
