package helpblock

import "strings"

const (
	examplesKey = "examples"
	step        = "  "
)

// InferIndent returns the indentation of the "examples"
// key (outer) and of its entries (inner). When no line
// starts with "examples" the first line's indentation is
// used as outer and inner is two spaces deeper. Only
// space characters count as indentation.
func InferIndent(lines []string) (string, string) {
	if len(lines) == 0 {
		return "", step
	}

	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), examplesKey) {
			continue
		}

		outer := leadingSpaces(line)

		if i+1 < len(lines) {
			return outer, leadingSpaces(lines[i+1])
		}

		return outer, outer + step
	}

	outer := leadingSpaces(lines[0])

	return outer, outer + step
}

func leadingSpaces(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " "))]
}
