package example

import (
	"strings"
)

const (
	// WrapColumn is the width at which an invocation is
	// broken into one flag per continuation line.
	WrapColumn = 80

	// DefaultProgram is the executable written in front
	// of every rendered command.
	DefaultProgram = "az"

	step = "  "

	// continuation is a space, an escaped backslash and
	// a newline as they appear inside a Python string
	// literal.
	continuation = ` \\` + "\n"
)

// Formatter renders records as YAML list entries.
type Formatter struct {
	// Program precedes the command on the text line.
	// Empty means DefaultProgram.
	Program string
}

// Format renders rec as an entry of an "examples" list
// whose items start at indent.
//
// The parameters are the text after cmd with every
// backslash doubled. They stay on the command line while
// len(params)+len(indent) < WrapColumn; otherwise every
// space separated token gets its own continuation line
// when it is a flag, and follows the previous token when
// it is a value.
func (f Formatter) Format(cmd string, rec Record, indent string) string {
	prog := f.Program
	if prog == "" {
		prog = DefaultProgram
	}

	textIndent := indent + step + step + step

	var sb strings.Builder

	sb.WriteString(indent + "- name: " + rec.Name + "\n")
	sb.WriteString(indent + step + "text: |\n")
	sb.WriteString(textIndent + prog + " " + cmd)

	params := strings.ReplaceAll(rec.Text, `\`, `\\`)
	if idx := strings.Index(params, cmd); idx >= 0 {
		params = params[idx+len(cmd):]
	}

	params = strings.TrimSpace(params)

	if len(params)+len(indent) < WrapColumn {
		sb.WriteString(" " + params)
	} else {
		for _, tok := range strings.Split(params, " ") {
			if strings.HasPrefix(tok, flagPrefix) {
				sb.WriteString(continuation + textIndent + tok)
			} else {
				sb.WriteString(" " + tok)
			}
		}
	}

	if rec.IsCrafted() {
		sb.WriteString("\n" + indent + step + "crafted: true")
	}

	sb.WriteString("\n")

	return sb.String()
}
