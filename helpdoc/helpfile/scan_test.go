package helpfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/helpmerge/helpdoc/helpfile"
)

const vmHelp = `# coding=utf-8
from knack.help_files import helps  # pylint: disable=unused-import

helps['vm'] = """
type: group
short-summary: Manage Linux or Windows virtual machines.
"""

helps['vm create'] = """
    type: command
    short-summary: Create an Azure Virtual Machine.
    examples:
      - name: Create a default Ubuntu VM.
        text: |
            az vm create --name x --image UbuntuLTS
"""
`

func render(segs []helpfile.Segment) string {
	var sb strings.Builder

	for _, seg := range segs {
		if seg.Block != nil {
			sb.WriteString(seg.Block.String())

			continue
		}

		sb.WriteString(seg.Text)
	}

	return sb.String()
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	segs, err := helpfile.Scanner{}.Scan(vmHelp)
	require.NoError(t, err)

	var cmds []string

	for _, seg := range segs {
		if seg.Block != nil {
			cmds = append(cmds, seg.Block.Command)
		}
	}

	assert.Equal(t, []string{"vm", "vm create"}, cmds)
	assert.Equal(t, vmHelp, render(segs))
}

func TestScanner_Scan_custom_identifier(t *testing.T) {
	t.Parallel()

	content := "docs['vm list'] = \"\"\"\ntype: command\n\"\"\"\n" +
		"helps['vm show'] = \"\"\"\ntype: command\n\"\"\"\n"

	segs, err := helpfile.Scanner{Identifier: "docs"}.Scan(content)
	require.NoError(t, err)

	require.NotNil(t, segs[0].Block)
	assert.Equal(t, "vm list", segs[0].Block.Command)
	assert.Equal(t, []string{"type: command\n"}, segs[0].Block.Body)
	assert.Nil(t, segs[1].Block)
	assert.Equal(t, content, render(segs))
}

func TestScanner_Scan_marker_variants(t *testing.T) {
	t.Parallel()

	content := "helps['vm list'] = r\"\"\"\n" +
		"not a block\n" +
		"helps[' vm show '] = \"\"\"\r\n" +
		"type: command\r\n" +
		"\"\"\"\r\n"

	segs, err := helpfile.Scanner{}.Scan(content)
	require.NoError(t, err)

	require.Len(t, segs, 2)
	assert.Equal(
		t,
		"helps['vm list'] = r\"\"\"\nnot a block\n",
		segs[0].Text,
	)
	require.NotNil(t, segs[1].Block)
	assert.Equal(t, "vm show", segs[1].Block.Command)
	assert.Equal(t, content, render(segs))
}

func TestScanner_Scan_indented_end_is_body(t *testing.T) {
	t.Parallel()

	content := "helps['vm'] = \"\"\"\n" +
		"    \"\"\"\n" +
		"\"\"\""

	segs, err := helpfile.Scanner{}.Scan(content)
	require.NoError(t, err)

	require.Len(t, segs, 1)
	assert.Equal(t, []string{"    \"\"\"\n"}, segs[0].Block.Body)
	assert.Equal(t, `"""`, segs[0].Block.End)
}

func TestScanner_Scan_unterminated(t *testing.T) {
	t.Parallel()

	_, err := helpfile.Scanner{}.Scan(
		"helps['vm'] = \"\"\"\ntype: group\n",
	)

	assert.ErrorIs(t, err, helpfile.ErrUnterminatedBlock)
}

func TestScanner_Scan_empty(t *testing.T) {
	t.Parallel()

	segs, err := helpfile.Scanner{}.Scan("")

	require.NoError(t, err)
	assert.Empty(t, segs)
}
