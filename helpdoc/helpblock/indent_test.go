package helpblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/helpmerge/helpdoc/helpblock"
)

func TestInferIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lines     []string
		wantOuter string
		wantInner string
	}{
		{
			name: "no examples key",
			lines: []string{
				"    type: command\n",
				"    short-summary: Create a VM.\n",
			},
			wantOuter: "    ",
			wantInner: "      ",
		},
		{
			name: "existing examples key",
			lines: []string{
				"type: command\n",
				"examples:\n",
				"    - name: a\n",
				"      text: az vm list\n",
			},
			wantOuter: "",
			wantInner: "    ",
		},
		{
			name: "indented examples key",
			lines: []string{
				"  type: command\n",
				"  examples:\n",
				"  - name: a\n",
			},
			wantOuter: "  ",
			wantInner: "  ",
		},
		{
			name: "examples key on the last line",
			lines: []string{
				"type: command\n",
				" examples:\n",
			},
			wantOuter: " ",
			wantInner: "   ",
		},
		{
			name: "first match wins",
			lines: []string{
				"type: command\n",
				"long-summary: >\n",
				"   examples follow below\n",
				"      more text\n",
				"examples:\n",
				"  - name: a\n",
			},
			wantOuter: "   ",
			wantInner: "      ",
		},
		{
			name: "tabs are not indentation",
			lines: []string{
				"\t type: command\n",
			},
			wantOuter: "",
			wantInner: "  ",
		},
		{
			name:      "empty block",
			lines:     nil,
			wantOuter: "",
			wantInner: "  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outer, inner := helpblock.InferIndent(tt.lines)

			assert.Equal(t, tt.wantOuter, outer)
			assert.Equal(t, tt.wantInner, inner)
		})
	}
}
