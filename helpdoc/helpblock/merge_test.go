package helpblock_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/helpmerge/helpdoc/example"
	"github.com/byte4ever/helpmerge/helpdoc/helpblock"
)

func splitLines(s string) []string {
	return strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
}

func TestMerger_Merge_appends_new_signature(t *testing.T) {
	t.Parallel()

	block := "examples:\n" +
		"  - name: a\n" +
		"    text: |\n" +
		"      az vm create --name x\n"

	res, err := helpblock.Merger{}.Merge(
		"vm create",
		splitLines(block),
		[]example.Record{
			{Name: "dup", Text: "az vm create --name y"},
			{Name: "b", Text: "az vm create --name x --location westus"},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Added)
	assert.False(t, res.KeyAdded)
	assert.Equal(
		t,
		"  - name: b\n"+
			"    text: |\n"+
			"        az vm create --name x --location westus\n",
		res.Text,
	)
}

func TestMerger_Merge_emits_examples_key(t *testing.T) {
	t.Parallel()

	block := "    type: command\n" +
		"    short-summary: Create a VM.\n"

	res, err := helpblock.Merger{}.Merge(
		"vm create",
		splitLines(block),
		[]example.Record{
			{Name: "a", Text: "az vm create --name x"},
			{Name: "b", Text: "az vm create --location y"},
			{Name: "c", Text: "az vm create --name z"},
		},
	)
	require.NoError(t, err)

	want := "    examples:\n" +
		"      - name: a\n" +
		"        text: |\n" +
		"            az vm create --name x\n" +
		"      - name: c\n" +
		"        text: |\n" +
		"            az vm create --name z\n" +
		"      - name: b\n" +
		"        text: |\n" +
		"            az vm create --location y\n"

	assert.Equal(t, 3, res.Added)
	assert.True(t, res.KeyAdded)
	assert.Equal(t, want, res.Text)
}

func TestMerger_Merge_is_idempotent(t *testing.T) {
	t.Parallel()

	block := "    type: command\n"
	generated := []example.Record{
		{
			Name: "long",
			Text: "az vm create --resource-group myResourceGroup " +
				"--name myVM --image UbuntuLTS " +
				"--admin-username azureuser --generate-ssh-keys",
		},
		{Name: "short", Text: "az vm create --name x"},
	}

	first, err := helpblock.Merger{}.Merge(
		"vm create", splitLines(block), generated,
	)
	require.NoError(t, err)
	require.Equal(t, 2, first.Added)

	merged := block + first.Text

	second, err := helpblock.Merger{}.Merge(
		"vm create", splitLines(merged), generated,
	)
	require.NoError(t, err)

	assert.Zero(t, second.Added)
	assert.Empty(t, second.Text)
}

func TestMerger_Merge_no_generated_examples(t *testing.T) {
	t.Parallel()

	res, err := helpblock.Merger{}.Merge(
		"vm create", []string{"type: command\n"}, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, helpblock.Result{}, res)
}

func TestMerger_Merge_existing_empty_examples_key(t *testing.T) {
	t.Parallel()

	res, err := helpblock.Merger{}.Merge(
		"vm list",
		[]string{"type: command\n", "examples:\n"},
		[]example.Record{{Name: "a", Text: "az vm list --all"}},
	)
	require.NoError(t, err)

	assert.False(t, res.KeyAdded)
	assert.Equal(
		t,
		"  - name: a\n    text: |\n        az vm list --all\n",
		res.Text,
	)
}

func TestMerger_Merge_malformed_generated(t *testing.T) {
	t.Parallel()

	_, err := helpblock.Merger{}.Merge(
		"vm create",
		[]string{"type: command\n"},
		[]example.Record{{Name: "a", Text: "az vm delete --name x"}},
	)

	assert.ErrorIs(t, err, example.ErrMalformedExample)
}

func TestMerger_Merge_malformed_existing(t *testing.T) {
	t.Parallel()

	block := "examples:\n" +
		"  - name: a\n" +
		"    text: az network list\n"

	_, err := helpblock.Merger{}.Merge(
		"vm create",
		splitLines(block),
		[]example.Record{{Name: "b", Text: "az vm create --name x"}},
	)

	assert.ErrorIs(t, err, example.ErrMalformedExample)
}
