package example_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/helpmerge/helpdoc/example"
)

func TestExtractSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  string
		text string
		want example.Signature
	}{
		{
			name: "flags are sorted",
			cmd:  "vm create",
			text: "az vm create --name x --location westus",
			want: example.Signature{"--location", "--name"},
		},
		{
			name: "quoted values are single words",
			cmd:  "vm run-command invoke",
			text: `az vm run-command invoke --scripts "echo --fake" --name x`,
			want: example.Signature{"--name", "--scripts"},
		},
		{
			name: "repeated flags collapse",
			cmd:  "group update",
			text: "az group update --tag a=1 --tag b=2",
			want: example.Signature{"--tag"},
		},
		{
			name: "equals form is kept whole",
			cmd:  "vm show",
			text: "az vm show --name=x",
			want: example.Signature{"--name=x"},
		},
		{
			name: "text before the command is ignored",
			cmd:  "vm list",
			text: "sudo --preserve-env az vm list --all",
			want: example.Signature{"--all"},
		},
		{
			name: "short flags are not part of the signature",
			cmd:  "vm list",
			text: "az vm list -g rg --all",
			want: example.Signature{"--all"},
		},
		{
			name: "no flags",
			cmd:  "account list",
			text: "az account list",
			want: example.Signature{},
		},
		{
			name: "line continuations",
			cmd:  "vm create",
			text: "az vm create --name x \\\n  --image ubuntu",
			want: example.Signature{"--image", "--name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := example.ExtractSignature(tt.cmd, tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSignature_missing_command(t *testing.T) {
	t.Parallel()

	sig, err := example.ExtractSignature(
		"vm create", "az network vnet create --name x",
	)

	assert.Nil(t, sig)
	assert.ErrorIs(t, err, example.ErrMalformedExample)
}

func TestExtractSignature_unbalanced_quote(t *testing.T) {
	t.Parallel()

	_, err := example.ExtractSignature(
		"vm create", `az vm create --name "x`,
	)

	assert.ErrorIs(t, err, example.ErrMalformedExample)
}

func TestSignature_Key(t *testing.T) {
	t.Parallel()

	a := example.Signature{"--a", "--b"}
	b := example.Signature{"--a", "--b"}
	c := example.Signature{"--a --b"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, "[--a --b]", a.String())
}
