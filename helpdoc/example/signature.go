package example

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// ErrMalformedExample is returned when an example cannot
// be interpreted as an invocation of the expected command.
var ErrMalformedExample = errors.New("malformed example")

const flagPrefix = "--"

// Signature is the sorted set of long flags used by an
// example. It identifies the shape of an invocation.
type Signature []string

// Key returns a comparable representation of s suitable
// for map keys.
func (s Signature) Key() string {
	return strings.Join(s, "\x00")
}

// String renders the signature for logs.
func (s Signature) String() string {
	return "[" + strings.Join(s, " ") + "]"
}

// ExtractSignature splits the part of text following the
// first occurrence of cmd into shell words and returns the
// sorted, unique tokens starting with "--".
func ExtractSignature(cmd string, text string) (Signature, error) {
	const errCtx = "extracting signature"

	idx := strings.Index(text, cmd)
	if idx < 0 {
		return nil, fmt.Errorf(
			"%s: %w: %q does not invoke %q",
			errCtx, ErrMalformedExample, text, cmd,
		)
	}

	words, err := shellquote.Split(text[idx+len(cmd):])
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w: %q: %w",
			errCtx, ErrMalformedExample, text, err,
		)
	}

	seen := make(map[string]struct{}, len(words))
	sig := Signature{}

	for _, w := range words {
		if !strings.HasPrefix(w, flagPrefix) {
			continue
		}

		w = strings.TrimSpace(w)
		if _, ok := seen[w]; ok {
			continue
		}

		seen[w] = struct{}{}
		sig = append(sig, w)
	}

	sort.Strings(sig)

	return sig, nil
}
