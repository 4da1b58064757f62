// Package exec runs external tools, logging each invocation.
package exec

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Ex runs name with arg inside dir and returns the
// combined stdout and stderr. An empty dir means the
// current working directory. The command is killed when
// ctx is done.
func Ex(
	ctx context.Context,
	dir string,
	name string,
	arg ...string,
) (string, error) {
	const errCtx = "executing command"

	line := strings.Join(arg, " ")

	slog.Debug("executing", "dir", dir, "cmd", name, "args", line)

	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Dir = dir

	by, err := cmd.CombinedOutput()
	out := string(by)

	if err != nil {
		return out, fmt.Errorf(
			"%s: %s %s: %w: %s",
			errCtx, name, line, err, strings.TrimSpace(out),
		)
	}

	return out, nil
}

// Line runs the command like Ex and returns its output
// with surrounding whitespace removed.
func Line(
	ctx context.Context,
	dir string,
	name string,
	arg ...string,
) (string, error) {
	out, err := Ex(ctx, dir, name, arg...)

	return strings.TrimSpace(out), err
}
