package git

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/byte4ever/helpmerge/gitops/exec"
)

// DefaultRemote is the remote pushed to when none is
// configured.
const DefaultRemote = "origin"

// Repo is an existing git work tree. Create with Open.
type Repo struct {
	// Dir is the top level directory of the work tree.
	Dir string
	// RemoteName is the name of the upstream remote.
	RemoteName string
}

// Open returns the repository whose work tree contains
// dir. An empty remote means DefaultRemote.
func Open(
	ctx context.Context,
	dir string,
	remote string,
) (*Repo, error) {
	const errCtx = "opening repository"

	top, err := exec.Line(
		ctx, dir, "git", "rev-parse", "--show-toplevel",
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", errCtx, dir, err)
	}

	if remote == "" {
		remote = DefaultRemote
	}

	return &Repo{
		Dir:        top,
		RemoteName: remote,
	}, nil
}

// CurrentBranch returns the checked out branch. It
// returns an empty name when HEAD is detached.
func (r *Repo) CurrentBranch(ctx context.Context) string {
	name, err := exec.Line(
		ctx, r.Dir, "git", "symbolic-ref", "--quiet", "--short", "HEAD",
	)
	if err != nil {
		return ""
	}

	return name
}

// EnsureBranch returns the checked out branch. When HEAD
// is detached it first creates and checks out branch,
// carrying over uncommitted changes.
func (r *Repo) EnsureBranch(
	ctx context.Context,
	branch string,
) (string, error) {
	const errCtx = "ensuring branch"

	if cur := r.CurrentBranch(ctx); cur != "" {
		return cur, nil
	}

	if branch == "" {
		return "", fmt.Errorf("%s: HEAD is detached and no branch given", errCtx)
	}

	slog.Info("HEAD is detached, creating branch", "branch", branch)

	if _, err := exec.Ex(
		ctx, r.Dir, "git", "checkout", "-b", branch,
	); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return branch, nil
}

// pathspec returns path relative to the work tree top
// level. Relative paths resolve against the process
// working directory, not Dir.
func (r *Repo) pathspec(path string) (string, error) {
	abs, err := realPath(path)
	if err != nil {
		return "", err
	}

	top, err := realPath(r.Dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(top, abs)
	if err != nil {
		return "", err
	}

	if rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside work tree %s", path, top)
	}

	return filepath.ToSlash(rel), nil
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	return abs, nil
}

// HasDiff reports whether the tracked file at path has
// unstaged changes.
func (r *Repo) HasDiff(
	ctx context.Context,
	path string,
) (bool, error) {
	const errCtx = "diffing file"

	spec, err := r.pathspec(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	out, err := exec.Line(
		ctx, r.Dir, "git", "diff", "--name-only", "--", spec,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return out != "", nil
}

// CommitFile stages path and commits it alone with
// message. Returns false without committing when path has
// no changes.
func (r *Repo) CommitFile(
	ctx context.Context,
	path string,
	message string,
) (bool, error) {
	const errCtx = "committing file"

	changed, err := r.HasDiff(ctx, path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	if !changed {
		return false, nil
	}

	spec, err := r.pathspec(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := exec.Ex(
		ctx, r.Dir, "git", "add", "--", spec,
	); err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := exec.Ex(
		ctx, r.Dir, "git", "commit", "-m", message, "--", spec,
	); err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return true, nil
}

// GetLastCommitMessage returns the most recent commit
// message on the current branch. Returns empty string
// on error.
func (r *Repo) GetLastCommitMessage(ctx context.Context) string {
	msg, err := exec.Line(
		ctx, r.Dir, "git", "log", "-1", "--pretty=%B",
	)
	if err != nil {
		return ""
	}

	return msg
}

// IsClean reports whether the working tree has no
// uncommitted changes.
func (r *Repo) IsClean(ctx context.Context) bool {
	out, err := exec.Line(
		ctx, r.Dir, "git", "status", "--porcelain",
	)
	if err != nil {
		slog.Error("failed to check repo status", "error", err)

		return false
	}

	return out == ""
}

// Push pushes the local branch to branch remote on the
// configured remote.
func (r *Repo) Push(
	ctx context.Context,
	local string,
	remote string,
) error {
	const errCtx = "pushing branch"

	if _, err := exec.Ex(
		ctx, r.Dir, "git", "push", r.RemoteName, local+":"+remote,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
