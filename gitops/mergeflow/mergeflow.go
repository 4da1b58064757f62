package mergeflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/byte4ever/helpmerge/gitops/commitmsg"
	"github.com/byte4ever/helpmerge/gitops/git"
	"github.com/byte4ever/helpmerge/helpdoc/example"
	"github.com/byte4ever/helpmerge/helpdoc/helpblock"
	"github.com/byte4ever/helpmerge/helpdoc/helpfile"
	"github.com/byte4ever/helpmerge/helpdoc/source"
)

// Config holds all settings for a merge run.
type Config struct {
	// GeneratedPath is the generated helps file.
	GeneratedPath string

	// RepoDir is the work tree holding the help
	// files. Relative help paths and globs resolve
	// against it.
	RepoDir string

	// HelpFiles are explicit help file paths.
	HelpFiles []string

	// HelpGlobs are doublestar patterns selecting
	// more help files.
	HelpGlobs []string

	// Exclude drops glob matches.
	Exclude string

	// SourceName names the example generator in
	// commit messages and the PR title.
	SourceName string

	// Program is the CLI executable written in
	// front of merged commands.
	Program string

	// Identifier is the variable help blocks are
	// assigned to.
	Identifier string

	// NoCommit leaves merged files uncommitted.
	NoCommit bool

	// Remote is the git remote to push to.
	Remote string

	// SourceBranch is checked out when HEAD is
	// detached, and is the remote branch pushed to.
	SourceBranch string

	// TargetBranch is the pull request base.
	TargetBranch string

	// Push pushes the commits when true.
	Push bool

	// CreatePR opens a pull request when true.
	CreatePR bool

	// Draft opens the pull request as a draft.
	Draft bool

	// PRBody is the pull request description.
	PRBody string

	// Templates render commit messages and the PR
	// title.
	Templates commitmsg.Templates

	// Provider opens pull requests. Required when
	// CreatePR is set.
	Provider git.GitProvider
}

// FileReport describes the outcome for one help file.
type FileReport struct {
	Path      string
	Module    string
	Stats     helpfile.Stats
	Committed bool
}

// Report summarises a run.
type Report struct {
	Files     []FileReport
	Commits   int
	Pushed    bool
	PRCreated bool
}

// Run merges generated examples into every help file,
// commits each changed file, and optionally pushes and
// opens a pull request. The first failure aborts the
// run.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	const errCtx = "running example merge"

	if cfg.CreatePR && cfg.Provider == nil {
		return nil, fmt.Errorf(
			"%s: pull request requested without provider", errCtx,
		)
	}

	// Step 1: Load generated examples.
	helps, err := source.Load(cfg.GeneratedPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	generated := helps.Examples()

	slog.Info(
		"loaded generated helps",
		"commands", len(helps),
		"with_examples", len(generated),
	)

	slog.Debug("generated commands", "commands", helps.Commands())

	// Step 2: Resolve help files.
	files, err := helpfile.Discovery{
		Root:     cfg.RepoDir,
		Paths:    cfg.HelpFiles,
		Patterns: cfg.HelpGlobs,
		Exclude:  cfg.Exclude,
	}.Discover()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	// Step 3: Merge every file.
	merger := helpfile.Merger{
		Scanner: helpfile.Scanner{Identifier: cfg.Identifier},
		Blocks: helpblock.Merger{
			Formatter: example.Formatter{Program: cfg.Program},
		},
	}

	rep := &Report{}

	for _, f := range files {
		stats, mergeErr := merger.MergeFile(f, generated)
		if mergeErr != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, mergeErr)
		}

		rep.Files = append(rep.Files, FileReport{
			Path:   f,
			Module: helpfile.ModuleName(f),
			Stats:  stats,
		})
	}

	if cfg.NoCommit {
		return rep, nil
	}

	// Step 4: Commit changed files one by one.
	if err := commitFiles(ctx, cfg, rep); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return rep, nil
}

// commitFiles commits each changed help file, then pushes
// and opens the pull request when configured.
func commitFiles(ctx context.Context, cfg Config, rep *Report) error {
	const errCtx = "committing changes"

	repo, err := git.Open(ctx, repoDir(cfg), cfg.Remote)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	branch, err := repo.EnsureBranch(ctx, cfg.SourceBranch)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	for i := range rep.Files {
		fr := &rep.Files[i]
		msg := cfg.Templates.CommitMessage(fr.Module, cfg.SourceName)

		committed, commitErr := repo.CommitFile(ctx, fr.Path, msg)
		if commitErr != nil {
			return fmt.Errorf("%s: %w", errCtx, commitErr)
		}

		if committed {
			slog.Info("committed", "path", fr.Path, "message", msg)

			fr.Committed = true
			rep.Commits++
		}
	}

	if !repo.IsClean(ctx) {
		slog.Warn("work tree has changes outside the merged help files")
	}

	if rep.Commits == 0 {
		slog.Info(
			"no changes, skipping push and pull request",
			"source", cfg.SourceName,
		)

		return nil
	}

	slog.Info(
		"committed help files",
		"commits", rep.Commits,
		"branch", branch,
		"last", repo.GetLastCommitMessage(ctx),
	)

	head := cfg.SourceBranch
	if head == "" {
		head = branch
	}

	if cfg.Push {
		if err := repo.Push(ctx, branch, head); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		rep.Pushed = true
	}

	if cfg.CreatePR {
		if err := cfg.Provider.CreatePR(ctx, git.PullRequest{
			Head:  head,
			Base:  cfg.TargetBranch,
			Title: cfg.Templates.PRTitle(cfg.SourceName),
			Body:  cfg.PRBody,
			Draft: cfg.Draft,
		}); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		rep.PRCreated = true
	}

	return nil
}

func repoDir(cfg Config) string {
	if cfg.RepoDir == "" {
		return "."
	}

	return cfg.RepoDir
}
