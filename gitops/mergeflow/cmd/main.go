// Command merge_examples merges generated CLI usage examples into command
// help files, commits every changed file and, on request, pushes the branch
// and opens a pull request.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/byte4ever/helpmerge/gitops/commitmsg"
	"github.com/byte4ever/helpmerge/gitops/git"
	"github.com/byte4ever/helpmerge/gitops/git/github"
	"github.com/byte4ever/helpmerge/gitops/git/gitlab"
	"github.com/byte4ever/helpmerge/gitops/mergeflow"
	"github.com/byte4ever/helpmerge/helpdoc/example"
	"github.com/byte4ever/helpmerge/helpdoc/helpfile"
)

// sliceFlag implements flag.Value for repeated flags.
type sliceFlag []string

func (s *sliceFlag) String() string {
	if s == nil {
		return ""
	}

	return strings.Join(*s, ",")
}

func (s *sliceFlag) Set(val string) error {
	*s = append(*s, val)

	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // CLI flag setup is inherently long
func run(args []string) error {
	const errCtx = "running merge_examples"

	fset := flag.NewFlagSet("merge_examples", flag.ContinueOnError)

	// Input flags.
	generatedPath := fset.String(
		"generated", "",
		"Generated helps file (YAML or JSON)",
	)
	repoDir := fset.String(
		"repo_dir", ".",
		"Work tree holding the help files",
	)

	var helpFiles, helpGlobs sliceFlag

	fset.Var(&helpFiles, "help_file", "Help file path (repeatable)")
	fset.Var(&helpGlobs, "help_glob", "Help file glob, relative to repo_dir (repeatable)")

	exclude := fset.String(
		"exclude_glob", helpfile.DefaultExclude,
		"Glob of help files to skip",
	)

	// Rendering flags.
	sourceName := fset.String(
		"source_name", "Aladdin",
		"Name of the example generator",
	)
	program := fset.String(
		"program", example.DefaultProgram,
		"CLI executable written before each command",
	)
	identifier := fset.String(
		"identifier", helpfile.DefaultIdentifier,
		"Variable help blocks are assigned to",
	)
	commitTpl := fset.String(
		"commit_message", commitmsg.DefaultCommit,
		"Commit message template ({module}, {source})",
	)
	titleTpl := fset.String(
		"pr_title", commitmsg.DefaultTitle,
		"Pull request title template ({source})",
	)
	prBody := fset.String("pr_body", "", "Pull request body")

	// Git flags.
	noCommit := fset.Bool("no_commit", false, "Leave merged files uncommitted")
	remote := fset.String("remote", git.DefaultRemote, "Remote to push to")
	sourceBranch := fset.String(
		"source_branch", "Aladdin-dst",
		"Branch created on detached HEAD and pushed to",
	)
	targetBranch := fset.String(
		"target_branch", "dev",
		"Pull request base branch",
	)
	push := fset.Bool("push", false, "Push commits to the remote")
	createPR := fset.Bool("create_pr", false, "Open a pull request")
	draft := fset.Bool("draft", false, "Open the pull request as a draft")

	// Provider flags.
	gitServer := fset.String(
		"git_server", "github",
		"Git hosting platform: github or gitlab",
	)
	ghRepoOwner := fset.String("github_repo_owner", "Azure", "GitHub target repository owner")
	ghRepo := fset.String("github_repo", "azure-cli", "GitHub target repository name")
	ghHeadOwner := fset.String("github_head_owner", "", "Owner of the fork holding the source branch")
	ghEnterprise := fset.String("github_enterprise_host", "", "GitHub Enterprise hostname")
	glHost := fset.String("gitlab_host", "", "GitLab instance URL")
	glRepo := fset.String("gitlab_repo", "", "GitLab project path (org/project)")

	// Ambient flags.
	envFile := fset.String(
		"env_file", ".env",
		"File with GITHUB_TOKEN or GITLAB_TOKEN",
	)
	logLevel := fset.String("log_level", "info", "debug, info, warn or error")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := setupLogging(*logLevel); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := loadEnv(*envFile); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if *generatedPath == "" {
		return fmt.Errorf("%s: -generated must be set", errCtx)
	}

	helpFiles = append(helpFiles, fset.Args()...)

	cfg := mergeflow.Config{
		GeneratedPath: *generatedPath,
		RepoDir:       *repoDir,
		HelpFiles:     helpFiles,
		HelpGlobs:     helpGlobs,
		Exclude:       *exclude,
		SourceName:    *sourceName,
		Program:       *program,
		Identifier:    *identifier,
		NoCommit:      *noCommit,
		Remote:        *remote,
		SourceBranch:  *sourceBranch,
		TargetBranch:  *targetBranch,
		Push:          *push,
		CreatePR:      *createPR,
		Draft:         *draft,
		PRBody:        *prBody,
		Templates: commitmsg.Templates{
			Commit: *commitTpl,
			Title:  *titleTpl,
		},
	}

	if *createPR {
		provider, err := newGitProvider(*gitServer, providerFlags{
			ghRepoOwner:  *ghRepoOwner,
			ghRepo:       *ghRepo,
			ghHeadOwner:  *ghHeadOwner,
			ghEnterprise: *ghEnterprise,
			ghToken:      os.Getenv("GITHUB_TOKEN"),
			glHost:       *glHost,
			glRepo:       *glRepo,
			glToken:      os.Getenv("GITLAB_TOKEN"),
		})
		if err != nil {
			return fmt.Errorf("%s: create provider: %w", errCtx, err)
		}

		cfg.Provider = provider
	}

	rep, err := mergeflow.Run(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	slog.Info(
		"done",
		"files", len(rep.Files),
		"commits", rep.Commits,
		"pushed", rep.Pushed,
		"pull_request", rep.PRCreated,
	)

	return nil
}

// setupLogging installs a tint handler on stderr,
// coloured only when stderr is a terminal.
func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	fd := os.Stderr.Fd()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   lvl,
		NoColor: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
	})))

	return nil
}

// loadEnv loads path into the environment. A missing
// file is not an error; variables already set win.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("loading env file: %w", err)
	}

	return nil
}

// providerFlags bundles provider-specific settings.
type providerFlags struct {
	ghRepoOwner  string
	ghRepo       string
	ghHeadOwner  string
	ghEnterprise string
	ghToken      string
	glHost       string
	glRepo       string
	glToken      string
}

// newGitProvider creates a git.GitProvider based on the
// server name.
func newGitProvider(
	server string,
	pf providerFlags,
) (git.GitProvider, error) {
	const errCtx = "creating git provider"

	switch server {
	case "github":
		p, err := github.NewProvider(github.Config{
			RepoOwner:           pf.ghRepoOwner,
			Repo:                pf.ghRepo,
			AccessToken:         pf.ghToken,
			EnterpriseHost:      pf.ghEnterprise,
			HeadOwner:           pf.ghHeadOwner,
			MaintainerCanModify: true,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return p, nil

	case "gitlab":
		p, err := gitlab.NewProvider(gitlab.Config{
			Host:        pf.glHost,
			Repo:        pf.glRepo,
			AccessToken: pf.glToken,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return p, nil

	default:
		return nil, fmt.Errorf("%s: unknown server %q", errCtx, server)
	}
}
