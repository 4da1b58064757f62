package helpfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultExclude skips help files inside test packages.
const DefaultExclude = "**/tests/**"

// Discovery lists the help files to process.
type Discovery struct {
	// Root is the directory relative paths and
	// patterns are resolved against.
	Root string
	// Paths are explicit help file paths.
	Paths []string
	// Patterns are doublestar globs, matched
	// relative to Root.
	Patterns []string
	// Exclude drops pattern matches. Explicit paths
	// are never excluded.
	Exclude string
}

// Discover returns the sorted, deduplicated help files.
func (d Discovery) Discover() ([]string, error) {
	const errCtx = "discovering help files"

	root := d.Root
	if root == "" {
		root = "."
	}

	seen := make(map[string]struct{})

	var files []string

	add := func(p string) {
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}

		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, p := range d.Paths {
		add(p)
	}

	fsys := os.DirFS(root)

	for _, pattern := range d.Patterns {
		matches, err := doublestar.Glob(
			fsys, pattern, doublestar.WithFilesOnly(),
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: pattern %q: %w", errCtx, pattern, err,
			)
		}

		for _, m := range matches {
			if d.Exclude != "" {
				skip, err := doublestar.Match(d.Exclude, m)
				if err != nil {
					return nil, fmt.Errorf(
						"%s: exclude %q: %w",
						errCtx, d.Exclude, err,
					)
				}

				if skip {
					continue
				}
			}

			add(filepath.FromSlash(m))
		}
	}

	sort.Strings(files)

	return files, nil
}

// ModuleName names the command module owning the help
// file at path: its parent directory, capitalised. For
// ".../command_modules/vm/_help.py" it returns "Vm".
func ModuleName(path string) string {
	dir := filepath.Base(filepath.Dir(path))

	return cases.Title(language.Und).String(dir)
}
