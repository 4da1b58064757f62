package commitmsg

import (
	"github.com/valyala/fasttemplate"
)

const (
	// DefaultCommit is the commit message template.
	DefaultCommit = "[{module}] Merge {source} generated examples"
	// DefaultTitle is the pull request title template.
	DefaultTitle = "[{source} Parser] Parse {source} into commands' help files"
)

// Templates holds message templates. Placeholders are
// {module} and {source}; unknown placeholders are kept.
type Templates struct {
	// Commit is used for every per-file commit. Empty
	// means DefaultCommit.
	Commit string
	// Title is used for the pull request. Empty means
	// DefaultTitle.
	Title string
}

// CommitMessage renders the commit message for the help
// file of module.
func (t Templates) CommitMessage(module string, source string) string {
	return render(orDefault(t.Commit, DefaultCommit), module, source)
}

// PRTitle renders the pull request title.
func (t Templates) PRTitle(source string) string {
	return render(orDefault(t.Title, DefaultTitle), "", source)
}

// Generate renders DefaultCommit.
func Generate(module string, source string) string {
	return Templates{}.CommitMessage(module, source)
}

// PRTitle renders DefaultTitle.
func PRTitle(source string) string {
	return Templates{}.PRTitle(source)
}

func render(tpl string, module string, source string) string {
	return fasttemplate.ExecuteStringStd(tpl, "{", "}", map[string]any{
		"module": module,
		"source": source,
	})
}

func orDefault(s string, def string) string {
	if s == "" {
		return def
	}

	return s
}
