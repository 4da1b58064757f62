// Package github implements a git.GitProvider that opens pull requests on
// GitHub or GitHub Enterprise. Set HeadOwner in Config when the head branch
// lives in a fork, the usual setup for generated documentation updates.
package github
