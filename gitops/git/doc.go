// Package git drives an existing git work tree and opens pull requests.
//
// Repo wraps the work tree the help files live in: it makes sure a branch is
// checked out, commits files one at a time and pushes the result. The
// GitProvider interface abstracts pull request creation; implementations for
// GitHub and GitLab live in sub-packages, and GitProviderFunc lets a plain
// function satisfy the interface.
package git
