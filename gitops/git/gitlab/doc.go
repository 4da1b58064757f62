// Package gitlab implements a git.GitProvider that opens merge requests on
// GitLab.
package gitlab
