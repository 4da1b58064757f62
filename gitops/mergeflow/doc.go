// Package mergeflow runs a complete example merge: it loads the generated
// helps, merges them into every configured help file, commits each changed
// file with its own message, and optionally pushes the branch and opens a
// pull request through a git.GitProvider.
//
// The main entry point is Run, which accepts a Config struct with all
// parameters for the workflow.
package mergeflow
