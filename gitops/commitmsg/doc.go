// Package commitmsg renders the commit messages and pull request titles of a
// merge run, e.g. "[Vm] Merge Aladdin generated examples".
package commitmsg
