// Package git provides a handle over a local git working copy.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Cloning a remote repository (optionally with submodules)
//   - Fast-forwarding the current branch from its remote
//   - Pinning the working copy to a branch or tag
//   - Running arbitrary commands inside the checkout
//
// Command execution goes through the Runner interface, injected per handle
// at construction time, so tests can substitute a recording fake without
// touching global state. This package should be the only place where direct
// git commands are executed.
package git
