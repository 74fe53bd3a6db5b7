// Package errors provides sentinel errors and custom error types for the gitvend application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrRepoExists indicates that a clone target directory already exists
	ErrRepoExists = errors.New("repository directory already exists")

	// ErrEmptyCommand indicates that an empty argument vector was submitted for execution
	ErrEmptyCommand = errors.New("empty argument vector")
)

// RepoExistsError represents a clone into a directory that already exists
type RepoExistsError struct {
	URL  string
	Path string
}

func (e *RepoExistsError) Error() string {
	return fmt.Sprintf("cannot clone %s because %s already exists", e.URL, e.Path)
}

// Is returns true if the target error is ErrRepoExists
func (e *RepoExistsError) Is(target error) bool {
	return target == ErrRepoExists
}

// NewRepoExistsError creates a new RepoExistsError
func NewRepoExistsError(url, path string) *RepoExistsError {
	return &RepoExistsError{URL: url, Path: path}
}

// CommandError represents a failure from an external command execution
type CommandError struct {
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Args:   args,
		Stdout: stdout,
		Stderr: stderr,
		Err:    err,
	}
}
