package git

import (
	"bytes"
	"context"
	"os/exec"

	gverrors "gitvend.dev/gitvend/internal/errors"
)

// Result holds the outcome of a finished external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external commands. args[0] is the program name; dir, when
// non-empty, overrides the working directory of the spawned process.
//
// Implementations must return an error when the process exits nonzero or
// cannot be started at all.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (*Result, error)
}

// CommandRunner is the production Runner. Failures are reported as
// *errors.CommandError carrying the argument vector and captured output.
//
// It applies no timeout of its own: the caller's context is the only
// cancellation mechanism.
type CommandRunner struct{}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// Run executes the given argument vector and waits for completion.
func (r *CommandRunner) Run(ctx context.Context, dir string, args ...string) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) == 0 {
		return nil, gverrors.NewCommandError(args, "", "", gverrors.ErrEmptyCommand)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, gverrors.NewCommandError(args, stdout.String(), stderr.String(), ctx.Err())
		}
		return nil, gverrors.NewCommandError(args, stdout.String(), stderr.String(), err)
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}
