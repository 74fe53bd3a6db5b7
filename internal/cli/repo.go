package cli

import (
	"context"
	"strings"
	"time"

	"gitvend.dev/gitvend/internal/git"
	"gitvend.dev/gitvend/internal/output"
)

// loggingRunner wraps a Runner and traces every executed argument vector,
// with timing, in the debug log.
type loggingRunner struct {
	inner git.Runner
}

func (r *loggingRunner) Run(ctx context.Context, dir string, args ...string) (*git.Result, error) {
	splog := output.Default()
	splog.Debug("exec: %s", strings.Join(args, " "))
	start := time.Now()
	result, err := r.inner.Run(ctx, dir, args...)
	if err != nil {
		splog.Debug("exec failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return nil, err
	}
	splog.Debug("exec finished in %s", time.Since(start).Round(time.Millisecond))
	return result, nil
}

// newRepository creates a Repository whose external commands are traced in
// the debug log.
func newRepository(dir string) *git.Repository {
	return git.NewRepository(dir, git.WithRunner(&loggingRunner{inner: git.NewCommandRunner()}))
}
