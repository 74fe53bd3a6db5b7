package git

import (
	"context"
	"fmt"
	"os"
	"strings"

	gverrors "gitvend.dev/gitvend/internal/errors"
)

// Repository is a handle over a local git working copy. Every git command it
// issues is scoped to the repository directory, so handles over different
// directories never interfere. The directory is fixed at construction.
type Repository struct {
	dir    string
	runner Runner
}

// Option configures a Repository.
type Option func(*Repository)

// WithRunner replaces the command runner. Each handle keeps its own runner,
// so substituting one never affects other handles in the same process.
func WithRunner(r Runner) Option {
	return func(repo *Repository) {
		repo.runner = r
	}
}

// NewRepository creates a handle for the working copy at dir. No I/O happens
// until an operation is invoked.
func NewRepository(dir string, opts ...Option) *Repository {
	repo := &Repository{
		dir:    dir,
		runner: NewCommandRunner(),
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// Dir returns the working copy directory.
func (r *Repository) Dir() string {
	return r.dir
}

// git runs a git subcommand scoped to the repository directory.
func (r *Repository) git(ctx context.Context, args ...string) (*Result, error) {
	argv := append([]string{"git", "-C", r.dir}, args...)
	return r.runner.Run(ctx, "", argv...)
}

// CloneOptions configures a clone operation.
type CloneOptions struct {
	// Submodules checks out submodules recursively, tracking their remote branches.
	Submodules bool
}

// Clone clones url into the repository directory. The directory must not
// exist yet; Clone creates it (including missing parents) before running git.
func (r *Repository) Clone(ctx context.Context, url string, opts CloneOptions) error {
	if _, err := os.Stat(r.dir); err == nil {
		return gverrors.NewRepoExistsError(url, r.dir)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", r.dir, err)
	}

	args := []string{"git", "clone"}
	if opts.Submodules {
		args = append(args, "--recurse-submodules", "--remote-submodules")
	}
	args = append(args, url, r.dir)

	_, err := r.runner.Run(ctx, "", args...)
	return err
}

// fetch updates all remote-tracking branches and tags, pruning refs deleted
// on the remote.
func (r *Repository) fetch(ctx context.Context) error {
	_, err := r.git(ctx, "fetch", "--all", "--prune", "--tags")
	return err
}

// fastForward merges the current branch with its upstream, fast-forward only.
// A diverged branch fails rather than producing a merge commit.
func (r *Repository) fastForward(ctx context.Context) error {
	_, err := r.git(ctx, "merge", "--ff-only")
	return err
}

// Update fetches from all remotes and fast-forwards the current branch.
func (r *Repository) Update(ctx context.Context) error {
	if err := r.fetch(ctx); err != nil {
		return err
	}
	return r.fastForward(ctx)
}

// SwitchOptions configures SwitchAndUpdate.
type SwitchOptions struct {
	// Tag detaches HEAD at a tag instead of switching to a branch.
	Tag bool
}

// SwitchAndUpdate moves the working copy to the named branch or tag and
// brings it up to date with the remote.
//
// A branch always fetches first (branches move), switches, then
// fast-forwards. A tag detaches HEAD without a merge; the fetch is skipped
// when the tag already exists locally, since tags don't change once created.
func (r *Repository) SwitchAndUpdate(ctx context.Context, name string, opts SwitchOptions) error {
	if opts.Tag {
		// A failed or empty tag lookup means the tag may only exist on the
		// remote, created after the last fetch.
		res, err := r.git(ctx, "tag", "--list", name)
		if err != nil || strings.TrimSpace(res.Stdout) == "" {
			if err := r.fetch(ctx); err != nil {
				return err
			}
		}
		_, err = r.git(ctx, "switch", "--detach", name)
		return err
	}

	if err := r.fetch(ctx); err != nil {
		return err
	}
	if _, err := r.git(ctx, "switch", name); err != nil {
		return err
	}
	return r.fastForward(ctx)
}

// Run executes an arbitrary command inside the repository directory. The
// argument vector is passed through to the runner untouched.
func (r *Repository) Run(ctx context.Context, args ...string) (*Result, error) {
	return r.runner.Run(ctx, r.dir, args...)
}
