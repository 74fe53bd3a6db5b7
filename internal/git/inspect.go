package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// Status describes the current state of a working copy.
type Status struct {
	Head     string
	Branch   string // empty when HEAD is detached
	Detached bool
	Dirty    bool
}

// Inspect reports the working copy state. It reads the repository directly
// via go-git, so no external process runs and no command output is parsed.
func (r *Repository) Inspect() (*Status, error) {
	repo, err := gogit.PlainOpenWithOptions(r.dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	status := &Status{Head: head.Hash().String()}
	if head.Name().IsBranch() {
		status.Branch = head.Name().Short()
	} else {
		status.Detached = true
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	wtStatus, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	status.Dirty = !wtStatus.IsClean()

	return status, nil
}
