package cli

import (
	"github.com/spf13/cobra"

	"gitvend.dev/gitvend/internal/output"
)

// newUpdateCmd creates the update command
func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Fetch from all remotes and fast-forward the current branch",
		Long: `Fetch from all remotes (pruning deleted branches, including tags) and
fast-forward the current branch. Fails if the local branch has diverged
from its upstream; no merge commit is ever created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := newRepository(repoDir)
			if err := repo.Update(cmd.Context()); err != nil {
				return err
			}

			output.Default().Info("Updated %s", repo.Dir())
			return nil
		},
	}
}
