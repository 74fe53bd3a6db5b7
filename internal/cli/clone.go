package cli

import (
	"github.com/spf13/cobra"

	"gitvend.dev/gitvend/internal/git"
	"gitvend.dev/gitvend/internal/output"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var submodules bool

	cmd := &cobra.Command{
		Use:   "clone <url> <dir>",
		Short: "Clone a repository into a new directory",
		Long: `Clone a repository into a new directory. The directory must not exist yet;
missing parent directories are created.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, dir := args[0], args[1]

			repo := newRepository(dir)
			if err := repo.Clone(cmd.Context(), url, git.CloneOptions{Submodules: submodules}); err != nil {
				return err
			}

			output.Default().Info("Cloned %s into %s", url, repo.Dir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&submodules, "submodules", false, "Recursively check out submodules, tracking their remote branches")

	return cmd
}
