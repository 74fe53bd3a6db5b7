package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitvend.dev/gitvend/internal/git"
	"gitvend.dev/gitvend/internal/output"
)

// newSwitchCmd creates the switch command
func newSwitchCmd() *cobra.Command {
	var (
		tag bool
		yes bool
	)

	cmd := &cobra.Command{
		Use:   "switch <name>",
		Short: "Switch the checkout to a branch or tag and update it",
		Long: `Switch the checkout to a branch or tag and bring it up to date with the
remote. A branch is fetched, switched to, and fast-forwarded. A tag is
checked out detached; the fetch is skipped when the tag already exists
locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			repo := newRepository(repoDir)

			// Branch switches move the worktree; warn before clobbering
			// uncommitted work.
			if !tag && !yes {
				ok, err := confirmDirtySwitch(repo, name)
				if err != nil {
					return err
				}
				if !ok {
					output.Default().Info("Aborted")
					return nil
				}
			}

			if err := repo.SwitchAndUpdate(cmd.Context(), name, git.SwitchOptions{Tag: tag}); err != nil {
				return err
			}

			if tag {
				output.Default().Info("Detached %s at tag %s", repo.Dir(), name)
			} else {
				output.Default().Info("Switched %s to branch %s", repo.Dir(), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tag, "tag", "t", false, "Treat <name> as a tag and detach HEAD at it")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the dirty worktree confirmation")

	return cmd
}

// confirmDirtySwitch asks before switching a dirty worktree to another
// branch. Non-interactive sessions proceed without asking.
func confirmDirtySwitch(repo *git.Repository, name string) (bool, error) {
	status, err := repo.Inspect()
	if err != nil {
		return false, err
	}
	if !status.Dirty {
		return true, nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		output.Default().Warn("Working tree has uncommitted changes, switching to %s anyway", name)
		return true, nil
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Working tree has uncommitted changes. Switch to %s anyway?", name),
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}
