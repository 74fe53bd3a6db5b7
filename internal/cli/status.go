package cli

import (
	"github.com/spf13/cobra"

	"gitvend.dev/gitvend/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current state of the checkout",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo := newRepository(repoDir)
			status, err := repo.Inspect()
			if err != nil {
				return err
			}

			splog := output.Default()
			if status.Detached {
				splog.Info("%s at %s", output.Yellow("HEAD detached"), output.Dim(status.Head[:12]))
			} else {
				splog.Info("On branch %s (%s)", status.Branch, output.Dim(status.Head[:12]))
			}
			if status.Dirty {
				splog.Info("Working tree: %s", output.Red("dirty"))
			} else {
				splog.Info("Working tree: %s", output.Green("clean"))
			}
			return nil
		},
	}
}
