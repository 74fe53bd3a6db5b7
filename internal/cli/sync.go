package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gitvend.dev/gitvend/internal/config"
	"gitvend.dev/gitvend/internal/git"
	"gitvend.dev/gitvend/internal/output"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Clone, pin and build every checkout in the manifest",
		Long: `Bring every checkout listed in the manifest to its declared state:
clone it if missing, switch to the pinned branch or tag (or fast-forward
the current branch when nothing is pinned), then run the checkout's
build commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, err := config.Load(manifestPath)
			if err != nil {
				return err
			}

			for _, checkout := range manifest.Checkouts {
				if err := syncCheckout(cmd.Context(), checkout); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", config.DefaultManifestName, "Path to the manifest file")

	return cmd
}

// syncCheckout brings a single checkout to its declared state.
func syncCheckout(ctx context.Context, checkout config.Checkout) error {
	splog := output.Default()
	repo := newRepository(checkout.Dir)

	if _, err := os.Stat(checkout.Dir); os.IsNotExist(err) {
		splog.Info("Cloning %s into %s", checkout.URL, checkout.Dir)
		opts := git.CloneOptions{Submodules: checkout.Submodules}
		if err := repo.Clone(ctx, checkout.URL, opts); err != nil {
			return err
		}
	}

	if checkout.Ref != "" {
		splog.Info("Pinning %s to %s", checkout.Dir, checkout.Ref)
		if err := repo.SwitchAndUpdate(ctx, checkout.Ref, git.SwitchOptions{Tag: checkout.Tag}); err != nil {
			return err
		}
	} else {
		splog.Info("Updating %s", checkout.Dir)
		if err := repo.Update(ctx); err != nil {
			return err
		}
	}

	for _, argv := range checkout.Run {
		splog.Info("Running %s", strings.Join(argv, " "))
		if _, err := repo.Run(ctx, argv...); err != nil {
			return err
		}
	}

	return nil
}
