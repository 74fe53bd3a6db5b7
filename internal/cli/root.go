// Package cli implements the gitvend command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"gitvend.dev/gitvend/internal/output"
)

// Persistent flags shared by all subcommands.
var (
	repoDir   string
	debugMode bool
	quietMode bool
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitvend",
		Short: "Gitvend manages git-backed source checkouts",
		Long: `Gitvend manages git-backed source checkouts: clone a repository,
keep it fast-forwarded against its remote, pin it to a branch or tag,
and run build commands inside it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			output.Init(debugMode, quietMode)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&repoDir, "repo", "R", ".", "Path to the managed checkout")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress console output")

	// Add subcommands
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
