package cli

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"gitvend.dev/gitvend/internal/output"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var command string

	cmd := &cobra.Command{
		Use:   "run -- <argv...>",
		Short: "Run an arbitrary command inside the checkout",
		Long: `Run an arbitrary command with the checkout directory as its working
directory. The command is given either as positional arguments after --
or as a single shell-quoted string with -c.

Examples:
  gitvend run -- make -j8 all
  gitvend run -c "make PERFORMANCE=1 -C utils/libdislocator"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			argv, err := resolveArgv(command, args)
			if err != nil {
				return err
			}

			repo := newRepository(repoDir)
			result, err := repo.Run(cmd.Context(), argv...)
			if err != nil {
				return err
			}

			output.Default().Page(result.Stdout)
			return nil
		},
	}

	cmd.Flags().StringVarP(&command, "command", "c", "", "Command to run, as a single shell-quoted string")

	return cmd
}

// resolveArgv turns the -c string or the positional arguments into the
// argument vector to execute.
func resolveArgv(command string, args []string) ([]string, error) {
	if command != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("use either -c or positional arguments, not both")
		}
		argv, err := shellquote.Split(command)
		if err != nil {
			return nil, fmt.Errorf("parsing command string: %w", err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("no command given")
		}
		return argv, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no command given")
	}
	return args, nil
}
