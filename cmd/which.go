package cmd

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/minish/core/shell"
	"github.com/josephlewis42/minish/core/vos"
	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which NAME...",
	Short: "Show what the shell runs for each name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		hostOS := vos.NewHostOS(nil, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return which(shell.NewShell(hostOS, shell.Config{}), args)
	},
}

func which(sh *shell.Shell, names []string) error {
	out := sh.VirtualOS.Stdout()

	var missing bool
	for _, name := range names {
		command, err := sh.Resolve([]string{name})
		if err != nil {
			sh.Errorf("%s: not found", name)
			missing = true
			continue
		}

		switch command := command.(type) {
		case *shell.BuiltinCommand:
			fmt.Fprintf(out, "%s: shell builtin\n", name)
		case *shell.ExternalCommand:
			fmt.Fprintln(out, command.Path)
		}
	}

	if missing {
		return errors.New("some commands were not found")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
