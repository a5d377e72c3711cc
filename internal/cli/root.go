// Package cli implements the favorites command line. With no arguments it
// opens the desktop window; subcommands work on the store without a GUI.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/favorites/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// NewRootCmd creates the top-level "favorites" command with all subcommands
// registered. The root command itself takes no arguments and no flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "favorites",
		Short: "T-pop favorites record system",
		Long: "Records and browses a personal list of favorite artists, biases, songs, and albums.\n" +
			"Run without arguments to open the desktop window.",
		Args: cobra.NoArgs,
		RunE: runGUI,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "favorites:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode classifies err: storage and filesystem failures are system
// errors, everything else is the user's to fix.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrStorage), errors.Is(err, errSystem):
		return exitSysError
	default:
		return exitUserError
	}
}

// errSystem marks failures outside the store, such as an unwritable config
// directory.
var errSystem = errors.New("system error")

func systemError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, errSystem, err)
}
