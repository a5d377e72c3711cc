package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/favorites/pkg/favorites"
)

const modulePath = "github.com/mesh-intelligence/favorites"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the favorites version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "favorites v%s\nmodule: %s\n", favorites.Version, modulePath)
			return nil
		},
	}
}
