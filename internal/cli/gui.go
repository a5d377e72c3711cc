package cli

import (
	"path/filepath"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/favorites/internal/ui"
	"github.com/mesh-intelligence/favorites/pkg/favorites"
)

// runGUI opens the desktop window and blocks until it is closed.
func runGUI(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	log := s.logger.Component("ui")
	log.Info().Str("version", favorites.Version).Str("database", s.store.Path()).Msg("starting")

	a := app.NewWithID(favorites.AppID)
	w := ui.New(a, s.store, filepath.Base(s.store.Path()), log)
	w.ShowAndRun()

	log.Info().Msg("window closed")
	return nil
}
