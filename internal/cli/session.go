package cli

import (
	"fmt"

	"github.com/mesh-intelligence/favorites/internal/logging"
	"github.com/mesh-intelligence/favorites/internal/sqlite"
)

// session bundles what every store-backed command needs.
type session struct {
	settings settings
	store    *sqlite.Backend
	logger   *logging.Logger
}

// openSession loads settings, starts logging, and prepares an initialized
// store. The caller must Close the session.
func openSession() (*session, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewBackend(s.storeConfig())
	if err != nil {
		return nil, fmt.Errorf("configure store: %w", err)
	}
	if err := store.Initialize(); err != nil {
		return nil, err
	}

	logger, err := logging.New(s.logConfig())
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	logger.Component("cli").Debug().
		Str("config_dir", s.ConfigDir).
		Str("database", store.Path()).
		Msg("session opened")

	return &session{settings: s, store: store, logger: logger}, nil
}

// Close releases the log file.
func (s *session) Close() error {
	if err := s.logger.Close(); err != nil {
		return systemError("close log", err)
	}
	return nil
}
