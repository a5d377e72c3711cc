package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/favorites/internal/sqlite"
	"github.com/mesh-intelligence/favorites/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend string        `yaml:"backend"`
	DataDir string        `yaml:"data_dir,omitempty"`
	Log     configFileLog `yaml:"log"`
}

type configFileLog struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and the favorites database",
		Long:  "Create the configuration directory with a default config.yaml, then initialize the database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.ConfigDir, 0o755); err != nil {
		return systemError("create config directory", err)
	}

	configPath := filepath.Join(s.ConfigDir, configFileExt)
	if err := writeConfigIfMissing(configPath); err != nil {
		return systemError("write config", err)
	}

	store, err := sqlite.NewBackend(s.storeConfig())
	if err != nil {
		return fmt.Errorf("configure store: %w", err)
	}
	if err := store.Initialize(); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config: %s\n", configPath)
	fmt.Fprintf(out, "Database: %s\n", store.Path())
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend: types.BackendSQLite,
		Log:     configFileLog{Level: defaultLogLevel},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
