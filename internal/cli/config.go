package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/favorites/internal/logging"
	"github.com/mesh-intelligence/favorites/internal/paths"
	"github.com/mesh-intelligence/favorites/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix namespaces environment overrides, e.g. FAVORITES_DATA_DIR.
	envPrefix = "FAVORITES"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyLogLevel   = "log.level"
	cfgKeyLogConsole = "log.console"

	defaultBackend  = types.BackendSQLite
	defaultLogLevel = "info"
)

// settings is the resolved configuration for one run.
type settings struct {
	ConfigDir  string
	DataDir    string
	Backend    string
	LogLevel   string
	LogConsole bool
}

// storeConfig returns the backend configuration.
func (s settings) storeConfig() types.Config {
	return types.Config{Backend: s.Backend, DataDir: s.DataDir}
}

// logConfig returns the logger configuration with the log file in DataDir.
func (s settings) logConfig() logging.Config {
	return logging.Config{
		Level:   s.LogLevel,
		File:    filepath.Join(s.DataDir, logging.DefaultFileName),
		Console: s.LogConsole,
	}
}

// loadSettings reads .env, config.yaml, and FAVORITES_* variables, in
// increasing precedence. A missing config.yaml is not an error.
func loadSettings() (settings, error) {
	// A missing .env is normal; variables then come from the environment.
	_ = godotenv.Load()

	configDir, err := paths.ResolveConfigDir()
	if err != nil {
		return settings{}, systemError("resolve config dir", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}

	dataDir, err := paths.ResolveDataDir(v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, systemError("resolve data dir", err)
	}

	return settings{
		ConfigDir:  configDir,
		DataDir:    dataDir,
		Backend:    v.GetString(cfgKeyBackend),
		LogLevel:   v.GetString(cfgKeyLogLevel),
		LogConsole: v.GetBool(cfgKeyLogConsole),
	}, nil
}

// loadConfig reads config.yaml from configDir using Viper, with defaults and
// environment overrides applied.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogConsole, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
