package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagHome            = "home"
	flagLogLevel        = "log_level"
	flagLogFormat       = "log_format"
	flagDBBackend       = "db_backend"
	flagContractVersion = "contract_version"

	envPrefix = "BRIDGED"

	logFormatPlain = "plain"
	logFormatJSON  = "json"

	defaultLogLevel  = "info"
	defaultDBBackend = "goleveldb"
)

// Config holds the settings shared by every bridged command
type Config struct {
	Home            string
	LogLevel        string
	LogFormat       string
	DBBackend       string
	ContractVersion string
}

// ConfigPath is the optional TOML file read from the home directory
func (c Config) ConfigPath() string {
	return filepath.Join(c.Home, "config", "config.toml")
}

// DataDir is where the state database lives
func (c Config) DataDir() string {
	return filepath.Join(c.Home, "data")
}

// Validate checks the loaded settings
func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("%s cannot be empty", flagHome)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s %q: %w", flagLogLevel, c.LogLevel, err)
	}
	switch c.LogFormat {
	case logFormatPlain, logFormatJSON:
	default:
		return fmt.Errorf("invalid %s %q: expected %s or %s", flagLogFormat, c.LogFormat, logFormatPlain, logFormatJSON)
	}
	if c.DBBackend == "" {
		return fmt.Errorf("%s cannot be empty", flagDBBackend)
	}
	if _, err := semver.StrictNewVersion(c.ContractVersion); err != nil {
		return fmt.Errorf("invalid %s %q: %w", flagContractVersion, c.ContractVersion, err)
	}
	return nil
}

// Logger builds the host logger writing to w
func (c Config) Logger(w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []log.Option{log.LevelOption(level)}
	if c.LogFormat == logFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}

// loadConfig resolves settings from, in order of precedence, explicitly set
// flags, BRIDGED_* environment variables, <home>/config/config.toml and the
// flag defaults.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	home := cast.ToString(v.Get(flagHome))
	configPath := Config{Home: home}.ConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigType("toml")
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	}

	cfg := Config{
		Home:            home,
		LogLevel:        cast.ToString(v.Get(flagLogLevel)),
		LogFormat:       strings.ToLower(cast.ToString(v.Get(flagLogFormat))),
		DBBackend:       cast.ToString(v.Get(flagDBBackend)),
		ContractVersion: cast.ToString(v.Get(flagContractVersion)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
