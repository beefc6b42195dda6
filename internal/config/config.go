package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const rootDirName = "Developer"

type Config struct {
	Root          string `mapstructure:"root"`
	SessionPrefix string `mapstructure:"session_prefix"`
}

// Load resolves the settings from built-in defaults plus DEVMUX_* environment
// overrides. No config file is read; the tool has no persistent state.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DEVMUX")
	v.AutomaticEnv()
	v.SetDefault("root", filepath.Join(home, rootDirName))
	v.SetDefault("session_prefix", "")

	return &Config{
		Root:          v.GetString("root"),
		SessionPrefix: v.GetString("session_prefix"),
	}, nil
}
