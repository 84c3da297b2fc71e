// Package config loads daybook settings from ~/.daybook/config.yaml
// and DAYBOOK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/csandor/daybook/internal/domain"
	"github.com/spf13/viper"
)

type Config struct {
	// DBPath is the sqlite file location.
	DBPath string
	// DefaultKind is applied to quick-add lines without a kind tag.
	DefaultKind domain.ItemKind
	// Plain disables color and interactive prompts.
	Plain bool
}

// Load reads the config file if one exists and applies environment
// overrides (DAYBOOK_DB, DAYBOOK_DEFAULT_KIND, DAYBOOK_PLAIN). A
// missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}

	v.SetDefault("db", filepath.Join(home, ".daybook", "daybook.db"))
	v.SetDefault("default_kind", string(domain.KindTask))
	v.SetDefault("plain", false)

	v.SetConfigName("config") // .yaml is implicit
	v.SetEnvPrefix("DAYBOOK")
	v.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(filepath.Join(home, ".daybook"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	kind := v.GetString("default_kind")
	if !domain.ValidItemKinds[kind] {
		return nil, fmt.Errorf("invalid default_kind %q (task, plan, or focus)", kind)
	}

	return &Config{
		DBPath:      v.GetString("db"),
		DefaultKind: domain.ItemKind(kind),
		Plain:       v.GetBool("plain"),
	}, nil
}
