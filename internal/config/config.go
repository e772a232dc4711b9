// Package config loads agent configuration from defaults, an optional YAML
// file and ENTAGENT_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/melisa48/entertainment-agent/internal/logging"
	"github.com/melisa48/entertainment-agent/internal/scoring"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ENTAGENT_"

	// PathEnvVar names a config file to load.
	PathEnvVar = EnvPrefix + "CONFIG"
)

// Config is the full agent configuration.
type Config struct {
	// Backend selects the store: json (two files) or sqlite.
	Backend     string `koanf:"backend" validate:"oneof=json sqlite"`
	CatalogPath string `koanf:"catalog_path" validate:"required_if=Backend json"`
	UsersPath   string `koanf:"users_path" validate:"required_if=Backend json"`
	DBPath      string `koanf:"db_path" validate:"required_if=Backend sqlite"`

	// User is the default user id for commands that need one.
	User string `koanf:"user"`

	DefaultCount int `koanf:"default_count" validate:"gte=0"`

	Log     logging.Config  `koanf:"log"`
	Weights scoring.Weights `koanf:"weights"`
}

// DataDir is where state lives unless configured otherwise.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".entertainment-agent")
}

// Default returns the built-in configuration.
func Default() *Config {
	dir := DataDir()
	return &Config{
		Backend:      "json",
		CatalogPath:  filepath.Join(dir, "entertainment_db.json"),
		UsersPath:    filepath.Join(dir, "users.json"),
		DBPath:       filepath.Join(dir, "agent.db"),
		DefaultCount: 3,
		Log:          logging.DefaultConfig(),
		Weights:      scoring.DefaultWeights(),
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Load builds the configuration. path names a YAML file and must exist when
// set; otherwise PathEnvVar and the default locations are tried.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	} else {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Log.Output = defaults.Log.Output

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	candidates := []string{
		os.Getenv(PathEnvVar),
		"entertainment-agent.yaml",
		filepath.Join(DataDir(), "config.yaml"),
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envKey maps ENTAGENT_LOG_LEVEL to log.level and ENTAGENT_DB_PATH to db_path.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"log", "weights"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}
