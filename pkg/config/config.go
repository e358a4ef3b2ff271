// Package config loads the tracksort configuration with koanf.
//
// Configuration is layered, later layers override earlier ones:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. User config file: explicit path, $TRACKSORT_CONFIG, or
//     $XDG_CONFIG_HOME/tracksort/tracksort.toml (TOML or YAML by extension)
//  3. TRACKSORT_* environment variables
//     (TRACKSORT_SETTINGS_BATCH_SIZE=100 -> settings.batch_size)
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/logging"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "TRACKSORT_CONFIG"

// configFileName is the user config filename searched under the XDG config dir
const configFileName = "tracksort/tracksort.toml"

// Settings holds the behavior knobs of the sorting engine
type Settings struct {
	Extensions       []string `koanf:"extensions" toml:"extensions"`
	OutputDir        string   `koanf:"output_dir" toml:"output_dir"`
	FallbackFolder   string   `koanf:"fallback_folder" toml:"fallback_folder"`
	FavoritesFolder  string   `koanf:"favorites_folder" toml:"favorites_folder"`
	FavoritesMarker  string   `koanf:"favorites_marker" toml:"favorites_marker"`
	BatchSize        int      `koanf:"batch_size" toml:"batch_size"`
	MaxVersionProbes int      `koanf:"max_version_probes" toml:"max_version_probes"`
	Workers          int      `koanf:"workers" toml:"workers"`
}

// RuleDef is a single classification rule as written in configuration.
// Compilation and ordering live in pkg/rules.
type RuleDef struct {
	Name     string   `koanf:"name" toml:"name"`
	Folder   string   `koanf:"folder" toml:"folder"`
	Keywords []string `koanf:"keywords" toml:"keywords"`
	Priority int      `koanf:"priority" toml:"priority"`
}

// Config is the full tracksort configuration
type Config struct {
	Settings Settings  `koanf:"settings" toml:"settings"`
	Rules    []RuleDef `koanf:"rules" toml:"rules"`
}

// Load builds the layered configuration. An empty path means "discover":
// $TRACKSORT_CONFIG first, then the XDG config directory.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading embedded defaults")
	}

	// 2. User config file
	userPath := path
	if userPath == "" {
		userPath = discoverConfigFile()
	}
	if userPath != "" {
		if _, err := os.Stat(userPath); err != nil {
			if path != "" {
				// An explicitly requested file must exist
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path)
			}
		} else {
			if err := k.Load(file.Provider(userPath), parserFor(userPath)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", userPath)
			}
			logger.Debug().Str("path", userPath).Msg("Loaded user config")
		}
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider("TRACKSORT_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "TRACKSORT_"))
		// TRACKSORT_SETTINGS_BATCH_SIZE -> settings.batch_size
		if rest, ok := strings.CutPrefix(key, "settings_"); ok {
			return "settings." + rest
		}
		return key
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling configuration")
	}

	if err := validateSettings(&cfg.Settings); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("ruleCount", len(cfg.Rules)).
		Int("batchSize", cfg.Settings.BatchSize).
		Msg("Configuration loaded")

	return &cfg, nil
}

// discoverConfigFile returns the user config path, or "" when none exists
func discoverConfigFile() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if p, err := xdg.SearchConfigFile(configFileName); err == nil {
		return p
	}
	// Accept a YAML variant as well
	yamlName := strings.TrimSuffix(configFileName, ".toml") + ".yaml"
	if p, err := xdg.SearchConfigFile(yamlName); err == nil {
		return p
	}
	return ""
}

// parserFor picks the koanf parser by file extension, defaulting to TOML
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return koanfyaml.Parser()
	default:
		return koanftoml.Parser()
	}
}

func validateSettings(s *Settings) error {
	if s.BatchSize <= 0 {
		return errors.Newf(errors.ErrConfigValid, "batch_size must be positive, got %d", s.BatchSize)
	}
	if s.MaxVersionProbes <= 0 {
		return errors.Newf(errors.ErrConfigValid, "max_version_probes must be positive, got %d", s.MaxVersionProbes)
	}
	if s.Workers <= 0 {
		return errors.Newf(errors.ErrConfigValid, "workers must be positive, got %d", s.Workers)
	}
	if s.FavoritesMarker == "" {
		return errors.New(errors.ErrConfigValid, "favorites_marker must not be empty")
	}
	if s.FavoritesFolder == "" {
		return errors.New(errors.ErrConfigValid, "favorites_folder must not be empty")
	}
	if s.FallbackFolder == "" {
		return errors.New(errors.ErrConfigValid, "fallback_folder must not be empty")
	}
	if len(s.Extensions) == 0 {
		return errors.New(errors.ErrConfigValid, "extensions must list at least one extension")
	}
	for i, ext := range s.Extensions {
		if !strings.HasPrefix(ext, ".") {
			s.Extensions[i] = "." + ext
		}
	}
	return nil
}
