package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/tracksort/tracksort/pkg/errors"
)

// ExportTOML renders the effective configuration back to TOML, used by
// "tracksort config" to show what the layered load actually produced
func ExportTOML(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "marshaling configuration")
	}
	return string(out), nil
}
