// Package style defines the visual styling for tracksort's terminal
// output.
//
// Styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. The definitions live in an embedded YAML
// sheet so visual tweaks never touch Go code.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// sheet represents the complete styles configuration
type sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := loadStyles(embeddedStyles); err != nil {
		// The embedded sheet is part of the binary; a parse failure is
		// a programming error, but plain output beats a panic
		registry = make(map[string]lipgloss.Style)
	}
}

func loadStyles(data []byte) error {
	var s sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parsing style sheet: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(s.Colors))
	for name, def := range s.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(s.Styles))
	for name, def := range s.Styles {
		st := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if c, ok := colors[def.Foreground]; ok {
			st = st.Foreground(c)
		}
		if c, ok := colors[def.Background]; ok {
			st = st.Background(c)
		}
		if def.MarginBottom > 0 {
			st = st.MarginBottom(def.MarginBottom)
		}
		if def.MarginTop > 0 {
			st = st.MarginTop(def.MarginTop)
		}
		if def.PaddingLeft > 0 {
			st = st.PaddingLeft(def.PaddingLeft)
		}
		registry[name] = st
	}
	return nil
}

// Get returns the style registered under the given semantic name, or a
// zero style when the name is unknown
func Get(name string) lipgloss.Style {
	if st, ok := registry[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}
