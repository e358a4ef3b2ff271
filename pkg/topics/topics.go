// Package topics provides the embedded help topics for the CLI.
// Topics are markdown files compiled into the binary and rendered
// with glamour for rich terminal output.
package topics

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed docs/*.md
var docs embed.FS

// Topic is one help topic
type Topic struct {
	Name    string
	Content string
}

// List returns all topic names, sorted
func List() []string {
	entries, err := docs.ReadDir("docs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Get returns the topic with the given name
func Get(name string) (*Topic, error) {
	content, err := docs.ReadFile(filepath.Join("docs", name+".md"))
	if err != nil {
		return nil, fmt.Errorf("unknown topic %q (available: %s)",
			name, strings.Join(List(), ", "))
	}
	return &Topic{Name: name, Content: string(content)}, nil
}
