// Test Type: Unit Test
// Description: Tests for rule table loading, validation, ordering and
// keyword matching semantics

package rules_test

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracksort/tracksort/pkg/config"
	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/rules"
)

func TestLoad_SortsByPriorityThenDeclaration(t *testing.T) {
	defs := []config.RuleDef{
		{Name: "late", Folder: "C", Keywords: []string{"c"}, Priority: 5},
		{Name: "first", Folder: "A", Keywords: []string{"a"}, Priority: 1},
		{Name: "second_a", Folder: "B1", Keywords: []string{"b"}, Priority: 2},
		{Name: "second_b", Folder: "B2", Keywords: []string{"b"}, Priority: 2},
	}

	table, err := rules.Load(defs)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	got := table.Rules()
	assert.Equal(t, "first", got[0].Name)
	// Equal priorities keep declaration order
	assert.Equal(t, "second_a", got[1].Name)
	assert.Equal(t, "second_b", got[2].Name)
	assert.Equal(t, "late", got[3].Name)
}

func TestLoad_RejectsInvalidRulesAtomically(t *testing.T) {
	tests := []struct {
		name string
		defs []config.RuleDef
	}{
		{
			name: "missing_name",
			defs: []config.RuleDef{{Folder: "A", Keywords: []string{"a"}}},
		},
		{
			name: "missing_folder",
			defs: []config.RuleDef{{Name: "r", Keywords: []string{"a"}}},
		},
		{
			name: "missing_keywords",
			defs: []config.RuleDef{{Name: "r", Folder: "A"}},
		},
		{
			name: "blank_keyword",
			defs: []config.RuleDef{
				{Name: "ok", Folder: "A", Keywords: []string{"a"}},
				{Name: "bad", Folder: "B", Keywords: []string{"  "}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := rules.Load(tt.defs)
			require.Error(t, err)
			assert.Nil(t, table, "a malformed rule must reject the whole table")
			assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
		})
	}
}

func TestRule_WordBoundaryMatching(t *testing.T) {
	table, err := rules.Load([]config.RuleDef{
		{Name: "techno", Folder: "T", Keywords: []string{"techno"}, Priority: 1},
	})
	require.NoError(t, err)
	rule := table.Rules()[0]

	tests := []struct {
		filename string
		want     bool
	}{
		{"my techno mix.wav", true},
		{"Techno Dreams.wav", true},          // case-insensitive
		{"deep-techno-set.wav", true},        // punctuation is a boundary
		{"techno.wav", true},                 // boundary at extension dot
		{"biotechno.wav", false},             // no match inside a word
		{"technological advance.wav", false}, // prefix of a longer word
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rule.Matches(tt.filename), "filename %q", tt.filename)
	}
}

func TestRule_MultiWordKeywordIsContiguous(t *testing.T) {
	table, err := rules.Load([]config.RuleDef{
		{Name: "artist", Folder: "A", Keywords: []string{"son of son"}, Priority: 1},
	})
	require.NoError(t, err)
	rule := table.Rules()[0]

	assert.True(t, rule.Matches("Track (Son Of Son Remix).wav"))
	assert.False(t, rule.Matches("son and another of third son.wav"),
		"words spread across the name must not match a multi-word keyword")
}

func TestRule_NonWordEdgeKeywords(t *testing.T) {
	table, err := rules.Load([]config.RuleDef{
		{Name: "vocals", Folder: "V", Keywords: []string{"(vocals)"}, Priority: 1},
	})
	require.NoError(t, err)
	rule := table.Rules()[0]

	assert.True(t, rule.Matches("Track (Vocals).wav"))
	assert.True(t, rule.Matches("Track(vocals).wav"))
	assert.False(t, rule.Matches("Track vocals.wav"), "parens are part of the keyword")
}

func TestLoad_EmbeddedDefaultTable(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cfg, err := config.Load("")
	require.NoError(t, err)

	table, err := rules.Load(cfg.Rules)
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 10)

	// Stems come before genres in evaluation order
	first := table.Rules()[0]
	assert.Equal(t, 1, first.Priority)
}
