// Test Type: Unit Test
// Description: Tests for the embedded help topic system

package topics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracksort/tracksort/pkg/topics"
)

func TestList(t *testing.T) {
	names := topics.List()
	assert.Contains(t, names, "rules")
	assert.Contains(t, names, "favorites")
	assert.Contains(t, names, "versioning")
}

func TestGet(t *testing.T) {
	topic, err := topics.Get("rules")
	require.NoError(t, err)
	assert.Equal(t, "rules", topic.Name)
	assert.Contains(t, topic.Content, "first rule")
}

func TestGet_Unknown(t *testing.T) {
	_, err := topics.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available:")
}
