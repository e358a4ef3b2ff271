// Test Type: Unit Test
// Description: Tests for source scanning - extension filtering, recursion
// and output-root self-exclusion

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/scanner"
	"github.com/tracksort/tracksort/pkg/testutil"
)

func TestScan_FiltersExtensions(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, map[string]string{
		"/music/track.wav":    "a",
		"/music/track.WAV":    "a",
		"/music/cover.jpg":    "b",
		"/music/notes.txt":    "c",
		"/music/playlist.m3u": "d",
	})

	s := scanner.New(fsys, []string{".wav"})
	files, err := s.Scan("/music")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "track.WAV", files[0].Name)
	assert.Equal(t, "track.wav", files[1].Name)
}

func TestScan_Recurses(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, map[string]string{
		"/music/a.wav":             "x",
		"/music/sub/b.wav":         "x",
		"/music/sub/deeper/c.wav":  "x",
		"/music/sub/deeper/d.flac": "x",
	})

	s := scanner.New(fsys, []string{".wav", ".flac"})
	files, err := s.Scan("/music")
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestScan_ExcludesOutputRoot(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, map[string]string{
		"/music/fresh.wav":                         "x",
		"/music/SORTED_MUSIC/House/placed.wav":     "x",
		"/music/SORTED_MUSIC/Other/old track.wav":  "x",
		"/music/SORTED_MUSIC/Other/old track2.wav": "x",
	})

	s := scanner.New(fsys, []string{".wav"}, "/music/SORTED_MUSIC")
	files, err := s.Scan("/music")
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "/music/fresh.wav", files[0].Path)
}

func TestScan_MissingRoot(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	s := scanner.New(fsys, []string{".wav"})
	_, err := s.Scan("/nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
}

func TestScan_DeterministicOrder(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, map[string]string{
		"/music/c.wav": "x",
		"/music/a.wav": "x",
		"/music/b.wav": "x",
	})

	s := scanner.New(fsys, []string{".wav"})
	first, err := s.Scan("/music")
	require.NoError(t, err)
	second, err := s.Scan("/music")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "a.wav", first[0].Name)
	assert.Equal(t, "b.wav", first[1].Name)
	assert.Equal(t, "c.wav", first[2].Name)
}
