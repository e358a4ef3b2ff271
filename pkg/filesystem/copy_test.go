// Test Type: Unit Test
// Description: Tests for the all-or-nothing copy primitive

package filesystem_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/filesystem"
	"github.com/tracksort/tracksort/pkg/testutil"
)

func TestCopy_PreservesContentAndModTime(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, map[string]string{"/src/track.wav": "audio-bytes"})
	require.NoError(t, fsys.MkdirAll("/dst", 0755))

	mtime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, fsys.Chtimes("/src/track.wav", mtime, mtime))

	require.NoError(t, filesystem.Copy(fsys, "/src/track.wav", "/dst/track.wav"))

	data, err := fsys.ReadFile("/dst/track.wav")
	require.NoError(t, err)
	assert.Equal(t, "audio-bytes", string(data))

	info, err := fsys.Stat("/dst/track.wav")
	require.NoError(t, err)
	assert.Equal(t, mtime, info.ModTime())
}

func TestCopy_FailureLeavesNoPartialFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, map[string]string{"/src/track.wav": "x"})
	require.NoError(t, fsys.MkdirAll("/dst", 0755))
	fsys.InjectError("/dst/track.wav.tracksort-tmp", fs.ErrPermission)

	err := filesystem.Copy(fsys, "/src/track.wav", "/dst/track.wav")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCopy))

	testutil.AssertNotExists(t, fsys, "/dst/track.wav")
}

func TestCopy_MissingSource(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/dst", 0755))

	err := filesystem.Copy(fsys, "/src/nope.wav", "/dst/nope.wav")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestCopy_OSFastPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.wav")
	dst := filepath.Join(dir, "dst.wav")
	require.NoError(t, os.WriteFile(src, []byte("audio"), 0644))

	mtime := time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	fsys := filesystem.NewOS()
	require.NoError(t, filesystem.Copy(fsys, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "mtime should be preserved")

	// No stray temp file remains
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestExists(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteTree(t, fsys, map[string]string{"/a/file.wav": "x"})

	assert.True(t, filesystem.Exists(fsys, "/a/file.wav"))
	assert.True(t, filesystem.Exists(fsys, "/a"))
	assert.False(t, filesystem.Exists(fsys, "/a/other.wav"))
}
