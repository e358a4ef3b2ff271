// Package scanner enumerates the audio files to be sorted.
//
// The walk is recursive, filters on the configured extensions, and
// skips the output root so files placed by a previous run are never
// classified again.
package scanner

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/filesystem"
	"github.com/tracksort/tracksort/pkg/logging"
)

// File is one discovered source file
type File struct {
	// Path is the absolute path to the file
	Path string

	// Name is the base filename
	Name string
}

// Scanner walks a source tree for matching audio files
type Scanner struct {
	fs         filesystem.FS
	extensions map[string]struct{}
	excluded   map[string]struct{}
	logger     zerolog.Logger
}

// New creates a Scanner. extensions are matched case-insensitively;
// excluded paths (and everything under them) are skipped.
func New(fsys filesystem.FS, extensions []string, excluded ...string) *Scanner {
	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}
	exclSet := make(map[string]struct{}, len(excluded))
	for _, p := range excluded {
		exclSet[filepath.Clean(p)] = struct{}{}
	}
	return &Scanner{
		fs:         fsys,
		extensions: extSet,
		excluded:   exclSet,
		logger:     logging.GetLogger("scanner"),
	}
}

// Scan walks root and returns all matching files. ReadDir returns
// entries sorted by name, so the result order is deterministic.
func (s *Scanner) Scan(root string) ([]File, error) {
	defer logging.LogDuration(time.Now(), "source scan")

	root = filepath.Clean(root)
	if !filesystem.Exists(s.fs, root) {
		return nil, errors.Newf(errors.ErrSourceNotFound, "source directory %s does not exist", root)
	}

	var files []File
	if err := s.walk(root, &files); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("root", root).
		Int("fileCount", len(files)).
		Msg("Source scan complete")

	return files, nil
}

func (s *Scanner) walk(dir string, files *[]File) error {
	if _, skip := s.excluded[dir]; skip {
		s.logger.Debug().Str("dir", dir).Msg("Skipping excluded directory")
		return nil
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceScan, "reading %s", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := s.walk(path, files); err != nil {
				return err
			}
			continue
		}
		if s.matchesExtension(entry.Name()) {
			*files = append(*files, File{Path: path, Name: entry.Name()})
		}
	}
	return nil
}

func (s *Scanner) matchesExtension(name string) bool {
	_, ok := s.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
