package classify

import (
	"path/filepath"
	"strings"
)

// Favorites detects favorite-marked files and computes their extra
// destination inside a category folder.
type Favorites struct {
	marker string
	folder string
}

// NewFavorites creates a Favorites handler. marker is the filename
// prefix (case-exact), folder the subfolder name inside a category.
func NewFavorites(marker, folder string) *Favorites {
	return &Favorites{marker: marker, folder: folder}
}

// IsFavorite reports whether the filename carries the favorite marker
func (f *Favorites) IsFavorite(filename string) bool {
	return strings.HasPrefix(filename, f.marker)
}

// Dir returns the favorites directory for a category directory. The
// favorites copy lands next to the primary copy, one level down.
func (f *Favorites) Dir(categoryDir string) string {
	return filepath.Join(categoryDir, f.folder)
}
