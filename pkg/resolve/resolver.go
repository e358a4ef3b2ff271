// Package resolve turns desired destination paths into collision-free
// actual paths.
//
// A destination that does not exist is used as-is. On collision the
// filename gets a " v2", " v3", ... suffix before the extension; the
// unsuffixed name counts as v1. Resolved paths stay reserved until the
// caller releases them, so concurrent workers never settle on the same
// name.
package resolve

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/filesystem"
	"github.com/tracksort/tracksort/pkg/logging"
)

// Resolver probes destination paths for a free name
type Resolver struct {
	fs        filesystem.FS
	maxProbes int

	mu       sync.Mutex
	reserved map[string]struct{}
}

// New creates a Resolver over the given filesystem. maxProbes bounds
// version probing so a pathological destination cannot hang the run.
func New(fsys filesystem.FS, maxProbes int) *Resolver {
	return &Resolver{
		fs:        fsys,
		maxProbes: maxProbes,
		reserved:  make(map[string]struct{}),
	}
}

// Resolve returns a path at which nothing exists and no other in-flight
// copy is targeted. The returned path stays reserved until Release is
// called; callers hold the reservation across their copy.
func (r *Resolver) Resolve(desired string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.free(desired) {
		r.reserved[desired] = struct{}{}
		return desired, nil
	}

	dir := filepath.Dir(desired)
	name := filepath.Base(desired)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 2; n <= r.maxProbes; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s v%d%s", stem, n, ext))
		if r.free(candidate) {
			r.reserved[candidate] = struct{}{}
			if n > 100 {
				logger := logging.GetLogger("resolve")
				logger.Warn().
					Str("path", candidate).
					Int("version", n).
					Msg("Unusually deep version probing")
			}
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrVersionExhausted,
		"no free version for %s after %d probes", desired, r.maxProbes).
		WithDetail("desired", desired)
}

// Release drops the reservation for a resolved path. Call it once the
// copy to that path has finished, successfully or not.
func (r *Resolver) Release(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reserved, path)
}

// free reports whether path is neither on disk nor reserved.
// Callers must hold r.mu.
func (r *Resolver) free(path string) bool {
	if _, ok := r.reserved[path]; ok {
		return false
	}
	return !filesystem.Exists(r.fs, path)
}
