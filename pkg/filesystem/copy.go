package filesystem

import (
	"os"

	"github.com/tracksort/tracksort/pkg/errors"
)

// tmpSuffix marks in-flight copies so a crashed run never leaves a file
// that looks like finished output
const tmpSuffix = ".tracksort-tmp"

// Copy copies src to dst through the given FS, all-or-nothing: the data is
// written to a temp name next to dst and renamed into place, so a failed
// copy never leaves a partial destination file.
func Copy(fsys FS, src, dst string) error {
	if c, ok := fsys.(Copier); ok {
		if err := c.CopyFile(src, dst); err != nil {
			return errors.Wrapf(err, errors.ErrFileCopy, "copying %s", src).
				WithDetail("dest", dst)
		}
		return nil
	}

	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "reading %s", src)
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "reading %s", src)
	}

	tmp := dst + tmpSuffix
	if err := fsys.WriteFile(tmp, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "writing %s", dst)
	}

	if err := fsys.Chtimes(tmp, info.ModTime(), info.ModTime()); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileCopy, "preserving timestamps for %s", dst)
	}

	if err := fsys.Rename(tmp, dst); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileCopy, "finalizing %s", dst)
	}
	return nil
}

// Exists reports whether a path exists on the filesystem
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
