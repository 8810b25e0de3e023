package fs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic writes the output of write to path through a temp file in the
// same directory. On success the temp file is synced and renamed over path;
// on failure it is removed and path keeps its previous content.
//
// perm applies to new files; an existing path keeps its permission bits.
func WriteAtomic(fsys FileSystem, path string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	if fsys == nil {
		fsys = Default
	}
	if fi, statErr := fsys.Stat(path); statErr == nil {
		perm = fi.Mode().Perm()
	}

	f, err := fsys.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	closed := false
	defer func() {
		if err != nil {
			if !closed {
				_ = f.Close()
			}
			_ = fsys.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	closed = true
	if err = f.Close(); err != nil {
		return err
	}
	return fsys.Rename(tmp, path)
}
