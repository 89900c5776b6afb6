package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
)

// Filesystem represents a source filesystem.
type Filesystem struct {
	files        []*File
	filesInit    sync.Once
	filesInitErr error

	// Base is the walk root on SourceFs, usually empty.
	Base string

	*SourceSpec
}

// NewFilesystem creates a Filesystem walking from base.
func (sp *SourceSpec) NewFilesystem(base string) *Filesystem {
	return &Filesystem{SourceSpec: sp, Base: base}
}

// Files returns the content files in walk order, which is lexical within
// each directory.
func (f *Filesystem) Files() ([]*File, error) {
	f.filesInit.Do(func() {
		err := f.captureFiles()
		if err != nil {
			f.filesInitErr = fmt.Errorf("capture files: %w", err)
		}
	})
	return f.files, f.filesInitErr
}

func (f *Filesystem) captureFiles() error {
	walker := func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			if path == f.Base {
				if os.IsNotExist(err) {
					return herrors.NewFileError(herrors.KindNotFound, path, err)
				}
				return herrors.NewFileError(herrors.KindIO, path, err)
			}
			// One unreadable entry must not stop the build.
			f.Logger.Warnf("skipping %q: %s", path, err)
			return nil
		}

		b, err := f.shouldRead(path, fi)
		if err != nil {
			return err
		}

		if b {
			f.add(path, fi)
		}

		return nil
	}

	return afero.Walk(f.SourceFs, f.Base, walker)
}

func (f *Filesystem) shouldRead(filename string, fi os.FileInfo) (bool, error) {
	if filename == f.Base {
		if !fi.IsDir() {
			return false, herrors.NewFileError(herrors.KindNotFound, filename, fmt.Errorf("source path is not a directory"))
		}
		return false, nil
	}

	ignore := f.SourceSpec.IgnoreFile(f.rel(filename))

	if fi.IsDir() {
		if ignore {
			return false, filepath.SkipDir
		}
		return false, nil
	}

	if ignore || !fi.Mode().IsRegular() {
		return false, nil
	}

	return f.IsContentFile(filename), nil
}

func (f *Filesystem) rel(filename string) string {
	if f.Base == "" {
		return filename
	}
	rel, err := filepath.Rel(f.Base, filename)
	if err != nil {
		return filename
	}
	return rel
}

// add populates a file in the Filesystem.files
func (f *Filesystem) add(name string, fi os.FileInfo) {
	f.files = append(f.files, NewFileInfo(name, f.rel(name), fi))
}
