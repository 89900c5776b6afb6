package source

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// File describes a source file found below the content root.
type File struct {
	// Filename on the content file system.
	filename string

	fi os.FileInfo

	// Derived from filename
	ext string // Extension without any "."

	name     string
	relDir   string
	relPath  string
	baseName string
}

// NewFileInfo creates a File for filename, opened on the content file system,
// and rel, its path relative to the content root.
func NewFileInfo(filename, rel string, fi os.FileInfo) *File {
	relPath := filepath.ToSlash(rel)
	relPath = strings.TrimPrefix(relPath, "/")

	dir, name := path.Split(relPath)
	ext := path.Ext(name)

	return &File{
		filename: filename,
		fi:       fi,
		ext:      strings.ToLower(strings.TrimPrefix(ext, ".")),
		name:     name,
		relDir:   dir,
		relPath:  relPath,
		baseName: strings.TrimSuffix(name, ext),
	}
}

// Path gets the relative path including file name and extension, always
// using / as separator. The directory is relative to the content root.
func (fi *File) Path() string { return fi.relPath }

// Dir gets the name of the directory that contains this file, with a trailing
// slash, or empty for files in the content root.
func (fi *File) Dir() string { return fi.relDir }

// Ext returns a file's extension without the leading period (ie. "md").
func (fi *File) Ext() string { return fi.ext }

// Filename returns the name used to open the file on the content file system.
func (fi *File) Filename() string { return fi.filename }

// LogicalName returns a file's name and extension (ie. "post.md").
func (fi *File) LogicalName() string { return fi.name }

// BaseFileName returns a file's name without extension (ie. "post").
func (fi *File) BaseFileName() string { return fi.baseName }

// PathNoExt is Path without the extension, e.g. "a/b" for "a/b.md".
func (fi *File) PathNoExt() string { return fi.relDir + fi.baseName }

// FileInfo returns a file's underlying os.FileInfo.
func (fi *File) FileInfo() os.FileInfo { return fi.fi }
