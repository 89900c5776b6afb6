// Copyright 2019 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sitefs provides the file systems used during a build.
package sitefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bep/overlayfs"
	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/config"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Fs holds the core filesystems used by a build.
type Fs struct {
	// Source is the source file system.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for many of the tests.
	Source afero.Fs

	// Content is Source restricted to the content dir.
	Content afero.Fs

	// Layouts holds the templates. When a theme layout dir is configured
	// it is overlaid below the project's layouts.
	Layouts afero.Fs

	// PublishDir is where rendered output is written.
	// It's mounted inside publishDir (default public).
	PublishDir afero.Fs

	// ContentDir and PublishDirName are the configured paths on Source.
	ContentDir     string
	PublishDirName string
}

// NewFrom creates a new Fs based on the provided Afero Fs
// as source and destination file systems.
// Useful for testing.
func NewFrom(fs afero.Fs, cfg config.BuildConfig) (*Fs, error) {
	return New(fs, fs, cfg)
}

// New creates the file systems for cfg. The content dir must exist and be a
// directory. The publish dir is created if needed.
func New(source, destination afero.Fs, cfg config.BuildConfig) (*Fs, error) {
	contentDir := filepath.Clean(cfg.ContentDir)
	fi, err := source.Stat(contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, herrors.NewFileError(herrors.KindNotFound, contentDir, fmt.Errorf("source directory does not exist"))
		}
		return nil, herrors.NewFileError(herrors.KindIO, contentDir, err)
	}
	if !fi.IsDir() {
		return nil, herrors.NewFileError(herrors.KindNotFound, contentDir, fmt.Errorf("source path is not a directory"))
	}

	publishDir := filepath.Clean(cfg.PublishDir)

	// Make sure we always have the publish folder ready to use.
	if err := destination.MkdirAll(publishDir, 0777); err != nil && !os.IsExist(err) {
		return nil, herrors.NewFileError(herrors.KindIO, publishDir, err)
	}

	return &Fs{
		Source:         source,
		Content:        afero.NewReadOnlyFs(afero.NewBasePathFs(source, contentDir)),
		Layouts:        newLayoutsFs(source, cfg),
		PublishDir:     afero.NewBasePathFs(destination, publishDir),
		ContentDir:     contentDir,
		PublishDirName: publishDir,
	}, nil
}

func newLayoutsFs(source afero.Fs, cfg config.BuildConfig) afero.Fs {
	project := afero.NewReadOnlyFs(afero.NewBasePathFs(source, filepath.Clean(cfg.LayoutDir)))
	if cfg.ThemeLayoutDir == "" {
		return project
	}
	theme := afero.NewReadOnlyFs(afero.NewBasePathFs(source, filepath.Clean(cfg.ThemeLayoutDir)))

	// The first filesystem wins.
	return overlayfs.New(overlayfs.Options{Fss: []afero.Fs{project, theme}})
}

// CleanPublishDir removes everything inside the publish dir, keeping the
// dir itself.
func (fs *Fs) CleanPublishDir() error {
	entries, err := afero.ReadDir(fs.PublishDir, "")
	if err != nil {
		return herrors.NewFileError(herrors.KindIO, fs.PublishDirName, err)
	}
	for _, e := range entries {
		if err := fs.PublishDir.RemoveAll(e.Name()); err != nil {
			return herrors.NewFileError(herrors.KindIO, filepath.Join(fs.PublishDirName, e.Name()), err)
		}
	}
	return nil
}
