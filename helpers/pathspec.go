// Copyright 2016-present The Hugo Authors. All rights reserved.
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

package helpers

import (
	"fmt"
	"net/url"

	"github.com/sunwei/pagegen/config"
)

// PathSpec holds methods that decides how paths in URLs and files should look like.
type PathSpec struct {
	// The config provider to use
	Cfg config.Provider

	BaseURL string

	// Publish pages as <name>/index.html.
	PrettyURLs bool

	// Strip accents when making paths, e.g. for tag pages.
	RemovePathAccents bool
}

// NewPathSpec creates a new PathSpec from the given config.
func NewPathSpec(cfg config.Provider, bcfg config.BuildConfig) (*PathSpec, error) {
	if bcfg.BaseURL != "" {
		if _, err := url.Parse(bcfg.BaseURL); err != nil {
			return nil, fmt.Errorf("invalid baseURL %q: %w", bcfg.BaseURL, err)
		}
	}

	return &PathSpec{
		Cfg:               cfg,
		BaseURL:           bcfg.BaseURL,
		PrettyURLs:        bcfg.IsPrettyURLs(),
		RemovePathAccents: cfg.GetBool("removePathAccents"),
	}, nil
}
