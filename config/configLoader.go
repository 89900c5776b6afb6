package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/parser/metadecoders"
)

// ValidConfigFileExtensions are the config file extensions FromFile accepts.
var ValidConfigFileExtensions = []string{"toml", "yaml", "yml", "json"}

// IsValidConfigFilename reports whether filename has a known config extension.
func IsValidConfigFilename(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, e := range ValidConfigFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FromFileToMap is the same as FromFile, but it returns the config values
// as a simple map.
func FromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	return loadConfigFromFile(fs, filename)
}

func loadConfigFromFile(fs afero.Fs, filename string) (map[string]any, error) {
	if !IsValidConfigFilename(filename) {
		return nil, herrors.NewFileError(herrors.KindConfig, filename, fmt.Errorf("unsupported config format, must be one of %v", ValidConfigFileExtensions))
	}
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, herrors.NewFileError(herrors.KindConfig, filename, err)
	}
	return m, nil
}

