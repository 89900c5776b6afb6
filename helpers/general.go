package helpers

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/jdkato/prose/transform"
	"github.com/kyokomi/emoji/v2"
)

// FilePathSeparator as defined by os.Separator.
const FilePathSeparator = string(filepath.Separator)

// GetTitleFunc returns a func that can be used to transform a string to
// title case.
//
// The supported styles are
//
// - "Go" (strings.Title)
// - "AP" (see https://www.apstylebook.com/)
// - "Chicago" (see http://www.chicagomanualofstyle.org/home.html)
//
// If an unknown or empty style is provided, AP style is what you get.
func GetTitleFunc(style string) func(s string) string {
	switch strings.ToLower(style) {
	case "go":
		return strings.Title
	case "chicago":
		tc := transform.NewTitleConverter(transform.ChicagoStyle)
		return tc.Title
	default:
		tc := transform.NewTitleConverter(transform.APStyle)
		return tc.Title
	}
}

// HumanizeName turns a file base name such as "my-first_post" into
// "My First Post".
func HumanizeName(name string, titleFunc func(string) string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	if titleFunc == nil {
		return name
	}
	return titleFunc(name)
}

// Emojify replaces :emoji: shortcodes in source.
func Emojify(source []byte) []byte {
	if bytes.IndexByte(source, ':') == -1 {
		return source
	}
	return []byte(emoji.Sprint(string(source)))
}

// UniqueStringsReuse returns a slice with any duplicates removed.
// It will modify the input slice.
func UniqueStringsReuse(s []string) []string {
	result := s[:0]
	for i, val := range s {
		var seen bool

		for j := 0; j < i; j++ {
			if s[j] == val {
				seen = true
				break
			}
		}

		if !seen {
			result = append(result, val)
		}
	}
	return result
}
