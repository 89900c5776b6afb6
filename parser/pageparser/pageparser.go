// Package pageparser splits a source document into its front matter and its
// content.
package pageparser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/sunwei/pagegen/parser/metadecoders"
)

// ErrMissingClosingDelimiter is returned when a document starts with a front
// matter delimiter that is never closed.
var ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

// Delimiters recognized on the first line of a document.
var (
	delimYAML = []byte("---")
	delimTOML = []byte("+++")
)

var byteOrderMark = []byte("\ufeff")

// ContentFrontMatter holds a document split into its parts.
type ContentFrontMatter struct {
	// Content is everything after the closing delimiter line, or the
	// complete input if there is no front matter.
	Content []byte

	// FrontMatter is the decoded metadata. Never nil.
	FrontMatter map[string]any

	// FrontMatterFormat is empty when the document has no front matter.
	FrontMatterFormat metadecoders.Format

	// RawFrontMatter is the undecoded block between the delimiters.
	RawFrontMatter []byte
}

// SyntaxError describes a front matter block that could not be split or
// decoded. Line is 1-based and points at the opening delimiter or at the
// decoder's reported line when known.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ParseFrontMatterAndContent splits src into front matter and content and
// decodes the front matter into a map.
func ParseFrontMatterAndContent(src []byte) (ContentFrontMatter, error) {
	src = bytes.TrimPrefix(src, byteOrderMark)

	cf := ContentFrontMatter{
		Content:     src,
		FrontMatter: make(map[string]any),
	}

	raw, content, format, err := Split(src)
	if err != nil {
		return cf, err
	}
	if format == "" {
		return cf, nil
	}

	cf.Content = content
	cf.FrontMatterFormat = format
	cf.RawFrontMatter = raw

	if len(bytes.TrimSpace(raw)) == 0 {
		return cf, nil
	}

	m, err := metadecoders.Default.UnmarshalToMap(raw, format)
	if err != nil {
		return cf, &SyntaxError{Line: 1, Err: err}
	}
	cf.FrontMatter = m

	return cf, nil
}

// Split separates a delimited front matter block from the content. The
// opening delimiter must be the very first line of src; the block ends at
// the next line consisting of the same delimiter. LF and CRLF line endings
// are both accepted. A leading byte order mark is dropped.
//
// If src does not start with a delimiter line, format is empty and content is
// src unchanged.
func Split(src []byte) (frontMatter, content []byte, format metadecoders.Format, err error) {
	src = bytes.TrimPrefix(src, byteOrderMark)

	delim, format := detectDelimiter(src)
	if delim == nil {
		return nil, src, "", nil
	}

	firstLineEnd := bytes.IndexByte(src, '\n')
	pos := firstLineEnd + 1

	for pos <= len(src) {
		lineEnd := bytes.IndexByte(src[pos:], '\n')
		var line []byte
		next := len(src)
		if lineEnd == -1 {
			line = src[pos:]
		} else {
			line = src[pos : pos+lineEnd]
			next = pos + lineEnd + 1
		}

		if bytes.Equal(bytes.TrimRight(line, "\r"), delim) {
			return src[firstLineEnd+1 : pos], src[next:], format, nil
		}

		if lineEnd == -1 {
			break
		}
		pos = next
	}

	return nil, nil, "", &SyntaxError{Line: 1, Err: ErrMissingClosingDelimiter}
}

func detectDelimiter(src []byte) ([]byte, metadecoders.Format) {
	i := bytes.IndexByte(src, '\n')
	if i == -1 {
		return nil, ""
	}
	first := bytes.TrimRight(src[:i], "\r")
	switch {
	case bytes.Equal(first, delimYAML):
		return delimYAML, metadecoders.YAML
	case bytes.Equal(first, delimTOML):
		return delimTOML, metadecoders.TOML
	}
	return nil, ""
}
