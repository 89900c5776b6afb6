// Package herrors contains the error kinds used across a site build and
// helpers to classify them.
package herrors

import (
	"errors"
	"fmt"

	"github.com/sunwei/pagegen/common/text"
)

// Kind classifies a build error.
type Kind string

const (
	KindNotFound          Kind = "NotFound"
	KindMetadataParse     Kind = "MetadataParseError"
	KindConversionWarning Kind = "ConversionWarning"
	KindTemplateNotFound  Kind = "TemplateNotFound"
	KindTemplateExecute   Kind = "TemplateExecuteError"
	KindIO                Kind = "IOError"
	KindTargetConflict    Kind = "TargetConflict"
	KindConfig            Kind = "ConfigError"
	KindUnknown           Kind = "Unknown"
)

// Sentinels, one per Kind, so callers can use errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrMetadataParse    = errors.New("malformed front matter")
	ErrConversion       = errors.New("markup conversion")
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateExecute  = errors.New("template execution failed")
	ErrIO               = errors.New("i/o failure")
	ErrTargetConflict   = errors.New("output target conflict")
	ErrConfig           = errors.New("invalid configuration")
)

// sentinels in the order KindOf tries them.
var sentinels = []struct {
	kind Kind
	err  error
}{
	{KindMetadataParse, ErrMetadataParse},
	{KindTemplateNotFound, ErrTemplateNotFound},
	{KindTemplateExecute, ErrTemplateExecute},
	{KindTargetConflict, ErrTargetConflict},
	{KindConfig, ErrConfig},
	{KindNotFound, ErrNotFound},
	{KindIO, ErrIO},
	{KindConversionWarning, ErrConversion},
}

func sentinelOf(kind Kind) error {
	for _, s := range sentinels {
		if s.kind == kind {
			return s.err
		}
	}
	return nil
}

// FileError is an error tied to a file (a source document, a template or
// an output target).
type FileError struct {
	Kind Kind
	Path string

	// Pos is set when the location inside the file is known.
	Pos text.Position

	Err error
}

func (e *FileError) Error() string {
	if e.Path == "" && !e.Pos.IsValid() {
		if e.Err == nil {
			return string(e.Kind)
		}
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	where := fmt.Sprintf("%q", e.Path)
	if e.Pos.IsValid() {
		pos := e.Pos
		if pos.Filename == "" {
			pos.Filename = e.Path
		}
		where = pos.String()
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, where)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, where, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTemplateNotFound) and friends work for
// FileErrors of the matching kind.
func (e *FileError) Is(target error) bool {
	s := sentinelOf(e.Kind)
	return s != nil && s == target
}

// Position implements text.Positioner.
func (e *FileError) Position() text.Position {
	return e.Pos
}

// NewFileError creates a FileError of the given kind.
func NewFileError(kind Kind, path string, err error) *FileError {
	return &FileError{Kind: kind, Path: path, Err: err}
}

// NewFileErrorAt creates a FileError pointing at a line in the file.
func NewFileErrorAt(kind Kind, path string, line int, err error) *FileError {
	return &FileError{Kind: kind, Path: path, Pos: text.Position{Filename: path, LineNumber: line, Offset: -1}, Err: err}
}

// KindOf returns the Kind of the first FileError in err's chain,
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	return KindUnknown
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// PathOf returns the path of the first FileError in err's chain.
func PathOf(err error) string {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Path
	}
	return ""
}

// IsFatal reports whether err must stop the build. Conversion warnings
// are the only non-fatal kind.
func IsFatal(err error) bool {
	return err != nil && !IsKind(err, KindConversionWarning)
}
