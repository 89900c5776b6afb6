package tplimpl

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
)

type templateInfo struct {
	name     string
	template string

	// Used to create some error context in error situations
	fs afero.Fs

	// The filename relative to the fs above.
	filename string
}

// Go's template errors start with "template: name:line:".
var lineNumberRe = regexp.MustCompile(`template: [^:]+:(\d+)`)

func (t templateInfo) errWithFileContext(kind herrors.Kind, what string, err error) error {
	filename := t.filename
	if filename == "" {
		filename = t.name
	}

	err = fmt.Errorf("%s: %w", what, err)

	if m := lineNumberRe.FindStringSubmatch(err.Error()); m != nil {
		if line, perr := strconv.Atoi(m[1]); perr == nil {
			return herrors.NewFileErrorAt(kind, filename, line, err)
		}
	}

	return herrors.NewFileError(kind, filename, err)
}

func (t templateInfo) IsZero() bool {
	return t.name == ""
}
