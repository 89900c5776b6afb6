package herrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileErrorMessage(t *testing.T) {
	cause := errors.New("boom")

	for _, test := range []struct {
		err    *FileError
		expect string
	}{
		{NewFileError(KindIO, "public/a.html", cause), `IOError: "public/a.html": boom`},
		{NewFileErrorAt(KindMetadataParse, "content/a.md", 3, cause), `MetadataParseError: "content/a.md":3: boom`},
		{NewFileError(KindConfig, "", cause), `ConfigError: boom`},
		{NewFileError(KindTargetConflict, "", nil), `TargetConflict`},
	} {
		assert.Equal(t, test.expect, test.err.Error())
	}
}

func TestKindOf(t *testing.T) {
	fe := NewFileError(KindTemplateNotFound, "page.html", errors.New("missing"))
	wrapped := fmt.Errorf("build: %w", fe)

	assert.Equal(t, KindTemplateNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindTemplateNotFound))
	assert.True(t, errors.Is(wrapped, ErrTemplateNotFound))
	assert.False(t, errors.Is(wrapped, ErrIO))
	assert.Equal(t, "page.html", PathOf(wrapped))

	assert.Equal(t, KindIO, KindOf(fmt.Errorf("write: %w", ErrIO)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
	assert.Equal(t, "", PathOf(errors.New("other")))
}

// ioAndConversion matches two sentinels.
type ioAndConversion struct{}

func (ioAndConversion) Error() string { return "io and conversion" }

func (ioAndConversion) Is(target error) bool {
	return target == ErrIO || target == ErrConversion
}

func TestKindOfPrefersFatalKind(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Equal(t, KindIO, KindOf(ioAndConversion{}))
	}
	assert.True(t, IsFatal(ioAndConversion{}))
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(NewFileError(KindConversionWarning, "a.md", errors.New("x"))))
	assert.True(t, IsFatal(NewFileError(KindIO, "a.html", errors.New("x"))))
	assert.True(t, IsFatal(errors.New("x")))
}
