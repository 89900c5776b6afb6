package transform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replacer(old, new string) Transformer {
	return func(ft FromTo) error {
		_, err := ft.To().Write(bytes.ReplaceAll(ft.From().Bytes(), []byte(old), []byte(new)))
		return err
	}
}

func TestChainApply(t *testing.T) {
	tr := New(replacer("a", "b"), replacer("b", "c"), replacer("c", "d"))

	var out bytes.Buffer
	require.NoError(t, tr.Apply(&out, strings.NewReader("abc")))
	assert.Equal(t, "ddd", out.String())
}

func TestChainApplyEmpty(t *testing.T) {
	tr := NewEmpty()

	var out bytes.Buffer
	require.NoError(t, tr.Apply(&out, strings.NewReader("unchanged")))
	assert.Equal(t, "unchanged", out.String())
}
