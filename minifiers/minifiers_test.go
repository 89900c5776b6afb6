package minifiers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/output"
	"github.com/sunwei/pagegen/transform"
)

func TestNew(t *testing.T) {
	m, err := New(output.DefaultFormats, config.New())
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, m.Minify("text/css", &b, strings.NewReader("body {  color: #ff0000; }")))
	assert.Equal(t, "body{color:red}", b.String())

	b.Reset()
	require.NoError(t, m.Minify("application/json", &b, strings.NewReader(`{ "a": 1 }`)))
	assert.Equal(t, `{"a":1}`, b.String())
}

func TestTransformer(t *testing.T) {
	m, err := New(output.DefaultFormats, config.New())
	require.NoError(t, err)

	tr := m.Transformer(output.HTMLFormat.MediaType)
	require.NotNil(t, tr)

	var b bytes.Buffer
	chain := transform.New(tr)
	require.NoError(t, chain.Apply(&b, strings.NewReader("<html>\n  <body>\n    <p>Hello   world</p>\n  </body>\n</html>")))
	assert.NotContains(t, b.String(), "\n")
	assert.Contains(t, b.String(), "<p>Hello world</p>")

	assert.Nil(t, m.Transformer("application/octet-stream"))
}

func TestDisabledMinifier(t *testing.T) {
	cfg := config.New()
	cfg.Set("minify", map[string]any{"disableCSS": true})

	m, err := New(output.DefaultFormats, cfg)
	require.NoError(t, err)

	in := "body {  color: #ff0000; }"
	var b bytes.Buffer
	require.NoError(t, m.Minify("text/css", &b, strings.NewReader(in)))
	assert.Equal(t, in, b.String())
}
