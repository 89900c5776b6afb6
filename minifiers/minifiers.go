// Package minifiers wraps tdewolff/minify for use in the publishing chain.
package minifiers

import (
	"io"
	"regexp"

	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/output"
	"github.com/sunwei/pagegen/transform"
	"github.com/tdewolff/minify/v2"
)

// Client wraps a minifier.
type Client struct {
	m *minify.M
}

// New creates a new Client. CSS, JS, JSON and SVG minifiers are registered
// too, the HTML minifier uses them for inline style, script and svg
// elements. The HTML minifier is also registered for every HTML type in the
// provided output formats.
func New(outputFormats output.Formats, cfg config.Provider) (Client, error) {
	conf, err := decodeConfig(cfg)
	if err != nil {
		return Client{}, err
	}

	m := minify.New()

	m.Add("text/css", getMinifier(conf, "css"))

	m.Add("text/javascript", getMinifier(conf, "js"))
	m.AddRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), getMinifier(conf, "js"))

	m.Add("application/json", getMinifier(conf, "json"))
	m.AddRegexp(regexp.MustCompile(`^(application|text)/(x-|(ld|manifest)\+)?json$`), getMinifier(conf, "json"))

	m.Add("image/svg+xml", getMinifier(conf, "svg"))

	m.Add("application/xml", getMinifier(conf, "xml"))
	m.Add("text/xml", getMinifier(conf, "xml"))

	// HTML
	m.Add("text/html", getMinifier(conf, "html"))
	for _, of := range outputFormats {
		if of.IsHTML {
			m.Add(of.MediaType, getMinifier(conf, "html"))
		}
	}

	return Client{m: m}, nil
}

// getMinifier returns the appropriate minify.MinifierFunc for the MIME
// type suffix s, given the config c.
func getMinifier(c minifyConfig, s string) minify.Minifier {
	switch {
	case s == "css" && !c.DisableCSS:
		return &c.Tdewolff.CSS
	case s == "js" && !c.DisableJS:
		return &c.Tdewolff.JS
	case s == "json" && !c.DisableJSON:
		return &c.Tdewolff.JSON
	case s == "svg" && !c.DisableSVG:
		return &c.Tdewolff.SVG
	case s == "xml" && !c.DisableXML:
		return &c.Tdewolff.XML
	case s == "html" && !c.DisableHTML:
		return &c.Tdewolff.HTML
	default:
		return noopMinifier{}
	}
}

// noopMinifier implements minify.Minifier [1], but doesn't minify content. This means
// that we can avoid missing minifiers for any MIME types in our minify.M, which
// causes minify to return errors, while still allowing minification to be
// disabled for specific types.
//
// [1]: https://pkg.go.dev/github.com/tdewolff/minify#Minifier
type noopMinifier struct{}

// Minify copies r into w without transformation.
func (m noopMinifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	_, err := io.Copy(w, r)
	return err
}

// Minify minifies r into w using the minifier registered for mediatype.
func (m Client) Minify(mediatype string, w io.Writer, r io.Reader) error {
	return m.m.Minify(mediatype, w, r)
}

// Transformer returns a func that can be used in the transformer publishing
// chain, nil if there is no minifier for mediatype.
func (m Client) Transformer(mediatype string) transform.Transformer {
	_, params, min := m.m.Match(mediatype)
	if min == nil {
		// No minifier for this MIME type
		return nil
	}

	return func(ft transform.FromTo) error {
		// Note that the source io.Reader will already be buffered, but it implements
		// the Bytes() method, which is recognized by the Minify library.
		return min.Minify(m.m, ft.To(), ft.From(), params)
	}
}
