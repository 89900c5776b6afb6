package goldmark

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwei/pagegen/markup/converter"
	"github.com/sunwei/pagegen/markup/markup_config"
)

func convert(t *testing.T, mconf markup_config.Config, prettyURLs bool, content string) converter.Result {
	t.Helper()
	p, err := Provider.New(converter.ProviderConfig{
		MarkupConfig: mconf,
		PrettyURLs:   prettyURLs,
	})
	require.NoError(t, err)
	c, err := p.New(converter.DocumentContext{DocumentName: "post.md"})
	require.NoError(t, err)
	r, err := c.Convert(converter.RenderContext{Src: []byte(content), RenderTOC: true})
	require.NoError(t, err)
	return r
}

func TestConvert(t *testing.T) {
	content := "# Hi\n\n" +
		"Some *emphasis* and **strong** text with a [link](https://example.org).\n\n" +
		"- one\n- two\n\n" +
		"| a | b |\n|---|---|\n| 1 | 2 |\n\n" +
		"~~gone~~\n\n" +
		"<div class=\"raw\">raw</div>\n\n" +
		"```go\nfunc main() {}\n```\n"

	b := string(convert(t, markup_config.Default, false, content).Bytes())

	assert.Contains(t, b, `<h1 id="hi">Hi</h1>`)
	assert.Contains(t, b, "<em>emphasis</em>")
	assert.Contains(t, b, "<strong>strong</strong>")
	assert.Contains(t, b, `<a href="https://example.org">link</a>`)
	assert.Contains(t, b, "<li>one</li>")
	assert.Contains(t, b, "<table>")
	assert.Contains(t, b, "<del>gone</del>")
	assert.Contains(t, b, `<div class="raw">raw</div>`)

	// Code blocks are highlighted with classes, not inline styles.
	assert.Contains(t, b, `class="chroma"`)
	assert.Contains(t, b, `<span class="`)
	assert.NotContains(t, b, `style="color`)
}

func TestConvertHighlightInlineStyles(t *testing.T) {
	mconf := markup_config.Default
	mconf.Highlight.NoClasses = true

	b := string(convert(t, mconf, false, "```go\nfunc main() {}\n```\n").Bytes())
	assert.Contains(t, b, `style="`)
	assert.NotContains(t, b, `class="chroma"`)
}

func TestConvertUnsafeOff(t *testing.T) {
	mconf := markup_config.Default
	mconf.Goldmark.Renderer.Unsafe = false

	b := string(convert(t, mconf, false, "<div>raw</div>\n").Bytes())
	assert.Contains(t, b, "<!-- raw HTML omitted -->")
}

func TestConvertAutoIDs(t *testing.T) {
	b := string(convert(t, markup_config.Default, false, "# Same\n\n# Same\n\n## Ünïcode Title\n").Bytes())
	assert.Contains(t, b, `<h1 id="same">Same</h1>`)
	assert.Contains(t, b, `<h1 id="same-1">Same</h1>`)
	assert.Contains(t, b, `id="ünïcode-title"`)

	mconf := markup_config.Default
	mconf.Goldmark.Parser.AutoHeadingIDType = "github-ascii"
	b = string(convert(t, mconf, false, "## Ünïcode Title\n").Bytes())
	assert.Contains(t, b, `id="unicode-title"`)
}

func TestConvertTableOfContents(t *testing.T) {
	r := convert(t, markup_config.Default, false, "# Title\n\n## First\n\n### Sub\n\n## Second\n")

	tocp, ok := r.(converter.TableOfContentsProvider)
	require.True(t, ok)

	toc := tocp.TableOfContents()
	h := toc.ToHTML(2, 3, false)
	assert.Contains(t, h, `<a href="#first">First</a>`)
	assert.Contains(t, h, `<a href="#sub">Sub</a>`)
	assert.Contains(t, h, `<a href="#second">Second</a>`)
	assert.NotContains(t, h, `#title`)
}

func TestConvertTableOfContentsEndLevel(t *testing.T) {
	mconf := markup_config.Default
	mconf.TableOfContents.EndLevel = 2

	r := convert(t, mconf, false, "## First *one*\n\n### Sub\n\n## Second\n")
	toc := r.(converter.TableOfContentsProvider).TableOfContents()

	require.Len(t, toc.Headings, 1)
	top := toc.Headings[0].Headings
	require.Len(t, top, 2)
	assert.Equal(t, "first-one", top[0].ID)
	assert.Equal(t, "First <em>one</em>", top[0].Text)
	assert.Empty(t, top[0].Headings)
	assert.Equal(t, "second", top[1].ID)

	assert.NotContains(t, toc.ToHTML(1, -1, false), "#sub")
}

func TestConvertRewriteLinks(t *testing.T) {
	content := "[a](other.md) [b](sub/page.markdown#sec) [c](https://example.org/x.md) [d](image.png) [e](/abs.md)\n"

	b := string(convert(t, markup_config.Default, false, content).Bytes())
	assert.Contains(t, b, `<a href="other.html">a</a>`)
	assert.Contains(t, b, `<a href="sub/page.html#sec">b</a>`)
	assert.Contains(t, b, `<a href="https://example.org/x.md">c</a>`)
	assert.Contains(t, b, `<a href="image.png">d</a>`)
	assert.Contains(t, b, `<a href="/abs.html">e</a>`)

	b = string(convert(t, markup_config.Default, true, content).Bytes())
	assert.Contains(t, b, `<a href="../other/">a</a>`)
	assert.Contains(t, b, `<a href="../sub/page/#sec">b</a>`)
	assert.Contains(t, b, `<a href="/abs/">e</a>`)

	mconf := markup_config.Default
	mconf.Goldmark.RewriteRelativeLinks = false
	b = string(convert(t, mconf, false, content).Bytes())
	assert.Contains(t, b, `<a href="other.md">a</a>`)
}

func TestConvertLinkify(t *testing.T) {
	b := string(convert(t, markup_config.Default, false, "Visit www.example.org today.\n").Bytes())
	assert.Contains(t, b, `<a href="https://www.example.org">www.example.org</a>`)
}

func TestRewriteRelativeLink(t *testing.T) {
	for _, test := range []struct {
		in     string
		pretty bool
		expect string
	}{
		{"a.md", false, "a.html"},
		{"a.md", true, "../a/"},
		{"a.MD?x=1", false, "a.html?x=1"},
		{"#anchor", false, "#anchor"},
		{"mailto:a@b.md", false, "mailto:a@b.md"},
		{"//cdn.org/a.md", false, "//cdn.org/a.md"},
		{"", false, ""},
		{"dir/", true, "dir/"},
	} {
		assert.Equal(t, test.expect, rewriteRelativeLink(test.in, test.pretty), test.in)
	}
}

func TestSanitizeAnchorName(t *testing.T) {
	for _, test := range []struct {
		in, idType, expect string
	}{
		{"Hello World", "github", "hello-world"},
		{"  Hello, World!  ", "github", "hello-world"},
		{"Hello_World 42", "github", "hello_world-42"},
		{"Ångström", "github-ascii", "angstrom"},
		{"Hello, World!", "blackfriday", "hello-world"},
	} {
		got := string(sanitizeAnchorName([]byte(test.in), test.idType))
		assert.Equal(t, test.expect, got, test.in)
	}

	assert.True(t, strings.HasPrefix(string(newIDFactory("github").Generate([]byte("!!!"), 0)), "id"))
}
