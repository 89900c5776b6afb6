package goldmark

import (
	"bytes"
	"path"
	"strings"

	"github.com/sunwei/pagegen/markup/goldmark/goldmark_config"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

func newLinks(cfg goldmark_config.Config, prettyURLs bool) goldmark.Extender {
	return &links{cfg: cfg, prettyURLs: prettyURLs}
}

type links struct {
	cfg        goldmark_config.Config
	prettyURLs bool
}

// Extend implements goldmark.Extender.
func (e *links) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newLinkRenderer(e.cfg, e.prettyURLs), 100),
	))
}

func newLinkRenderer(cfg goldmark_config.Config, prettyURLs bool) renderer.NodeRenderer {
	r := &hookedRenderer{
		linkifyProtocol: []byte(cfg.Extensions.LinkifyProtocol),
		rewriteLinks:    cfg.RewriteRelativeLinks,
		prettyURLs:      prettyURLs,
		Config: html.Config{
			Writer: html.DefaultWriter,
			Unsafe: cfg.Renderer.Unsafe,
			XHTML:  cfg.Renderer.XHTML,
		},
	}
	return r
}

type hookedRenderer struct {
	linkifyProtocol []byte
	rewriteLinks    bool
	prettyURLs      bool
	html.Config
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs.
func (r *hookedRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
}

// Method below borrowed from:
// https://github.com/yuin/goldmark/blob/b611cd333a492416b56aa8d94b04a67bf0096ab2/renderer/html/html.go#L404
func (r *hookedRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if entering {
		dest := n.Destination
		if r.rewriteLinks {
			dest = []byte(rewriteRelativeLink(string(dest), r.prettyURLs))
		}
		_, _ = w.WriteString("<a href=\"")
		if r.Unsafe || !html.IsDangerousURL(dest) {
			_, _ = w.Write(util.EscapeHTML(util.URLEscape(dest, true)))
		}
		_ = w.WriteByte('"')
		if n.Title != nil {
			_, _ = w.WriteString(` title="`)
			r.Writer.Write(w, n.Title)
			_ = w.WriteByte('"')
		}
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.LinkAttributeFilter)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</a>")
	}
	return ast.WalkContinue, nil
}

// Method below borrowed from:
// https://github.com/yuin/goldmark/blob/5588d92a56fe1642791cf4aa8e9eae8227cfeecd/renderer/html/html.go#L439
func (r *hookedRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.AutoLink)
	if !entering {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<a href="`)
	url := r.autoLinkURL(n, source)
	label := n.Label(source)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		_, _ = w.WriteString("mailto:")
	}
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(url, false)))
	if n.Attributes() != nil {
		_ = w.WriteByte('"')
		html.RenderAttributes(w, n, html.LinkAttributeFilter)
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString(`">`)
	}
	_, _ = w.Write(util.EscapeHTML(label))
	_, _ = w.WriteString(`</a>`)
	return ast.WalkContinue, nil
}

func (r *hookedRenderer) autoLinkURL(n *ast.AutoLink, source []byte) []byte {
	url := n.URL(source)
	if len(n.Protocol) > 0 && !bytes.Equal(n.Protocol, r.linkifyProtocol) {
		// The CommonMark spec says "http" is the correct protocol for links,
		// but this doesn't make much sense (the fact that they should care about the rendered output).
		// Note that n.Protocol is not set if protocol is provided by user.
		url = append(r.linkifyProtocol, url[len(n.Protocol):]...)
	}
	return url
}

var markdownExts = map[string]bool{".md": true, ".markdown": true}

// rewriteRelativeLink points a link to another Markdown document at the page
// rendered from it. Links with a scheme or host, and links to anything else,
// are returned unchanged.
func rewriteRelativeLink(dest string, prettyURLs bool) string {
	if dest == "" || strings.HasPrefix(dest, "//") || strings.Contains(dest, ":") {
		return dest
	}

	p, rest := dest, ""
	if i := strings.IndexAny(dest, "?#"); i != -1 {
		p, rest = dest[:i], dest[i:]
	}

	ext := path.Ext(p)
	if !markdownExts[strings.ToLower(ext)] {
		return dest
	}

	base := strings.TrimSuffix(p, ext)

	if !prettyURLs {
		return base + ".html" + rest
	}

	if strings.HasPrefix(base, "/") {
		return base + "/" + rest
	}

	// The current page is itself one directory deeper.
	return "../" + base + "/" + rest
}
