package goldmark

import (
	"bytes"

	"github.com/sunwei/pagegen/markup/tableofcontents"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	tocResultKey = parser.NewContextKey()
	tocEnableKey = parser.NewContextKey()
)

// newTocExtension collects the headings of a document into a
// tableofcontents.Root. Headings below cfg.EndLevel are left out.
func newTocExtension(cfg tableofcontents.Config, options []renderer.Option) goldmark.Extender {
	return &tocExtension{
		endLevel: cfg.EndLevel,
		options:  options,
	}
}

type tocExtension struct {
	endLevel int
	options  []renderer.Option
}

func (e *tocExtension) Extend(m goldmark.Markdown) {
	r := goldmark.DefaultRenderer()
	r.AddOptions(e.options...)
	m.Parser().AddOptions(parser.WithASTTransformers(util.Prioritized(&tocTransformer{
		r:        r,
		endLevel: e.endLevel,
	}, 10)))
}

type tocTransformer struct {
	r        renderer.Renderer
	endLevel int
}

func (t *tocTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	if enabled, ok := pc.Get(tocEnableKey).(bool); !ok || !enabled {
		return
	}

	var (
		toc tableofcontents.Root
		row = -1
	)

	src := reader.Source()

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		if heading.Level == 1 || row == -1 {
			row++
		}

		if t.endLevel != -1 && heading.Level > t.endLevel {
			return ast.WalkSkipChildren, nil
		}

		h := tableofcontents.Heading{Text: t.headingText(heading, src)}
		if id, found := heading.AttributeString("id"); found {
			if b, ok := id.([]byte); ok {
				h.ID = string(b)
			}
		}

		toc.AddAt(h, row, heading.Level-1)

		return ast.WalkSkipChildren, nil
	})

	pc.Set(tocResultKey, toc)
}

// headingText renders the inline content of h, links and emphasis included.
func (t *tocTransformer) headingText(h *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if err := t.r.Render(&buf, src, c); err != nil {
			break
		}
	}
	return buf.String()
}
