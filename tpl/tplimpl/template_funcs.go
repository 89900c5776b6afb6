package tplimpl

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/spf13/cast"
	"github.com/sunwei/pagegen/common/maps"
	"github.com/sunwei/pagegen/deps"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/markup/converter"
	"github.com/sunwei/pagegen/resources/page/pagemeta"
)

// createFuncMap returns the functions available to every layout in
// addition to Go's builtins.
func createFuncMap(d *deps.Deps) template.FuncMap {
	titleFunc := helpers.GetTitleFunc(d.BuildConfig.TitleCaseStyle)

	return template.FuncMap{
		// strings
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"title": titleFunc,
		"humanize": func(s any) string {
			return helpers.HumanizeName(cast.ToString(s), titleFunc)
		},
		"plainify": func(s any) template.HTML {
			return template.HTML(helpers.StripHTML(cast.ToString(s)))
		},
		"emojify": func(s any) template.HTML {
			return template.HTML(helpers.Emojify([]byte(cast.ToString(s))))
		},

		// urls
		"urlize": func(s any) string {
			return d.URLize(cast.ToString(s))
		},
		"absURL": func(s any) string {
			return d.Permalink(cast.ToString(s))
		},

		// safe
		"safeHTML": func(s any) template.HTML {
			return template.HTML(cast.ToString(s))
		},
		"safeURL": func(s any) template.URL {
			return template.URL(cast.ToString(s))
		},

		// content
		"markdownify": func(s any) (template.HTML, error) {
			return markdownify(d, cast.ToString(s))
		},

		// time
		"now": d.Clock.Now,
		"dateFormat": func(layout string, v any) (string, error) {
			date, err := pagemeta.ToDateE(v)
			if err != nil {
				return "", err
			}
			return date.Format(layout), nil
		},

		// collections and defaults
		"default": defaultValue,
		"param": func(params any, key string) any {
			p, ok := maps.ToParamsAndPrepare(params)
			if !ok {
				return nil
			}
			return p.Get(strings.Split(strings.ToLower(key), ".")...)
		},
	}
}

func markdownify(d *deps.Deps, s string) (template.HTML, error) {
	cp := d.Converters.Get("markdown")
	if cp == nil {
		return "", fmt.Errorf("markdownify: no markdown converter registered")
	}
	conv, err := cp.New(converter.DocumentContext{DocumentName: "markdownify"})
	if err != nil {
		return "", err
	}
	res, err := conv.Convert(converter.RenderContext{Src: []byte(s)})
	if err != nil {
		return "", err
	}
	b := d.PostProcess(res.Bytes())

	// Strip the block paragraph wrapper for single line input.
	out := strings.TrimSpace(string(b))
	if strings.Count(out, "<p>") == 1 && strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}

	return template.HTML(out), nil
}

// defaultValue returns given if it is set and not a zero value, else dflt.
// Used as {{ .title | default "Untitled" }}.
func defaultValue(dflt any, given ...any) any {
	if len(given) == 0 || given[0] == nil {
		return dflt
	}
	switch v := given[0].(type) {
	case string:
		if v == "" {
			return dflt
		}
	case bool:
		if !v {
			return dflt
		}
	case []string:
		if len(v) == 0 {
			return dflt
		}
	}
	return given[0]
}
