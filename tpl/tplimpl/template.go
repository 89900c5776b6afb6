// Package tplimpl loads the layouts of a site into one html/template set
// and executes them.
package tplimpl

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/herrors"
	"github.com/sunwei/pagegen/deps"
	"github.com/sunwei/pagegen/tpl"
)

const htmlSuffix = ".html"

type templateState struct {
	*template.Template

	info templateInfo
}

type templateStateMap struct {
	mu        sync.RWMutex
	templates map[string]*templateState
}

type templateNamespace struct {
	prototypeHTML *template.Template

	*templateStateMap
}

type templateHandler struct {
	main *templateNamespace
	*deps.Deps
}

type templateExec struct {
	d *deps.Deps

	*templateHandler
}

func newTemplateExec(d *deps.Deps) (*templateExec, error) {
	h := &templateHandler{
		main: newTemplateNamespace(createFuncMap(d)),
		Deps: d,
	}

	if err := h.loadTemplates(); err != nil {
		return nil, err
	}

	e := &templateExec{
		d:               d,
		templateHandler: h,
	}

	d.SetTmpl(e)

	return e, nil
}

func newTemplateNamespace(funcs template.FuncMap) *templateNamespace {
	return &templateNamespace{
		prototypeHTML: template.New("").Funcs(funcs),
		templateStateMap: &templateStateMap{
			templates: make(map[string]*templateState),
		},
	}
}

// Lookup finds a layout by name. "page" finds page.html, as does
// "page.html".
func (t *templateHandler) Lookup(name string) (tpl.Template, bool) {
	for _, candidate := range []string{name + htmlSuffix, name} {
		if templ, found := t.main.Lookup(candidate); found {
			return templ, true
		}
	}

	return nil, false
}

func (t *templateNamespace) Lookup(name string) (*templateState, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	templ, found := t.templates[name]
	if !found {
		return nil, false
	}

	return templ, found
}

func (t *templateNamespace) parse(info templateInfo) (*templateState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// All templates share the prototype's namespace, so they can call each
	// other with the template action.
	templ, err := t.prototypeHTML.New(info.name).Parse(info.template)
	if err != nil {
		return nil, info.errWithFileContext(herrors.KindTemplateExecute, "parse failed", err)
	}

	ts := &templateState{
		Template: templ,
		info:     info,
	}

	t.templates[info.name] = ts

	return ts, nil
}

func (t *templateHandler) loadTemplates() error {
	fs := t.Fs.Layouts

	walker := func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if fi.IsDir() {
			return nil
		}

		if isDotFile(path) || isBackupFile(path) {
			return nil
		}

		name := strings.TrimPrefix(filepath.ToSlash(path), "/")
		if _, found := t.OutputFormatsConfig.FromFilename(name); !found {
			t.Log.Debugf("skip non-template file %q in layouts", name)
			return nil
		}

		return t.addTemplateFile(name, path)
	}

	if err := afero.Walk(fs, "", walker); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		return nil
	}

	return nil
}

func isDotFile(path string) bool {
	return filepath.Base(path)[0] == '.'
}

func isBackupFile(path string) bool {
	return path[len(path)-1] == '~'
}

func (t *templateHandler) addTemplateFile(name, path string) error {
	fs := t.Fs.Layouts

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return herrors.NewFileError(herrors.KindIO, path, err)
	}

	info := templateInfo{
		name:     name,
		template: removeLeadingBOM(string(b)),
		filename: path,
		fs:       fs,
	}

	_, err = t.main.parse(info)

	return err
}

func removeLeadingBOM(s string) string {
	const bom = '\ufeff'

	for i, r := range s {
		if i == 0 && r != bom {
			return s
		}
		if i > 0 {
			return s[i:]
		}
	}

	return s
}

func (t *templateExec) Execute(templ tpl.Template, wr io.Writer, data any) error {
	return t.ExecuteWithContext(context.Background(), templ, wr, data)
}

func (t *templateExec) ExecuteWithContext(ctx context.Context, templ tpl.Template, wr io.Writer, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ts, ok := templ.(*templateState)
	if !ok {
		return fmt.Errorf("unsupported template type %T", templ)
	}

	if err := ts.Template.Execute(wr, data); err != nil {
		return t.addFileContext(ts, err)
	}

	return nil
}

func (t *templateHandler) addFileContext(ts *templateState, inerr error) error {
	return ts.info.errWithFileContext(herrors.KindTemplateExecute, "execute of template failed", inerr)
}

func (t *templateHandler) HasTemplate(name string) bool {
	_, found := t.Lookup(name)
	return found
}

// Templates returns the names of all loaded templates, sorted.
func (t *templateHandler) Templates() []string {
	t.main.mu.RLock()
	defer t.main.mu.RUnlock()

	names := make([]string, 0, len(t.main.templates))
	for name := range t.main.templates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
