package urlreplacers

import (
	"bytes"
	"strings"

	"github.com/sunwei/pagegen/transform"
)

type absURLReplacer struct {
	prefixes [][]byte
}

func newAbsURLReplacer() *absURLReplacer {
	var prefixes [][]byte
	for _, attr := range []string{"src=", "href=", "action="} {
		for _, quote := range []string{`"`, `'`} {
			prefixes = append(prefixes, []byte(attr+quote+"/"))
		}
	}
	return &absURLReplacer{prefixes: prefixes}
}

// replaceInHTML writes the content of ft with every src, href and action
// value starting with a single slash prefixed by base. Protocol relative
// URLs ("//host/") are left alone.
func (ar *absURLReplacer) replaceInHTML(base string, ft transform.FromTo) error {
	base = strings.TrimSuffix(base, "/")
	src := ft.From().Bytes()
	w := ft.To()

	start := 0
	for i := 0; i < len(src); i++ {
		prefix := ar.match(src[i:])
		if prefix == nil {
			continue
		}
		end := i + len(prefix)
		if end < len(src) && src[end] == '/' {
			i = end
			continue
		}
		// Keep the slash, insert the base in front of it.
		if _, err := w.Write(src[start : end-1]); err != nil {
			return err
		}
		if _, err := w.Write([]byte(base)); err != nil {
			return err
		}
		start = end - 1
		i = end - 1
	}

	_, err := w.Write(src[start:])
	return err
}

func (ar *absURLReplacer) match(b []byte) []byte {
	if len(b) == 0 || (b[0] != 's' && b[0] != 'h' && b[0] != 'a') {
		return nil
	}
	for _, p := range ar.prefixes {
		if bytes.HasPrefix(b, p) {
			return p
		}
	}
	return nil
}
