package main

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

type templateData struct {
	Package string
	Arities []arity
}

type arity struct {
	N   int
	Idx []int
}

func newArity(n int) arity {
	a := arity{N: n}
	for i := 1; i <= n; i++ {
		a.Idx = append(a.Idx, i)
	}
	return a
}

// Join renders pattern once per position, replacing every # with the 1-based position.
func (a arity) Join(pattern string, sep string) string {
	parts := make([]string, 0, a.N)
	for _, i := range a.Idx {
		parts = append(parts, strings.ReplaceAll(pattern, "#", strconv.Itoa(i)))
	}
	return strings.Join(parts, sep)
}

// Tuple is the instantiated tuple type of this arity, e.g. Tuple2[T1, T2].
func (a arity) Tuple() string {
	return fmt.Sprintf("Tuple%d[%s]", a.N, a.Join("T#", ", "))
}

// render returns the formatted content of every generated file, keyed by output path.
func render(cfg Config) (map[string][]byte, error) {
	data := templateData{Package: cfg.Package}
	for _, n := range cfg.Arities {
		data.Arities = append(data.Arities, newArity(n))
	}

	outputs := map[string]string{
		"zip.go.tmpl":   cfg.ZipOutput,
		"tuple.go.tmpl": cfg.TupleOutput,
	}

	ret := make(map[string][]byte, len(outputs))
	for tmplName, path := range outputs {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
			return nil, fmt.Errorf("failed to execute template %s: %w", tmplName, err)
		}
		formatted, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("failed to format output of template %s: %w", tmplName, err)
		}
		ret[path] = formatted
	}
	return ret, nil
}
