package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zipgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
package: zip
arities: [4, 2, 3]
zipOutput: out/zip_gen.go
tupleOutput: out/tuple_gen.go
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "zip", cfg.Package)
	require.Equal(t, []int{2, 3, 4}, cfg.Arities)
	require.Equal(t, filepath.Join(filepath.Dir(path), "out", "zip_gen.go"), cfg.ZipOutput)
	require.Equal(t, filepath.Join(filepath.Dir(path), "out", "tuple_gen.go"), cfg.TupleOutput)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "no package", content: "arities: [2]\nzipOutput: a.go\ntupleOutput: b.go\n", errMsg: "package is required"},
		{name: "no arities", content: "package: zip\nzipOutput: a.go\ntupleOutput: b.go\n", errMsg: "at least one arity"},
		{name: "arity too small", content: "package: zip\narities: [1]\nzipOutput: a.go\ntupleOutput: b.go\n", errMsg: "out of range"},
		{name: "arity too large", content: "package: zip\narities: [10]\nzipOutput: a.go\ntupleOutput: b.go\n", errMsg: "out of range"},
		{name: "duplicate", content: "package: zip\narities: [2, 2]\nzipOutput: a.go\ntupleOutput: b.go\n", errMsg: "duplicate arity"},
		{name: "no outputs", content: "package: zip\narities: [2]\n", errMsg: "zipOutput and tupleOutput are required"},
		{name: "not yaml", content: "package: [zip", errMsg: "failed to parse config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestArityJoin(t *testing.T) {
	a := newArity(3)
	require.Equal(t, []int{1, 2, 3}, a.Idx)
	require.Equal(t, "T1, T2, T3", a.Join("T#", ", "))
	require.Equal(t, "p1 Producer[T1], p2 Producer[T2], p3 Producer[T3]", a.Join("p# Producer[T#]", ", "))
	require.Equal(t, "Tuple3[T1, T2, T3]", a.Tuple())
}

func parseRendered(t *testing.T, content []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "", content, parser.ParseComments)
	require.NoError(t, err)
	return f
}

func declaredNames(f *ast.File) map[string]bool {
	names := make(map[string]bool)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names[ts.Name.Name] = true
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		}
	}
	return names
}

func TestRender(t *testing.T) {
	cfg := Config{Package: "zip", Arities: []int{2, 5}, ZipOutput: "zip_gen.go", TupleOutput: "tuple_gen.go"}
	files, err := render(cfg)
	require.NoError(t, err)
	require.Len(t, files, 2)

	zipFile := parseRendered(t, files["zip_gen.go"])
	require.Equal(t, "zip", zipFile.Name.Name)
	zipNames := declaredNames(zipFile)
	for _, name := range []string{"Zip2", "NewZip2", "Zip5", "NewZip5"} {
		require.True(t, zipNames[name], "%s declared", name)
	}
	require.False(t, zipNames["Zip3"])

	tupleNames := declaredNames(parseRendered(t, files["tuple_gen.go"]))
	for _, name := range []string{"Tuple2", "NewTuple2", "Tuple5", "NewTuple5"} {
		require.True(t, tupleNames[name], "%s declared", name)
	}

	content := string(files["zip_gen.go"])
	require.True(t, strings.HasPrefix(content, "// Code generated by zipgen. DO NOT EDIT."))
	require.Contains(t, content, "return Tuple5[T1, T2, T3, T4, T5]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}, nil")
	require.Contains(t, content, "return z.cfg.sizeHint(z.p1.SizeHint(), z.p2.SizeHint())")

	// Producers are pulled in declaration order
	last := -1
	for _, pull := range []string{"z.p1.Emit(ctx)", "z.p2.Emit(ctx)", "z.p3.Emit(ctx)", "z.p4.Emit(ctx)", "z.p5.Emit(ctx)"} {
		idx := strings.Index(content[strings.Index(content, "type Zip5"):], pull)
		require.Greater(t, idx, last, pull)
		last = idx
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zipgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: zip\narities: [2, 3]\nzipOutput: zip_gen.go\ntupleOutput: tuple_gen.go\n"), 0644))

	require.NoError(t, run(path))
	for _, name := range []string{"zip_gen.go", "tuple_gen.go"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		parseRendered(t, content)
	}
}

func TestCheckedInOutputIsUpToDate(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("..", "..", "zipgen.yaml"))
	require.NoError(t, err)
	files, err := render(cfg)
	require.NoError(t, err)

	for path, content := range files {
		checkedIn, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, string(content), string(checkedIn), "%s is stale, run go generate ./zip", path)
	}
}
