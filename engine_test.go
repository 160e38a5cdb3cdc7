package depgraph

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under a temporary root and returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")
	for p, content := range files {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()
	e := New()
	assert.Equal(t, DefaultExtensions, e.extensions)
	assert.Equal(t, DefaultSyntax, e.syntax)
	assert.Zero(t, e.workers)
	assert.NotNil(t, e.logger)
}

func TestNew_Options(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s := Syntax{NamespaceKeyword: "namespace", ImportKeyword: "using"}
	e := New(
		WithExtensions(".cs"),
		WithExcludeDirs("bin", "obj"),
		WithSyntax(s),
		WithWorkers(3),
		WithLogger(logger),
	)
	assert.Equal(t, []string{".cs"}, e.extensions)
	assert.Equal(t, []string{"bin", "obj"}, e.excludeDirs)
	assert.Equal(t, s, e.syntax)
	assert.Equal(t, 3, e.workers)
	assert.Same(t, logger, e.logger)
}

func TestAnalyzeFS_SamePackageScenario(t *testing.T) {
	t.Parallel()
	g := analyzeFS(t, map[string]string{
		"a/Foo.java": "package a;\n\npublic class Foo {}\n",
		"a/Bar.java": "package a;\n\npublic class Bar {\n    Foo foo;\n}\n",
	})
	out := renderDOT(t, g)
	assert.Contains(t, out, `"a.Foo" -> { }`)
	assert.Contains(t, out, `"a.Bar" -> { "a.Foo" }`)
}

func TestAnalyzeFS_WildcardScenario(t *testing.T) {
	t.Parallel()
	g := analyzeFS(t, map[string]string{
		"p/Widget.java": "package p;\nimport q.*;\nclass Widget {}\n",
		"q/X.java":      "package q;\nclass X {}\n",
		"q/Y.java":      "package q;\nclass Y {}\n",
	})
	assert.ElementsMatch(t, []string{"q.X", "q.Y"}, targetLabels(t, g, "p.Widget"))
}

func TestAnalyzeFS_ExternalScenario(t *testing.T) {
	t.Parallel()
	g := analyzeFS(t, map[string]string{
		"p/Widget.java": "package p;\nimport java.util.List;\nclass Widget {}\n",
	})
	rec, ok := g.Record("p.Widget")
	require.True(t, ok)
	require.Len(t, rec.Dependencies, 1)
	assert.Equal(t, External, rec.Dependencies[0].Kind)
	assert.Contains(t, renderDOT(t, g), `"p.Widget" -> { "java.util.List" }`)
}

func TestAnalyzeFS_MissingNamespaceAborts(t *testing.T) {
	t.Parallel()
	_, err := New().AnalyzeFS(context.Background(), javaFS(map[string]string{
		"a/Foo.java":    "package a;",
		"a/Broken.java": "public class Broken {}",
	}))
	require.ErrorIs(t, err, ErrMissingNamespaceDeclaration)
}

func TestAnalyzeFS_NoSelfEdges(t *testing.T) {
	t.Parallel()
	g := analyzeFS(t, map[string]string{
		"a/A.java": "package a;\nimport a.*;\nimport a.A;\nclass A { A self; B b; }\n",
		"a/B.java": "package a;\nclass B { A a; }\n",
	})
	for _, r := range g.Records {
		for _, d := range r.Dependencies {
			if d.Kind == Internal {
				assert.NotSame(t, r.Unit, d.Unit, "%s depends on itself", r.Unit.Label())
			}
		}
	}
}

func TestAnalyzeFS_NoDuplicateTargets(t *testing.T) {
	t.Parallel()
	g := analyzeFS(t, map[string]string{
		"a/A.java": "package a;\nimport b.*;\nimport b.X;\nimport java.util.List;\nimport java.util.List;\nclass A { C c; }\n",
		"a/C.java": "package a;",
		"b/X.java": "package b;",
	})
	for _, r := range g.Records {
		seen := map[string]bool{}
		for _, d := range r.Dependencies {
			assert.False(t, seen[d.Label()], "duplicate target %s in %s", d.Label(), r.Unit.Label())
			seen[d.Label()] = true
		}
	}
	assert.Equal(t, []string{"b.X", "java.util.List", "a.C"}, targetLabels(t, g, "a.A"))
}

func TestAnalyzeFS_RecordsSortedByLabel(t *testing.T) {
	t.Parallel()
	g := analyzeFS(t, map[string]string{
		"z/Z.java": "package z;",
		"a/B.java": "package a;",
		"a/A.java": "package a;",
		"m/M.kt":   "package m",
	})
	var labels []string
	for _, r := range g.Records {
		labels = append(labels, r.Unit.Label())
	}
	assert.Equal(t, []string{"a.A", "a.B", "m.M", "z.Z"}, labels)
}

func TestAnalyzeFS_ExtensionFilter(t *testing.T) {
	t.Parallel()
	g := analyzeFS(t, map[string]string{
		"a/A.java":    "package a;",
		"a/K.kt":      "package a",
		"a/notes.txt": "no package here",
	}, WithExtensions(".java"))
	require.Len(t, g.Records, 1)
	assert.Equal(t, "a.A", g.Records[0].Unit.Label())
}

func TestAnalyzeFS_SerialAndParallelAgree(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"a/A.java": "package a;\nimport b.*;\nclass A { B b; C c; }\n",
		"a/B.java": "package a;\nclass B { A a; }\n",
		"a/C.java": "package a;\n",
		"b/X.java": "package b;\nimport a.A;\n",
		"b/Y.java": "package b;\nclass Y { X x; }\n",
	}
	serial := renderDOT(t, analyzeFS(t, files, WithWorkers(1)))
	parallel := renderDOT(t, analyzeFS(t, files, WithWorkers(8)))
	assert.Equal(t, serial, parallel)
}

func TestAnalyzeFS_LogsAtDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	analyzeFS(t, map[string]string{"a/A.java": "package a;"}, WithLogger(logger))
	assert.Contains(t, buf.String(), "built inventory")
	assert.Contains(t, buf.String(), "units=1")
}

func TestAnalyzeFS_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().AnalyzeFS(ctx, javaFS(map[string]string{"a/A.java": "package a;"}))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Directory(t *testing.T) {
	t.Parallel()
	root := writeTree(t, map[string]string{
		"src/a/Foo.java": "package a;\nclass Foo {}\n",
		"src/a/Bar.java": "package a;\nclass Bar { Foo f; }\n",
	})
	g, err := New().Analyze(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, root, g.Root)
	assert.Equal(t, []string{"a.Foo"}, targetLabels(t, g, "a.Bar"))
	assert.Equal(t, "src/a/Bar.java", g.Records[0].Unit.Path)
}

func TestAnalyze_IdempotentEdges(t *testing.T) {
	t.Parallel()
	root := writeTree(t, map[string]string{
		"a/A.java": "package a;\nimport b.*;\nimport java.io.File;\nclass A { B b; }\n",
		"a/B.java": "package a;\n",
		"b/X.java": "package b;\nimport a.A;\n",
	})
	first, err := New().Analyze(context.Background(), root)
	require.NoError(t, err)
	second, err := New().Analyze(context.Background(), root)
	require.NoError(t, err)
	assert.ElementsMatch(t, first.Edges(), second.Edges())
}

func TestAnalyze_NotADirectory(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "A.java")
	require.NoError(t, os.WriteFile(file, []byte("package a;"), 0o644))

	_, err := New().Analyze(context.Background(), file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	_, err = New().Analyze(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found")
}
