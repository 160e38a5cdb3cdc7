package depgraph

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

// javaFS builds an in-memory source tree from path -> content pairs.
func javaFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for p, content := range files {
		fsys[p] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

// analyzeFS runs the full pipeline over files and fails the test on error.
func analyzeFS(t *testing.T, files map[string]string, opts ...Option) *Graph {
	t.Helper()
	g, err := New(opts...).AnalyzeFS(context.Background(), javaFS(files))
	require.NoError(t, err)
	return g
}

// renderDOT serializes g in directed mode.
func renderDOT(t *testing.T, g *Graph) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, g.Records, Directed))
	return buf.String()
}

// targetLabels returns the dependency labels of the record for label.
func targetLabels(t *testing.T, g *Graph, label string) []string {
	t.Helper()
	rec, ok := g.Record(label)
	require.True(t, ok, "no record for %s", label)
	labels := make([]string, 0, len(rec.Dependencies))
	for _, d := range rec.Dependencies {
		labels = append(labels, d.Label())
	}
	return labels
}

// unitsFor builds an inventory from files without running resolution.
func unitsFor(t *testing.T, files map[string]string) []*SourceUnit {
	t.Helper()
	fsys := javaFS(files)
	paths, err := ListSourceFiles(fsys, DefaultExtensions, nil)
	require.NoError(t, err)
	units, err := BuildInventory(context.Background(), fsys, paths, DefaultSyntax, 1)
	require.NoError(t, err)
	return units
}
