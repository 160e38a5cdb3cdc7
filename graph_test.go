package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryFixture(t *testing.T) *Graph {
	t.Helper()
	return analyzeFS(t, map[string]string{
		"a/A.java": "package a;\nimport b.X;\nimport java.util.List;\nclass A { B b; }\n",
		"a/B.java": "package a;\n",
		"b/X.java": "package b;\nimport org.junit.Test;\n",
	})
}

func TestGraph_Edges(t *testing.T) {
	t.Parallel()
	g := summaryFixture(t)
	assert.Equal(t, []Edge{
		{From: "a.A", To: "b.X", Kind: Internal},
		{From: "a.A", To: "java.util.List", Kind: External},
		{From: "a.A", To: "a.B", Kind: Internal},
		{From: "b.X", To: "org.junit.Test", Kind: External},
	}, g.Edges())
}

func TestGraph_Record(t *testing.T) {
	t.Parallel()
	g := summaryFixture(t)
	rec, ok := g.Record("a.B")
	require.True(t, ok)
	assert.Empty(t, rec.Dependencies)

	_, ok = g.Record("a.Missing")
	assert.False(t, ok)
}

func TestGraph_Summary(t *testing.T) {
	t.Parallel()
	g := summaryFixture(t)
	s := g.Summary()

	assert.Equal(t, 3, s.Units)
	assert.Equal(t, 2, s.Namespaces)
	assert.Equal(t, 2, s.InternalEdges)
	assert.Equal(t, 2, s.ExternalEdges)
	assert.Equal(t, 1, s.ImplicitEdges)

	var size uint64
	for _, r := range g.Records {
		size += uint64(r.Unit.Size)
	}
	assert.Equal(t, size, s.BytesScanned)
	assert.NotZero(t, s.BytesScanned)

	assert.Equal(t, []NamespaceSummary{
		{Namespace: "a", Units: 2, InternalEdges: 2, ExternalEdges: 1},
		{Namespace: "b", Units: 1, InternalEdges: 0, ExternalEdges: 1},
	}, s.PerNamespace)
}

func TestGraph_SummaryEmpty(t *testing.T) {
	t.Parallel()
	s := (&Graph{}).Summary()
	assert.Zero(t, s.Units)
	assert.Empty(t, s.PerNamespace)
}
