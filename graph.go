package depgraph

import (
	"sort"
	"time"
)

// Graph is the result of one analysis run.
type Graph struct {
	Root    string // absolute root directory, empty for AnalyzeFS
	Records []DependencyRecord
	Timings Timings
}

// Timings records how long each half of the pipeline took.
type Timings struct {
	Scan    time.Duration // discovery and inventory
	Resolve time.Duration // wildcard, explicit and implicit resolution
}

// Edge is one (source, target) label pair.
type Edge struct {
	From string
	To   string
	Kind DependencyKind
}

// Edges flattens the graph into label pairs, in record order.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, r := range g.Records {
		from := r.Unit.Label()
		for _, d := range r.Dependencies {
			edges = append(edges, Edge{From: from, To: d.Label(), Kind: d.Kind})
		}
	}
	return edges
}

// Record returns the record of the unit with the given label.
func (g *Graph) Record(label string) (DependencyRecord, bool) {
	for _, r := range g.Records {
		if r.Unit.Label() == label {
			return r, true
		}
	}
	return DependencyRecord{}, false
}

// Summary aggregates graph statistics.
type Summary struct {
	Units         int
	Namespaces    int
	InternalEdges int
	ExternalEdges int
	ImplicitEdges int // subset of InternalEdges
	BytesScanned  uint64
	PerNamespace  []NamespaceSummary
}

// NamespaceSummary holds per-namespace counts.
type NamespaceSummary struct {
	Namespace     string
	Units         int
	InternalEdges int
	ExternalEdges int
}

// Summary computes statistics over the graph. Namespaces are sorted by name.
func (g *Graph) Summary() Summary {
	var s Summary
	byNS := map[string]*NamespaceSummary{}
	for _, r := range g.Records {
		s.Units++
		s.BytesScanned += uint64(r.Unit.Size)
		ns := byNS[r.Unit.Namespace]
		if ns == nil {
			ns = &NamespaceSummary{Namespace: r.Unit.Namespace}
			byNS[r.Unit.Namespace] = ns
		}
		ns.Units++
		for _, d := range r.Dependencies {
			switch d.Kind {
			case Internal:
				s.InternalEdges++
				ns.InternalEdges++
				if d.Implicit {
					s.ImplicitEdges++
				}
			case External:
				s.ExternalEdges++
				ns.ExternalEdges++
			}
		}
	}
	s.Namespaces = len(byNS)
	for _, ns := range byNS {
		s.PerNamespace = append(s.PerNamespace, *ns)
	}
	sort.Slice(s.PerNamespace, func(i, j int) bool {
		return s.PerNamespace[i].Namespace < s.PerNamespace[j].Namespace
	})
	return s
}
