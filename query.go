package depgraph

import (
	"fmt"
	"os"

	"github.com/jward/depgraph/internal/store"
)

// QueryBuilder answers dependency questions over an exported graph.
type QueryBuilder struct {
	store *store.Store
}

// UnitInfo describes one exported unit.
type UnitInfo struct {
	Label     string
	Namespace string
	Name      string
	Path      string
}

// EdgeInfo describes one outgoing edge of a unit.
type EdgeInfo struct {
	Target   string
	Kind     DependencyKind
	Implicit bool
}

// OpenQuery opens a database written by ExportSQLite.
func OpenQuery(dbPath string) (*QueryBuilder, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("depgraph: database not found: %s", dbPath)
	}
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("depgraph: open store: %w", err)
	}
	return &QueryBuilder{store: s}, nil
}

// Close releases the database.
func (q *QueryBuilder) Close() error {
	return q.store.Close()
}

// Units lists every exported unit ordered by label.
func (q *QueryBuilder) Units() ([]UnitInfo, error) {
	units, err := q.store.Units()
	if err != nil {
		return nil, fmt.Errorf("units: %w", err)
	}
	return unitInfos(units), nil
}

// Dependencies returns the outgoing edges of the unit with the given label.
func (q *QueryBuilder) Dependencies(label string) ([]EdgeInfo, error) {
	u, err := q.lookup(label)
	if err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}
	deps, err := q.store.DependenciesByUnit(u.ID)
	if err != nil {
		return nil, fmt.Errorf("dependencies: %w", err)
	}
	edges := make([]EdgeInfo, 0, len(deps))
	for _, d := range deps {
		kind := External
		if d.Kind == store.KindInternal {
			kind = Internal
		}
		edges = append(edges, EdgeInfo{Target: d.Target, Kind: kind, Implicit: d.Implicit})
	}
	return edges, nil
}

// Dependents returns the units that depend on label. For a unit of the
// analyzed tree these are its internal dependents; any other label is looked
// up as an external target.
func (q *QueryBuilder) Dependents(label string) ([]UnitInfo, error) {
	u, err := q.store.UnitByLabel(label)
	if err != nil {
		return nil, fmt.Errorf("dependents: %w", err)
	}
	var units []*store.Unit
	if u != nil {
		units, err = q.store.DependentsOf(u.ID)
	} else {
		units, err = q.store.ExternalDependents(label)
	}
	if err != nil {
		return nil, fmt.Errorf("dependents: %w", err)
	}
	return unitInfos(units), nil
}

func (q *QueryBuilder) lookup(label string) (*store.Unit, error) {
	u, err := q.store.UnitByLabel(label)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("unknown unit %q", label)
	}
	return u, nil
}

func unitInfos(units []*store.Unit) []UnitInfo {
	out := make([]UnitInfo, 0, len(units))
	for _, u := range units {
		out = append(out, UnitInfo{
			Label:     u.Label(),
			Namespace: u.Namespace,
			Name:      u.Name,
			Path:      u.Path,
		})
	}
	return out
}
