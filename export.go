package depgraph

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jward/depgraph/internal/store"
)

// ExportSQLite writes g to a fresh SQLite database at dbPath. An existing
// file at dbPath is replaced; exports never accumulate across runs.
func ExportSQLite(dbPath string, g *Graph) error {
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("depgraph: remove old export: %w", err)
		}
	}

	s, err := store.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("depgraph: create store: %w", err)
	}
	defer s.Close()
	if err := s.Migrate(); err != nil {
		return fmt.Errorf("depgraph: migrate: %w", err)
	}

	if err := s.CommitBatch(graphBatch(g)); err != nil {
		return fmt.Errorf("depgraph: export: %w", err)
	}

	meta := map[string]string{
		"root":        g.Root,
		"units":       strconv.Itoa(len(g.Records)),
		"exported_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if err := s.SetMetadata(k, v); err != nil {
			return fmt.Errorf("depgraph: export: %w", err)
		}
	}
	return nil
}

// graphBatch converts a graph into a store batch. Every unit is added before
// any edge so internal targets always have a (fake) ID.
func graphBatch(g *Graph) *store.Batch {
	b := store.NewBatch()
	ids := make(map[*SourceUnit]int64, len(g.Records))
	for _, r := range g.Records {
		ids[r.Unit] = b.AddUnit(store.Unit{
			Namespace: r.Unit.Namespace,
			Name:      r.Unit.SimpleName,
			Path:      r.Unit.Path,
			Size:      r.Unit.Size,
		})
	}

	for _, r := range g.Records {
		id := ids[r.Unit]
		for i, src := range r.Unit.RawImports {
			b.AddImport(store.Import{UnitID: id, Source: src, Kind: store.ImportRaw, Ordinal: i})
		}
		for i, src := range r.Unit.Imports {
			b.AddImport(store.Import{UnitID: id, Source: src, Kind: store.ImportResolved, Ordinal: i})
		}
		for i, d := range r.Dependencies {
			dep := store.Dependency{
				UnitID:   id,
				Target:   d.Label(),
				Implicit: d.Implicit,
				Ordinal:  i,
			}
			switch d.Kind {
			case Internal:
				dep.Kind = store.KindInternal
				if target, ok := ids[d.Unit]; ok {
					dep.TargetUnitID = &target
				}
			case External:
				dep.Kind = store.KindExternal
			}
			b.AddDependency(dep)
		}
	}
	return b
}
