package store

import (
	"database/sql"
	"fmt"
)

// CommitBatch inserts all buffered data from a Batch within a single
// transaction. Fake (negative) unit IDs are remapped to the real IDs SQLite
// assigns, and every reference within the batch is rewritten.
//
// Insert order respects FK dependencies:
//  1. Units
//  2. Imports (depend on unit_id)
//  3. Dependencies (depend on unit_id, target_unit_id)
func (s *Store) CommitBatch(batch *Batch) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("commit batch: begin: %w", err)
	}
	defer tx.Rollback()

	fakeToReal := make(map[int64]int64, len(batch.Units))
	realID := func(id int64) int64 {
		if id < 0 {
			return fakeToReal[id]
		}
		return id
	}

	for _, u := range batch.Units {
		id, err := insertUnitTx(tx, &u)
		if err != nil {
			return fmt.Errorf("commit batch: unit %q: %w", u.Label(), err)
		}
		fakeToReal[u.ID] = id
	}

	for _, imp := range batch.Imports {
		imp.UnitID = realID(imp.UnitID)
		if _, err := insertImportTx(tx, &imp); err != nil {
			return fmt.Errorf("commit batch: import %q: %w", imp.Source, err)
		}
	}

	for _, dep := range batch.Dependencies {
		dep.UnitID = realID(dep.UnitID)
		if dep.TargetUnitID != nil {
			target := realID(*dep.TargetUnitID)
			dep.TargetUnitID = &target
		}
		if _, err := insertDependencyTx(tx, &dep); err != nil {
			return fmt.Errorf("commit batch: dependency %q: %w", dep.Target, err)
		}
	}

	return tx.Commit()
}

// --- Transaction-scoped insert helpers ---

func insertUnitTx(tx *sql.Tx, u *Unit) (int64, error) {
	res, err := tx.Exec(
		"INSERT INTO units (namespace, name, path, size) VALUES (?, ?, ?, ?)",
		u.Namespace, u.Name, u.Path, u.Size,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func insertImportTx(tx *sql.Tx, imp *Import) (int64, error) {
	res, err := tx.Exec(
		"INSERT INTO imports (unit_id, source, kind, ordinal) VALUES (?, ?, ?, ?)",
		imp.UnitID, imp.Source, imp.Kind, imp.Ordinal,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func insertDependencyTx(tx *sql.Tx, dep *Dependency) (int64, error) {
	res, err := tx.Exec(
		`INSERT INTO dependencies (unit_id, kind, target_unit_id, target, implicit, ordinal)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		dep.UnitID, dep.Kind, dep.TargetUnitID, dep.Target, dep.Implicit, dep.Ordinal,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
