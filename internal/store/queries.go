package store

import (
	"database/sql"
	"fmt"
)

const unitColumns = "id, namespace, name, path, size"

func scanUnit(scanner interface{ Scan(...any) error }) (*Unit, error) {
	u := &Unit{}
	if err := scanner.Scan(&u.ID, &u.Namespace, &u.Name, &u.Path, &u.Size); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) queryUnits(query string, args ...any) ([]*Unit, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var units []*Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// Units returns all units ordered by namespace and name.
func (s *Store) Units() ([]*Unit, error) {
	units, err := s.queryUnits("SELECT " + unitColumns + " FROM units ORDER BY namespace, name")
	if err != nil {
		return nil, fmt.Errorf("units: %w", err)
	}
	return units, nil
}

// UnitsByNamespace returns the members of one namespace ordered by name.
func (s *Store) UnitsByNamespace(namespace string) ([]*Unit, error) {
	units, err := s.queryUnits("SELECT "+unitColumns+" FROM units WHERE namespace = ? ORDER BY name", namespace)
	if err != nil {
		return nil, fmt.Errorf("units by namespace: %w", err)
	}
	return units, nil
}

// UnitByLabel looks a unit up by its "namespace.name" label. Returns nil if
// no unit matches.
func (s *Store) UnitByLabel(label string) (*Unit, error) {
	row := s.db.QueryRow(
		"SELECT "+unitColumns+" FROM units WHERE namespace || '.' || name = ?", label,
	)
	u, err := scanUnit(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unit by label: %w", err)
	}
	return u, nil
}

// ImportsByUnit returns the imports of a unit of the given kind, in order.
func (s *Store) ImportsByUnit(unitID int64, kind string) ([]*Import, error) {
	rows, err := s.db.Query(
		"SELECT id, unit_id, source, kind, ordinal FROM imports WHERE unit_id = ? AND kind = ? ORDER BY ordinal",
		unitID, kind,
	)
	if err != nil {
		return nil, fmt.Errorf("imports by unit: %w", err)
	}
	defer rows.Close()
	var imports []*Import
	for rows.Next() {
		imp := &Import{}
		if err := rows.Scan(&imp.ID, &imp.UnitID, &imp.Source, &imp.Kind, &imp.Ordinal); err != nil {
			return nil, fmt.Errorf("scan import: %w", err)
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

// DependenciesByUnit returns the outgoing edges of a unit, in order.
func (s *Store) DependenciesByUnit(unitID int64) ([]*Dependency, error) {
	rows, err := s.db.Query(
		`SELECT id, unit_id, kind, target_unit_id, target, implicit, ordinal
		 FROM dependencies WHERE unit_id = ? ORDER BY ordinal`,
		unitID,
	)
	if err != nil {
		return nil, fmt.Errorf("dependencies by unit: %w", err)
	}
	defer rows.Close()
	var deps []*Dependency
	for rows.Next() {
		d := &Dependency{}
		if err := rows.Scan(&d.ID, &d.UnitID, &d.Kind, &d.TargetUnitID, &d.Target, &d.Implicit, &d.Ordinal); err != nil {
			return nil, fmt.Errorf("scan dependency: %w", err)
		}
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

// DependentsOf returns the units with an internal edge to unitID, ordered by
// namespace and name.
func (s *Store) DependentsOf(unitID int64) ([]*Unit, error) {
	units, err := s.queryUnits(
		`SELECT DISTINCT u.id, u.namespace, u.name, u.path, u.size
		 FROM dependencies d JOIN units u ON u.id = d.unit_id
		 WHERE d.target_unit_id = ?
		 ORDER BY u.namespace, u.name`,
		unitID,
	)
	if err != nil {
		return nil, fmt.Errorf("dependents of: %w", err)
	}
	return units, nil
}

// ExternalDependents returns the units depending on an external target.
func (s *Store) ExternalDependents(target string) ([]*Unit, error) {
	units, err := s.queryUnits(
		`SELECT DISTINCT u.id, u.namespace, u.name, u.path, u.size
		 FROM dependencies d JOIN units u ON u.id = d.unit_id
		 WHERE d.kind = ? AND d.target = ?
		 ORDER BY u.namespace, u.name`,
		KindExternal, target,
	)
	if err != nil {
		return nil, fmt.Errorf("external dependents: %w", err)
	}
	return units, nil
}
