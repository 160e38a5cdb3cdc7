package depgraph

import (
	"fmt"
	"io/fs"
)

// SourceUnit is one analyzed file, the atomic node of the graph. Identity is
// the (Namespace, SimpleName) pair.
type SourceUnit struct {
	Path       string   // slash-separated, relative to the analyzed root
	SimpleName string   // file name without extension
	Namespace  string   // first namespace declaration in the file
	RawImports []string // as declared, in file order
	Imports    []string // RawImports until wildcard resolution replaces them
	Size       int64

	fsys fs.FS
}

// Label returns the dotted node label "namespace.name".
func (u *SourceUnit) Label() string {
	return qualify(u.Namespace, u.SimpleName)
}

// Text reads the unit's full file contents.
func (u *SourceUnit) Text() (string, error) {
	if u.fsys == nil {
		return "", fmt.Errorf("read %s: no file system attached", u.Path)
	}
	b, err := fs.ReadFile(u.fsys, u.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", u.Path, err)
	}
	return string(b), nil
}

// withImports returns a shallow copy of u carrying the given imports.
func (u *SourceUnit) withImports(imports []string) *SourceUnit {
	c := *u
	c.Imports = imports
	return &c
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// DependencyKind tags which variant a Dependency holds.
type DependencyKind int

const (
	// Internal dependencies are bound to a SourceUnit of the analyzed tree.
	Internal DependencyKind = iota + 1
	// External dependencies are dotted names that matched no known unit.
	External
)

func (k DependencyKind) String() string {
	switch k {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return fmt.Sprintf("DependencyKind(%d)", int(k))
	}
}

// Dependency is an edge target. Exactly one of Unit (Internal) or Name
// (External) is meaningful, selected by Kind.
type Dependency struct {
	Kind DependencyKind
	Unit *SourceUnit
	Name string

	// Implicit marks internal edges found by text scanning rather than an
	// import declaration.
	Implicit bool
}

// InternalDependency returns an edge bound to u.
func InternalDependency(u *SourceUnit) Dependency {
	return Dependency{Kind: Internal, Unit: u}
}

// ExternalDependency returns an edge to a name outside the analyzed tree.
func ExternalDependency(name string) Dependency {
	return Dependency{Kind: External, Name: name}
}

// Label returns the target label used in the serialized graph.
func (d Dependency) Label() string {
	switch d.Kind {
	case Internal:
		return d.Unit.Label()
	case External:
		return d.Name
	default:
		return ""
	}
}

// dependencyKey identifies a dependency target. Internal targets compare by
// unit identity, external ones by their literal name.
type dependencyKey struct {
	unit *SourceUnit
	name string
}

func (d Dependency) key() dependencyKey {
	if d.Kind == Internal {
		return dependencyKey{unit: d.Unit}
	}
	return dependencyKey{name: d.Name}
}

// DependencyRecord pairs a unit with its ordered, duplicate-free edges.
type DependencyRecord struct {
	Unit         *SourceUnit
	Dependencies []Dependency
}

// add appends deps that are not already present, keeping order.
func (r *DependencyRecord) add(deps ...Dependency) {
	seen := make(map[dependencyKey]bool, len(r.Dependencies)+len(deps))
	for _, d := range r.Dependencies {
		seen[d.key()] = true
	}
	for _, d := range deps {
		k := d.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		r.Dependencies = append(r.Dependencies, d)
	}
}
