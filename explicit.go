package depgraph

import "strings"

// ResolveExplicit binds every resolved import of every unit. Imports that
// name a known unit become internal dependencies; everything else is kept
// verbatim as an external dependency. A unit importing itself (typically
// through a wildcard on its own namespace) gets no self edge.
func ResolveExplicit(units []*SourceUnit, groups NamespaceGroups) []DependencyRecord {
	records := make([]DependencyRecord, len(units))
	for i, u := range units {
		rec := DependencyRecord{Unit: u}
		for _, imp := range u.Imports {
			d := resolveImport(imp, groups)
			if d.Kind == Internal && d.Unit == u {
				continue
			}
			rec.add(d)
		}
		records[i] = rec
	}
	return records
}

// resolveImport maps one import to exactly one dependency.
func resolveImport(imp string, groups NamespaceGroups) Dependency {
	var namespace, name string
	if i := strings.LastIndex(imp, "."); i >= 0 {
		namespace, name = imp[:i], imp[i+1:]
	} else {
		name = imp
	}
	if namespace != "" {
		if u := groups.Find(namespace, name); u != nil {
			return InternalDependency(u)
		}
	}
	return ExternalDependency(imp)
}
