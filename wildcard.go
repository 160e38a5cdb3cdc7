package depgraph

import "strings"

// ResolveWildcards returns new units whose imports contain no wildcard
// suffix. An import "p.*" where p is a known namespace expands to one import
// per member of p. Otherwise the prefix p is kept as a single opaque import:
// this is usually a static-member import of a single class, which line
// scanning cannot tell apart from an unknown namespace. Resolved imports are
// de-duplicated, keeping first occurrence order.
func ResolveWildcards(units []*SourceUnit, groups NamespaceGroups) []*SourceUnit {
	out := make([]*SourceUnit, len(units))
	for i, u := range units {
		out[i] = u.withImports(resolveImports(u.Imports, groups))
	}
	return out
}

func resolveImports(imports []string, groups NamespaceGroups) []string {
	var resolved []string
	seen := make(map[string]bool, len(imports))
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			resolved = append(resolved, s)
		}
	}

	for _, imp := range imports {
		prefix, ok := strings.CutSuffix(imp, wildcardSuffix)
		if !ok {
			add(imp)
			continue
		}
		members, known := groups[prefix]
		if !known {
			add(prefix)
			continue
		}
		for _, m := range members {
			add(m.Label())
		}
	}
	return resolved
}
