package depgraph

// NamespaceGroups maps a declared namespace to its member units, in the
// order the units were supplied.
type NamespaceGroups map[string][]*SourceUnit

// GroupByNamespace partitions units by declared namespace. It is a pure
// function of its input and is recomputed whenever the unit collection is
// replaced.
func GroupByNamespace(units []*SourceUnit) NamespaceGroups {
	groups := make(NamespaceGroups)
	for _, u := range units {
		groups[u.Namespace] = append(groups[u.Namespace], u)
	}
	return groups
}

// Find returns the member of namespace whose simple name is name, or nil.
func (g NamespaceGroups) Find(namespace, name string) *SourceUnit {
	for _, u := range g[namespace] {
		if u.SimpleName == name {
			return u
		}
	}
	return nil
}
