package store

// Dependency kinds stored in dependencies.kind.
const (
	KindInternal = "internal"
	KindExternal = "external"
)

// Import kinds stored in imports.kind.
const (
	ImportRaw      = "raw"
	ImportResolved = "resolved"
)

type Unit struct {
	ID        int64
	Namespace string
	Name      string
	Path      string
	Size      int64
}

// Label returns the dotted "namespace.name" label.
func (u *Unit) Label() string {
	if u.Namespace == "" {
		return u.Name
	}
	return u.Namespace + "." + u.Name
}

type Import struct {
	ID      int64
	UnitID  int64
	Source  string
	Kind    string
	Ordinal int
}

type Dependency struct {
	ID           int64
	UnitID       int64
	Kind         string
	TargetUnitID *int64 // set for internal dependencies
	Target       string // label of the target
	Implicit     bool
	Ordinal      int
}
