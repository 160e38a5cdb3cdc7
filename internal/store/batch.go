package store

// Batch buffers a whole graph in memory before it is committed in one
// transaction. Units get fake (negative) IDs so imports and dependencies can
// refer to them before SQLite assigns real ones.
type Batch struct {
	Units        []Unit
	Imports      []Import
	Dependencies []Dependency

	nextFakeID int64 // starts at -1, decrements
}

// NewBatch creates an empty Batch.
func NewBatch() *Batch {
	return &Batch{nextFakeID: -1}
}

func (b *Batch) allocFakeID() int64 {
	id := b.nextFakeID
	b.nextFakeID--
	return id
}

// AddUnit buffers u and returns its fake ID.
func (b *Batch) AddUnit(u Unit) int64 {
	u.ID = b.allocFakeID()
	b.Units = append(b.Units, u)
	return u.ID
}

// AddImport buffers an import of the unit with the given (fake) ID.
func (b *Batch) AddImport(imp Import) {
	b.Imports = append(b.Imports, imp)
}

// AddDependency buffers a dependency. UnitID and TargetUnitID may be fake.
func (b *Batch) AddDependency(dep Dependency) {
	b.Dependencies = append(b.Dependencies, dep)
}
