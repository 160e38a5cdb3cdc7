package depgraph

import (
	"errors"
	"fmt"
)

// ErrMissingNamespaceDeclaration reports a candidate file without a namespace
// line. It aborts the whole analysis.
var ErrMissingNamespaceDeclaration = errors.New("missing namespace declaration")

// MissingNamespaceError carries the offending file. It matches
// ErrMissingNamespaceDeclaration under errors.Is.
type MissingNamespaceError struct {
	Path    string
	Keyword string
}

func (e *MissingNamespaceError) Error() string {
	return fmt.Sprintf("%s: %s (no line starting with %q)", e.Path, ErrMissingNamespaceDeclaration, e.Keyword)
}

func (e *MissingNamespaceError) Unwrap() error {
	return ErrMissingNamespaceDeclaration
}
