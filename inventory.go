package depgraph

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
)

// BuildInventory reads each path from fsys and turns it into a SourceUnit.
// A file without a namespace line fails the whole inventory with a
// *MissingNamespaceError. Units are returned in the order of paths.
func BuildInventory(ctx context.Context, fsys fs.FS, paths []string, syntax Syntax, workers int) ([]*SourceUnit, error) {
	units := make([]*SourceUnit, len(paths))
	err := forEach(ctx, len(paths), workers, func(i int) error {
		u, err := scanUnit(fsys, paths[i], syntax)
		if err != nil {
			return err
		}
		units[i] = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

// scanUnit extracts the namespace and raw imports from one file.
func scanUnit(fsys fs.FS, p string, syntax Syntax) (*SourceUnit, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	u := &SourceUnit{
		Path:       p,
		SimpleName: simpleName(p),
		Size:       int64(len(content)),
		fsys:       fsys,
	}
	found := false
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if !found {
			if ns, ok := syntax.namespaceOf(line); ok {
				u.Namespace = ns
				found = true
				continue
			}
		}
		if imp, ok := syntax.importOf(line); ok {
			u.RawImports = append(u.RawImports, imp)
		}
	}
	u.Imports = u.RawImports
	if !found {
		return nil, &MissingNamespaceError{Path: p, Keyword: syntax.NamespaceKeyword}
	}
	return u, nil
}
