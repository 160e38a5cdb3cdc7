package depgraph

import (
	"fmt"
	"io/fs"
)

// ListSourceFiles walks fsys and returns every regular file whose extension
// is one of exts, in lexical order. Directories named in excludeDirs are
// skipped entirely.
func ListSourceFiles(fsys fs.FS, exts []string, excludeDirs []string) ([]string, error) {
	skip := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		skip[d] = true
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && skip[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if hasExtension(p, exts) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	return paths, nil
}
