package depgraph

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputPath returns "<destination>/<basename(source)>-class-diagram.gv".
func OutputPath(source, destination string) string {
	base := filepath.Base(filepath.Clean(source))
	if abs, err := filepath.Abs(source); err == nil {
		base = filepath.Base(abs)
	}
	return filepath.Join(destination, base+"-class-diagram.gv")
}

// WriteGraphFile renders g into path, creating the parent directory if
// needed.
func WriteGraphFile(path string, g *Graph, mode Mode) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("depgraph: create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("depgraph: create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("depgraph: close output: %w", cerr)
		}
	}()
	if err := WriteDOT(f, g.Records, mode); err != nil {
		return fmt.Errorf("depgraph: %w", err)
	}
	return nil
}
