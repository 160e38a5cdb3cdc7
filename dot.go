package depgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Mode selects the graph flavour written by WriteDOT.
type Mode string

const (
	// Directed writes a digraph with "->" edges. Dependencies point from the
	// dependent unit to its dependency.
	Directed Mode = "directed"
	// Undirected writes a graph with "--" edges.
	Undirected Mode = "undirected"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Directed, Undirected:
		return m, nil
	default:
		return "", fmt.Errorf("invalid graph mode %q: must be %s or %s", s, Directed, Undirected)
	}
}

func (m Mode) keywords() (block, connector string) {
	if m == Undirected {
		return "graph", "--"
	}
	return "digraph", "->"
}

const dotIndent = "     "

// WriteDOT renders records as a Graphviz description, one grouped adjacency
// clause per record:
//
//	digraph {
//	     "a.Bar" -> { "a.Foo" "java.util.List" }
//	}
//
// Records without dependencies still produce an empty "{ }" clause. Every
// label is quoted.
func WriteDOT(w io.Writer, records []DependencyRecord, mode Mode) error {
	block, connector := mode.keywords()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s {\n", block)
	for _, rec := range records {
		targets := make([]string, len(rec.Dependencies))
		for i, d := range rec.Dependencies {
			targets[i] = quoteLabel(d.Label())
		}
		list := "{ }"
		if len(targets) > 0 {
			list = "{ " + strings.Join(targets, " ") + " }"
		}
		fmt.Fprintf(bw, "%s%s %s %s\n", dotIndent, quoteLabel(rec.Unit.Label()), connector, list)
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoteLabel(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}
