package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jward/depgraph"
)

// formatUnitsText formats CLIUnit results as a table.
func formatUnitsText(w io.Writer, units []CLIUnit) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Label", "Path"})
	for _, u := range units {
		t.AppendRow(table.Row{u.Label, u.Path})
	}
	t.Render()
}

// formatEdgesText formats CLIEdge results as a table.
func formatEdgesText(w io.Writer, edges []CLIEdge) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Target", "Kind", "Implicit"})
	for _, e := range edges {
		implicit := ""
		if e.Implicit {
			implicit = "yes"
		}
		t.AppendRow(table.Row{e.Target, e.Kind, implicit})
	}
	t.Render()
}

// formatSummaryText prints graph totals followed by a per-namespace table.
func formatSummaryText(w io.Writer, s depgraph.Summary) {
	fmt.Fprintf(w, "Units: %d in %d namespaces (%s scanned)\n",
		s.Units, s.Namespaces, humanize.Bytes(s.BytesScanned))
	fmt.Fprintf(w, "Edges: %d internal (%d implicit), %d external\n",
		s.InternalEdges, s.ImplicitEdges, s.ExternalEdges)

	if len(s.PerNamespace) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Namespace", "Units", "Internal", "External"})
	for _, ns := range s.PerNamespace {
		t.AppendRow(table.Row{ns.Namespace, ns.Units, ns.InternalEdges, ns.ExternalEdges})
	}
	t.AppendFooter(table.Row{"Total", s.Units, s.InternalEdges, s.ExternalEdges})
	t.Render()
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case []CLIUnit:
		formatUnitsText(w, v)
	case []CLIEdge:
		formatEdgesText(w, v)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
