package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jward/depgraph"
	"github.com/spf13/cobra"
)

var flagQueryDB string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query a graph exported with --db",
	Long:  "Run queries against a SQLite database written by 'depgraph --db'. Units are addressed by their dotted label, e.g. com.acme.Widget.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		if flagQueryDB == "" {
			_ = cmd.Usage()
			return fmt.Errorf("%w: --db required", ErrInvalidArguments)
		}
		return nil
	},
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List every unit in the graph",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

var depsCmd = &cobra.Command{
	Use:   "deps <label>",
	Short: "List what a unit depends on",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeps,
}

var dependentsCmd = &cobra.Command{
	Use:   "dependents <label>",
	Short: "List the units that depend on a unit or external name",
	Args:  cobra.ExactArgs(1),
	RunE:  runDependents,
}

func init() {
	queryCmd.PersistentFlags().StringVar(&flagQueryDB, "db", "", "SQLite database written by --db (required)")

	queryCmd.AddCommand(unitsCmd)
	queryCmd.AddCommand(depsCmd)
	queryCmd.AddCommand(dependentsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	q, err := depgraph.OpenQuery(flagQueryDB)
	if err != nil {
		return outputError("units", err)
	}
	defer q.Close()

	units, err := q.Units()
	if err != nil {
		return outputError("units", err)
	}
	return outputResult(CLIResult{Command: "units", Results: unitsToCLI(units)})
}

func runDeps(cmd *cobra.Command, args []string) error {
	q, err := depgraph.OpenQuery(flagQueryDB)
	if err != nil {
		return outputError("deps", err)
	}
	defer q.Close()

	edges, err := q.Dependencies(args[0])
	if err != nil {
		return outputError("deps", err)
	}
	out := make([]CLIEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, CLIEdge{Target: e.Target, Kind: e.Kind.String(), Implicit: e.Implicit})
	}
	return outputResult(CLIResult{Command: "deps", Results: out})
}

func runDependents(cmd *cobra.Command, args []string) error {
	q, err := depgraph.OpenQuery(flagQueryDB)
	if err != nil {
		return outputError("dependents", err)
	}
	defer q.Close()

	units, err := q.Dependents(args[0])
	if err != nil {
		return outputError("dependents", err)
	}
	return outputResult(CLIResult{Command: "dependents", Results: unitsToCLI(units)})
}

func unitsToCLI(units []depgraph.UnitInfo) []CLIUnit {
	out := make([]CLIUnit, 0, len(units))
	for _, u := range units {
		out = append(out, CLIUnit{Label: u.Label, Namespace: u.Namespace, Name: u.Name, Path: u.Path})
	}
	return out
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(os.Stdout, result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}
