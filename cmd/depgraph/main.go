package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jward/depgraph"
	"github.com/jward/depgraph/internal/config"
	"github.com/spf13/cobra"
)

// ErrInvalidArguments reports missing or blank required flags.
var ErrInvalidArguments = errors.New("invalid arguments")

var (
	flagSource      string
	flagDestination string
	flagConfig      string
	flagDB          string
	flagMode        string
	flagExtensions  []string
	flagWorkers     int
	flagSummary     bool
	flagVerbose     bool
	flagHelp        bool
	flagFormat      string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	err := rootCmd.Execute()
	if err != nil && !errorHandled {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
	}
	if code := exitCode(err, flagHelp); code != 0 {
		os.Exit(code)
	}
}

// exitCode maps the command outcome to a process status. Usage problems and
// explicit help requests exit with 2, every other failure with 1.
func exitCode(err error, helpRequested bool) int {
	switch {
	case errors.Is(err, ErrInvalidArguments), helpRequested:
		return 2
	case err != nil:
		return 1
	default:
		return 0
	}
}

var rootCmd = &cobra.Command{
	Use:   "depgraph --source <path> --destination <path>",
	Short: "Build a class dependency diagram of a source tree",
	Long: "Scans a Java/Kotlin style source tree, resolves imports, wildcard imports and " +
		"same-package references between files, and writes a Graphviz description to " +
		"<destination>/<source-name>-class-diagram.gv.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.SetOut(os.Stdout)

	rootCmd.PersistentFlags().BoolVarP(&flagHelp, "help", "h", false, "print usage and exit")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .depgraph.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log pipeline progress to stderr")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format for query commands: json|text")

	rootCmd.Flags().StringVar(&flagSource, "source", "", "root directory to analyze (required)")
	rootCmd.Flags().StringVar(&flagDestination, "destination", "", "output directory (required)")
	rootCmd.Flags().StringVar(&flagDB, "db", "", "also export the graph to this SQLite database")
	rootCmd.Flags().StringVar(&flagMode, "mode", config.DefaultGraphMode, "graph mode: directed|undirected")
	rootCmd.Flags().StringSliceVar(&flagExtensions, "extensions", nil, "source file extensions (default .java,.kt)")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel file readers (0 = one per CPU)")
	rootCmd.Flags().BoolVar(&flagSummary, "summary", false, "print a per-namespace summary table")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(configCmd)
}

// validateRequired checks --source and --destination. On failure it prints
// usage to stdout.
func validateRequired(cmd *cobra.Command) error {
	var missing []string
	if strings.TrimSpace(flagSource) == "" {
		missing = append(missing, "--source")
	}
	if strings.TrimSpace(flagDestination) == "" {
		missing = append(missing, "--destination")
	}
	if len(missing) == 0 {
		return nil
	}
	_ = cmd.Usage()
	return fmt.Errorf("%w: %s required", ErrInvalidArguments, strings.Join(missing, " and "))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	if err := validateRequired(cmd); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mode, err := depgraph.ParseMode(cfg.Graph.Mode)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := depgraph.New(
		depgraph.WithExtensions(cfg.Extensions...),
		depgraph.WithExcludeDirs(cfg.ExcludeDirs...),
		depgraph.WithSyntax(depgraph.Syntax{
			NamespaceKeyword: cfg.Syntax.NamespaceKeyword,
			ImportKeyword:    cfg.Syntax.ImportKeyword,
			Terminator:       cfg.Syntax.Terminator,
			ImportModifiers:  cfg.Syntax.ImportModifiers,
		}),
		depgraph.WithWorkers(cfg.Workers),
		depgraph.WithLogger(newLogger()),
	)

	g, err := engine.Analyze(ctx, flagSource)
	if err != nil {
		return fmt.Errorf("analyzing: %w", err)
	}

	outPath := depgraph.OutputPath(flagSource, flagDestination)
	if err := depgraph.WriteGraphFile(outPath, g, mode); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}

	if flagDB != "" {
		if err := depgraph.ExportSQLite(flagDB, g); err != nil {
			return fmt.Errorf("exporting: %w", err)
		}
	}

	// Print timing summary to stderr.
	fmt.Fprintf(os.Stderr, "Analyzed %s in %s (scan: %s, resolve: %s)\n",
		g.Root,
		time.Since(start).Round(time.Millisecond),
		g.Timings.Scan.Round(time.Millisecond),
		g.Timings.Resolve.Round(time.Millisecond),
	)
	if flagDB != "" {
		fmt.Fprintf(os.Stderr, "Database: %s\n", flagDB)
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Class diagram written to %s\n", outPath)

	if flagSummary {
		formatSummaryText(cmd.OutOrStdout(), g.Summary())
	}
	return nil
}

// loadConfig merges the config file with flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("mode") {
		overrides["graph.mode"] = flagMode
	}
	if cmd.Flags().Changed("extensions") {
		overrides["extensions"] = normalizeExtensions(flagExtensions)
	}
	if cmd.Flags().Changed("workers") {
		overrides["workers"] = flagWorkers
	}
	cfg, err := config.LoadConfigWithOverrides(flagConfig, overrides)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// normalizeExtensions trims entries and adds a missing leading dot.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
