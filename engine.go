package depgraph

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Engine runs the analysis pipeline over a source tree.
type Engine struct {
	extensions  []string
	excludeDirs []string
	syntax      Syntax
	workers     int // 0 means runtime.NumCPU()
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithExtensions sets the file extensions (with leading dot) to analyze.
func WithExtensions(exts ...string) Option {
	return func(e *Engine) {
		e.extensions = append([]string(nil), exts...)
	}
}

// WithExcludeDirs skips directories with any of the given names.
func WithExcludeDirs(names ...string) Option {
	return func(e *Engine) {
		e.excludeDirs = append([]string(nil), names...)
	}
}

// WithSyntax overrides the declaration keywords.
func WithSyntax(s Syntax) Option {
	return func(e *Engine) {
		e.syntax = s
	}
}

// WithWorkers bounds the per-unit parallelism of the file-reading stages.
// Stages themselves always run one after another. Use 1 for fully serial
// analysis; 0 uses one worker per CPU.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithLogger sets the structured logger. Stages log at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine. Without options it analyzes DefaultExtensions with
// DefaultSyntax.
func New(opts ...Option) *Engine {
	e := &Engine{
		extensions: DefaultExtensions,
		syntax:     DefaultSyntax,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Analyze builds the dependency graph of the directory tree at root.
func (e *Engine) Analyze(ctx context.Context, root string) (*Graph, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("depgraph: resolve path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("depgraph: directory not found: %s", abs)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("depgraph: not a directory: %s", abs)
	}
	g, err := e.AnalyzeFS(ctx, os.DirFS(abs))
	if err != nil {
		return nil, err
	}
	g.Root = abs
	return g, nil
}

// AnalyzeFS builds the dependency graph of every matching file in fsys.
// Any failure, including a file without a namespace declaration, aborts the
// whole run.
func (e *Engine) AnalyzeFS(ctx context.Context, fsys fs.FS) (*Graph, error) {
	log := e.logger
	scanStart := time.Now()

	paths, err := ListSourceFiles(fsys, e.extensions, e.excludeDirs)
	if err != nil {
		return nil, fmt.Errorf("depgraph: list files: %w", err)
	}
	log.Debug("discovered source files", "files", len(paths), "extensions", e.extensions)

	units, err := BuildInventory(ctx, fsys, paths, e.syntax, e.workers)
	if err != nil {
		return nil, fmt.Errorf("depgraph: inventory: %w", err)
	}
	groups := GroupByNamespace(units)
	log.Debug("built inventory", "units", len(units), "namespaces", len(groups))
	scanDuration := time.Since(scanStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resolveStart := time.Now()

	units = ResolveWildcards(units, groups)
	groups = GroupByNamespace(units)

	records := ResolveExplicit(units, groups)
	log.Debug("resolved explicit dependencies", "edges", countEdges(records))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err = ResolveImplicit(ctx, records, groups, e.workers)
	if err != nil {
		return nil, fmt.Errorf("depgraph: implicit dependencies: %w", err)
	}
	log.Debug("resolved implicit dependencies", "edges", countEdges(records))

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Unit.Label() < records[j].Unit.Label()
	})

	return &Graph{
		Records: records,
		Timings: Timings{
			Scan:    scanDuration,
			Resolve: time.Since(resolveStart),
		},
	}, nil
}

func countEdges(records []DependencyRecord) int {
	n := 0
	for _, r := range records {
		n += len(r.Dependencies)
	}
	return n
}
