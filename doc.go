// Package depgraph reconstructs the dependency graph between compilation
// units of a package-per-file codebase (Java, Kotlin and friends) and renders
// it as a Graphviz description.
//
// # Pipeline
//
// Analysis is a strictly ordered batch pipeline:
//
//  1. Inventory: every candidate file becomes a [SourceUnit] carrying its
//     declared namespace and raw import lines.
//  2. Grouping: units are partitioned by namespace ([GroupByNamespace]).
//  3. Wildcards: `import a.b.*` is expanded against the known namespaces
//     ([ResolveWildcards]); the grouping is then rebuilt.
//  4. Explicit dependencies: each import is bound to a known unit or kept as
//     an external reference ([ResolveExplicit]).
//  5. Implicit dependencies: units of the same namespace mentioned in a
//     file's text are added without an import ([ResolveImplicit]).
//  6. Serialization: [WriteDOT] renders one adjacency clause per unit.
//
// # Usage
//
//	e := depgraph.New(depgraph.WithExtensions(".java"))
//	g, err := e.Analyze(ctx, "path/to/project")
//	if err != nil { ... }
//	err = depgraph.WriteDOT(w, g.Records, depgraph.Directed)
//
// # Export
//
// [ExportSQLite] writes a graph to a SQLite database which [OpenQuery] can
// later read back to answer dependency and dependent questions.
//
// Scanning is line and token based. There is no parser: a class name that
// only appears inside a comment or string still produces an implicit edge.
package depgraph
