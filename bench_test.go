package depgraph

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"
)

// benchTree builds namespaces x perNamespace units where every unit imports
// the next namespace by wildcard and mentions two siblings in its body.
func benchTree(namespaces, perNamespace int) fstest.MapFS {
	fsys := fstest.MapFS{}
	for n := range namespaces {
		ns := fmt.Sprintf("com.bench.n%d", n)
		next := fmt.Sprintf("com.bench.n%d", (n+1)%namespaces)
		for u := range perNamespace {
			var b strings.Builder
			fmt.Fprintf(&b, "package %s;\n\n", ns)
			fmt.Fprintf(&b, "import %s.*;\n", next)
			b.WriteString("import java.util.List;\nimport java.util.Map;\n\n")
			fmt.Fprintf(&b, "public class C%d {\n", u)
			fmt.Fprintf(&b, "    private C%d left;\n", (u+1)%perNamespace)
			fmt.Fprintf(&b, "    private C%d right;\n", (u+2)%perNamespace)
			b.WriteString("    public List<String> names() { return null; }\n}\n")
			path := fmt.Sprintf("src/%s/C%d.java", strings.ReplaceAll(ns, ".", "/"), u)
			fsys[path] = &fstest.MapFile{Data: []byte(b.String())}
		}
	}
	return fsys
}

func BenchmarkAnalyzeFS(b *testing.B) {
	fsys := benchTree(20, 25)
	for _, workers := range []int{1, 0} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			e := New(WithWorkers(workers))
			b.ResetTimer()
			for b.Loop() {
				if _, err := e.AnalyzeFS(context.Background(), fsys); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWriteDOT(b *testing.B) {
	g, err := New().AnalyzeFS(context.Background(), benchTree(20, 25))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		if err := WriteDOT(io.Discard, g.Records, Directed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIdentifierTokens(b *testing.B) {
	text := string(benchTree(1, 1)["src/com/bench/n0/C0.java"].Data)
	text = strings.Repeat(text, 50)
	b.SetBytes(int64(len(text)))
	for b.Loop() {
		identifierTokens(text)
	}
}
