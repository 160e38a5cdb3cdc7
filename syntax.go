package depgraph

import (
	"path"
	"strings"
)

// Syntax describes the keywords used to recognize declarations.
type Syntax struct {
	NamespaceKeyword string
	ImportKeyword    string
	Terminator       string
	// ImportModifiers are words dropped from the front of an import, such
	// as Java's "static".
	ImportModifiers []string
}

// DefaultSyntax matches Java, Kotlin, Groovy and Scala sources.
var DefaultSyntax = Syntax{
	NamespaceKeyword: "package",
	ImportKeyword:    "import",
	Terminator:       ";",
	ImportModifiers:  []string{"static"},
}

// DefaultExtensions are the file extensions analyzed when none are configured.
var DefaultExtensions = []string{".java", ".kt"}

// wildcardSuffix marks an import of a whole namespace.
const wildcardSuffix = ".*"

// namespaceOf returns the declared namespace if line declares one.
func (s Syntax) namespaceOf(line string) (string, bool) {
	return s.declaration(line, s.NamespaceKeyword)
}

// importOf returns the imported name if line is an import.
func (s Syntax) importOf(line string) (string, bool) {
	imp, ok := s.declaration(line, s.ImportKeyword)
	if !ok {
		return "", false
	}
	for _, mod := range s.ImportModifiers {
		if rest, found := strings.CutPrefix(imp, mod); found && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
			imp = strings.TrimSpace(rest)
			break
		}
	}
	return imp, true
}

// declaration matches lines that begin with keyword followed by whitespace and
// returns the rest with the statement terminator (and anything after it)
// removed.
func (s Syntax) declaration(line, keyword string) (string, bool) {
	if keyword == "" || !strings.HasPrefix(line, keyword) {
		return "", false
	}
	rest := line[len(keyword):]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	if s.Terminator != "" {
		if i := strings.Index(rest, s.Terminator); i >= 0 {
			rest = rest[:i]
		}
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}

// hasExtension reports whether name ends with one of exts (case-insensitive).
func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// simpleName strips the directory and extension from a slash path.
func simpleName(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
