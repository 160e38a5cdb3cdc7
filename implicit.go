package depgraph

import (
	"context"
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"
)

// ResolveImplicit returns new records extended with units of the same
// namespace whose simple name occurs as a whole token anywhere in the unit's
// text, comments and string literals included. Only the exact namespace is
// searched; sub-namespaces are not siblings. The unit itself is never a
// candidate. Implicit edges follow the explicit ones, sorted by label.
func ResolveImplicit(ctx context.Context, records []DependencyRecord, groups NamespaceGroups, workers int) ([]DependencyRecord, error) {
	out := make([]DependencyRecord, len(records))
	err := forEach(ctx, len(records), workers, func(i int) error {
		rec := DependencyRecord{
			Unit:         records[i].Unit,
			Dependencies: append([]Dependency(nil), records[i].Dependencies...),
		}
		found, err := implicitDependencies(rec.Unit, groups)
		if err != nil {
			return err
		}
		rec.add(found...)
		out[i] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func implicitDependencies(u *SourceUnit, groups NamespaceGroups) ([]Dependency, error) {
	var candidates []*SourceUnit
	for _, m := range groups[u.Namespace] {
		if m != u {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].SimpleName < candidates[j].SimpleName
	})

	text, err := u.Text()
	if err != nil {
		return nil, err
	}
	tokens := identifierTokens(text)

	var deps []Dependency
	for _, c := range candidates {
		if containsToken(text, tokens, c.SimpleName) {
			d := InternalDependency(c)
			d.Implicit = true
			deps = append(deps, d)
		}
	}
	return deps, nil
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// identifierTokens returns the set of maximal identifier runs in text.
func identifierTokens(text string) map[string]bool {
	tokens := make(map[string]bool)
	start := -1
	for i, r := range text {
		if isIdentRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens[text[start:i]] = true
			start = -1
		}
	}
	if start >= 0 {
		tokens[text[start:]] = true
	}
	return tokens
}

// containsToken reports whether name occurs in text bounded by non-identifier
// characters. Names that are themselves identifiers are answered from the
// token set; anything else (file names with dashes, dots) falls back to a
// regular expression.
func containsToken(text string, tokens map[string]bool, name string) bool {
	if name == "" {
		return false
	}
	if isIdentifier(name) {
		return tokens[name]
	}
	re := regexp.MustCompile(`(?:^|[^\p{L}\p{N}_$])` + regexp.QuoteMeta(name) + `(?:[^\p{L}\p{N}_$]|$)`)
	return re.MatchString(text)
}

func isIdentifier(s string) bool {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if !isIdentRune(r) {
			return false
		}
		s = s[size:]
	}
	return true
}
