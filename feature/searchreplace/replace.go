package searchreplace

import (
	"regexp"
	"strings"
)

// Options controls how search terms match.
type Options struct {
	// CaseSensitive disables case folding during matching.
	CaseSensitive bool
	// WholeWord only matches the term at word boundaries.
	WholeWord bool
}

// Matches reports whether text contains the search term under the options.
func (o Options) Matches(text, term string) bool {
	if text == "" {
		return false
	}
	if o.WholeWord {
		return o.wordPattern(term).MatchString(text)
	}
	if o.CaseSensitive {
		return strings.Contains(text, term)
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// Replace substitutes every occurrence of search in text under the options.
func (o Options) Replace(text, search, replace string) string {
	if o.WholeWord {
		return o.wordPattern(search).ReplaceAllString(text, replace)
	}
	if o.CaseSensitive {
		return strings.ReplaceAll(text, search, replace)
	}
	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(search))
	return pattern.ReplaceAllString(text, replace)
}

func (o Options) wordPattern(term string) *regexp.Regexp {
	expr := `\b` + regexp.QuoteMeta(term) + `\b`
	if !o.CaseSensitive {
		expr = "(?i)" + expr
	}
	return regexp.MustCompile(expr)
}
