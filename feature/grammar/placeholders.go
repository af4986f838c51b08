package grammar

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern covers the placeholder formats used across the
// localization data. One alternation ordered longest-first, so %{name}
// never also yields a nested {name} and {{count}} never yields {{count}.
var placeholderPattern = regexp.MustCompile(
	`%\{[^}]+\}|\{\{[^}]+\}\}|\{[^}]+\}|%[0-9]+\$[sd]|%[0-9]+[sd]|%[sd]`,
)

// ExtractPlaceholders returns the sorted, deduplicated set of placeholder
// tokens found in text.
func ExtractPlaceholders(text string) []string {
	seen := make(map[string]struct{})
	for _, match := range placeholderPattern.FindAllString(text, -1) {
		seen[match] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for token := range seen {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// PlaceholderError reports a corrected value whose placeholder set no
// longer matches the original's. It is recovered locally by keeping the
// original value; it is never fatal.
type PlaceholderError struct {
	Original  []string
	Corrected []string
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("placeholder mismatch: original [%s], corrected [%s]",
		strings.Join(e.Original, " "), strings.Join(e.Corrected, " "))
}

// ValidatePlaceholders checks that corrected preserves exactly the
// placeholder set of original.
func ValidatePlaceholders(original, corrected string) error {
	origSet := ExtractPlaceholders(original)
	corrSet := ExtractPlaceholders(corrected)
	if len(origSet) != len(corrSet) {
		return &PlaceholderError{Original: origSet, Corrected: corrSet}
	}
	for i := range origSet {
		if origSet[i] != corrSet[i] {
			return &PlaceholderError{Original: origSet, Corrected: corrSet}
		}
	}
	return nil
}
