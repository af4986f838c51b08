package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// ordinalPrefix matches leading numbering like "1. ", "2: ", or "3 " that
// models add despite instructions.
var ordinalPrefix = regexp.MustCompile(`^\d+[.:]?\s*`)

// ParseResponse splits a batch response into one corrected entry per
// non-empty line, stripping ordinal prefixes. A returned line count that
// differs from expected is a hard failure for the batch.
func ParseResponse(text string, expected int) ([]string, error) {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, ordinalPrefix.ReplaceAllString(line, ""))
	}
	if len(entries) != expected {
		return nil, fmt.Errorf("expected %d corrections, got %d", expected, len(entries))
	}
	return entries, nil
}
