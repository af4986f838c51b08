package compare

import (
	"fmt"
	"sort"
	"strings"
)

// SourceMultiple marks a mismatch whose export value came from the merged
// view rather than a single export file.
const SourceMultiple = "multiple"

// MismatchValue is one locale-level mismatch within a key.
type MismatchValue struct {
	// Override is the term customizer value.
	Override string `json:"override"`
	// Export is the resolved export value it was compared against.
	Export string `json:"export"`
	// SourceFile is the export file path the value was resolved from, or
	// SourceMultiple when the merged view was used.
	SourceFile string `json:"source_file"`
}

// Mismatch records all mismatching locales for one key.
type Mismatch struct {
	// Key is the translation key.
	Key string `json:"key"`
	// ExportSource is the canonical merged source text for the key.
	ExportSource string `json:"export_source"`
	// ExportTarget is the canonical merged target text for the key.
	ExportTarget string `json:"export_target"`
	// Values maps locale to its mismatch details.
	Values map[string]MismatchValue `json:"values"`
}

// Result is the immutable snapshot produced by one reconciliation pass.
// It is rebuilt wholesale on every call; nothing in it is patched
// incrementally afterwards.
type Result struct {
	// RunID identifies this reconciliation pass in logs.
	RunID string `json:"run_id"`
	// Policy is the matching policy the pass ran under.
	Policy Policy `json:"policy"`
	// Combined maps key to its merged mismatch record across all override
	// files. A key mismatched in several files appears once, with the
	// union of mismatching locales (later file wins per locale).
	Combined map[string]*Mismatch `json:"combined"`
	// PerFile maps override file path to that file's own mismatch records.
	PerFile map[string]map[string]*Mismatch `json:"per_file"`
	// Deletions lists keys present in override data but absent from the
	// canonical export view, sorted.
	Deletions []string `json:"deletions"`
}

// MismatchedPairs counts the key/locale pairs across all per-file records.
func (r *Result) MismatchedPairs() int {
	total := 0
	for _, mismatches := range r.PerFile {
		for _, m := range mismatches {
			total += len(m.Values)
		}
	}
	return total
}

// SortedKeys returns the combined mismatch keys in sorted order.
func (r *Result) SortedKeys() []string {
	keys := make([]string, 0, len(r.Combined))
	for key := range r.Combined {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LocaleMismatchError reports override locales that match no export file's
// declared source or target locale. It aborts the whole reconciliation
// before any per-key work; no partial results are produced.
type LocaleMismatchError struct {
	// Unmatched lists the offending override locales, sorted.
	Unmatched []string
	// SourceLocales lists all declared export source locales, sorted.
	SourceLocales []string
	// TargetLocales lists all declared export target locales, sorted.
	TargetLocales []string
}

func (e *LocaleMismatchError) Error() string {
	return fmt.Sprintf(
		"locale mismatch: override locales [%s] match no export locale (sources: [%s], targets: [%s])",
		strings.Join(e.Unmatched, ", "),
		strings.Join(e.SourceLocales, ", "),
		strings.Join(e.TargetLocales, ", "),
	)
}
