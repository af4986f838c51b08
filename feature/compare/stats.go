package compare

import (
	"strings"

	"translation-manager/core/locfile"
)

// FileStats holds the per-override-file counters.
type FileStats struct {
	// TotalKeys is the number of distinct keys in the file.
	TotalKeys int `json:"total_keys"`
	// KeysInExport counts the file's keys also present in the export view.
	KeysInExport int `json:"keys_in_export"`
	// KeysOnlyInFile counts the file's keys absent from the export view.
	KeysOnlyInFile int `json:"keys_only_in_file"`
	// MismatchedKeys counts the file's keys with at least one mismatch.
	MismatchedKeys int `json:"mismatched_keys"`
	// MatchingKeys is KeysInExport minus MismatchedKeys, floored at zero.
	MatchingKeys int `json:"matching_keys"`
}

// Statistics is a read-only snapshot derived from one reconciliation pass.
// It is recomputed from current state on every call, never mutated.
type Statistics struct {
	TotalExportKeys    int `json:"total_export_keys"`
	TotalOverrideKeys  int `json:"total_override_keys"`
	KeysInBoth         int `json:"keys_in_both"`
	KeysOnlyInExport   int `json:"keys_only_in_export"`
	KeysOnlyInOverride int `json:"keys_only_in_override"`
	MismatchedKeys     int `json:"mismatched_keys"`
	// MatchingKeys is KeysInBoth minus MismatchedKeys, floored at zero.
	// The floor means MatchingKeys+MismatchedKeys can exceed KeysInBoth
	// when a key mismatches in some files but not others; downstream
	// consumers depend on these exact numbers, so the formula stays.
	MatchingKeys    int `json:"matching_keys"`
	LocalesCompared int `json:"locales_compared"`
	// SourceLocales and TargetLocales are the distinct declared export
	// locale tags, sorted.
	SourceLocales []string `json:"source_locales"`
	TargetLocales []string `json:"target_locales"`
	// PerFile maps override file base names to their counters.
	PerFile map[string]FileStats `json:"per_file"`
}

// SourceLocaleTag returns the declared source locales comma-joined (a
// single tag for the homogeneous case).
func (s Statistics) SourceLocaleTag() string {
	return strings.Join(s.SourceLocales, ", ")
}

// TargetLocaleTag returns the declared target locales comma-joined.
func (s Statistics) TargetLocaleTag() string {
	return strings.Join(s.TargetLocales, ", ")
}

// Calculate derives aggregate and per-file counters from a reconciliation
// result. The only-in-override count is recomputed here from the raw key
// sets and always equals len(result.Deletions).
func Calculate(view *CanonicalView, overrides []*locfile.OverrideFile, result *Result) Statistics {
	overrideKeys := OverrideKeys(overrides)

	stats := Statistics{
		TotalExportKeys:   len(view.Entries),
		TotalOverrideKeys: len(overrideKeys),
		MismatchedKeys:    len(result.Combined),
		LocalesCompared:   len(OverrideLocales(overrides)),
		SourceLocales:     view.SortedSourceLocales(),
		TargetLocales:     view.SortedTargetLocales(),
		PerFile:           make(map[string]FileStats, len(overrides)),
	}

	for key := range overrideKeys {
		if _, ok := view.Entries[key]; ok {
			stats.KeysInBoth++
		} else {
			stats.KeysOnlyInOverride++
		}
	}
	stats.KeysOnlyInExport = stats.TotalExportKeys - stats.KeysInBoth
	stats.MatchingKeys = max(0, stats.KeysInBoth-stats.MismatchedKeys)

	for _, file := range overrides {
		fs := FileStats{
			TotalKeys:      len(file.Entries),
			MismatchedKeys: len(result.PerFile[file.Path]),
		}
		for key := range file.Entries {
			if _, ok := view.Entries[key]; ok {
				fs.KeysInExport++
			} else {
				fs.KeysOnlyInFile++
			}
		}
		fs.MatchingKeys = max(0, fs.KeysInExport-fs.MismatchedKeys)
		stats.PerFile[file.BaseName()] = fs
	}

	return stats
}
