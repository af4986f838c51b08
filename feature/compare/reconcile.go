package compare

import (
	"sort"

	"translation-manager/core/locfile"

	"github.com/google/uuid"
)

// Reconcile computes mismatches between the canonical export view and the
// loaded override files under the given policy. It returns a fresh Result
// snapshot; inputs are never mutated.
//
// The locale precondition is checked once up front: every override locale
// must case-insensitively match some export file's declared source or
// target locale, otherwise a *LocaleMismatchError is returned and no
// per-key work happens. Per-key resolution failures after that point are
// silently skipped (best-effort reconciliation).
func Reconcile(exports []*locfile.ExportFile, overrides []*locfile.OverrideFile, policy Policy) (*Result, error) {
	view := BuildCanonicalView(exports)
	overrideView := CombinedOverrides(overrides)

	var unmatched []string
	for locale := range combinedLocales(overrideView) {
		if !view.HasSourceLocale(locale) && !view.HasTargetLocale(locale) {
			unmatched = append(unmatched, locale)
		}
	}
	if len(unmatched) > 0 {
		sort.Strings(unmatched)
		return nil, &LocaleMismatchError{
			Unmatched:     unmatched,
			SourceLocales: view.SortedSourceLocales(),
			TargetLocales: view.SortedTargetLocales(),
		}
	}

	result := &Result{
		RunID:    uuid.NewString(),
		Policy:   policy,
		Combined: make(map[string]*Mismatch),
		PerFile:  make(map[string]map[string]*Mismatch, len(overrides)),
	}

	for _, file := range overrides {
		fileMismatches := make(map[string]*Mismatch)

		for key, locales := range file.Entries {
			entry, ok := view.Entries[key]
			if !ok {
				// Keys absent from the export view belong to the
				// deletion set, not the mismatch set.
				continue
			}

			entryMismatches := make(map[string]MismatchValue)
			for locale, overrideValue := range locales {
				exportValue, sourceFile, resolved := resolveExportValue(exports, view, key, locale)
				if !resolved {
					continue
				}
				if !policy.ShouldCheck(overrideValue) {
					continue
				}
				if policy.ValuesDiffer(overrideValue, exportValue) {
					entryMismatches[locale] = MismatchValue{
						Override:   overrideValue,
						Export:     exportValue,
						SourceFile: sourceFile,
					}
				}
			}

			if len(entryMismatches) == 0 {
				continue
			}

			record, ok := fileMismatches[key]
			if !ok {
				record = &Mismatch{
					Key:          key,
					ExportSource: entry.Source,
					ExportTarget: entry.Target,
					Values:       make(map[string]MismatchValue),
				}
				fileMismatches[key] = record
			}

			combined, ok := result.Combined[key]
			if !ok {
				combined = &Mismatch{
					Key:          key,
					ExportSource: entry.Source,
					ExportTarget: entry.Target,
					Values:       make(map[string]MismatchValue),
				}
				result.Combined[key] = combined
			}

			// Unconditional overwrite: when several files mismatch the
			// same key/locale, the later-processed file's value wins in
			// the combined record.
			for locale, value := range entryMismatches {
				record.Values[locale] = value
				combined.Values[locale] = value
			}
		}

		result.PerFile[file.Path] = fileMismatches
	}

	result.Deletions = deletionSet(view, overrideView)

	return result, nil
}

// combinedLocales returns the locale union of a combined override view.
// Every override row carries a key, so this equals the per-file locale
// union.
func combinedLocales(combined map[string]map[string]string) map[string]struct{} {
	union := make(map[string]struct{})
	for _, locales := range combined {
		for locale := range locales {
			union[locale] = struct{}{}
		}
	}
	return union
}

// resolveExportValue finds the export value to compare a key/locale pair
// against. It prefers the first loaded export file that both declares the
// locale (as source or target) and contains the key; failing that it falls
// back to the canonical merged value by role inference. The second return
// is the resolved file path, or SourceMultiple for the merged fallback.
func resolveExportValue(exports []*locfile.ExportFile, view *CanonicalView, key, locale string) (string, string, bool) {
	for _, file := range exports {
		if value, ok := file.ValueForLocale(key, locale); ok {
			return value, file.Path, true
		}
	}

	entry := view.Entries[key]
	if view.HasSourceLocale(locale) {
		return entry.Source, SourceMultiple, true
	}
	if view.HasTargetLocale(locale) {
		return entry.Target, SourceMultiple, true
	}
	return "", "", false
}

// deletionSet returns the keys present in combined override data but absent
// from the canonical export view, sorted for reproducible output.
func deletionSet(view *CanonicalView, combined map[string]map[string]string) []string {
	deletions := make([]string, 0)
	for key := range combined {
		if _, ok := view.Entries[key]; !ok {
			deletions = append(deletions, key)
		}
	}
	sort.Strings(deletions)
	return deletions
}
