package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"translation-manager/core/locfile"
)

// EditKey addresses one key/locale pair for user-edited values.
type EditKey struct {
	Key    string
	Locale string
}

// SaveOptions controls output composition.
type SaveOptions struct {
	// Suffix is appended to output base names; an underscore is prefixed
	// when missing. Empty means the default suffix per output mode.
	Suffix string
	// Edits overlays user-edited values onto mismatch records by
	// key/locale pair.
	Edits map[EditKey]string
}

// value returns the user edit for a pair if present, else the recorded
// override value.
func (o SaveOptions) value(key, locale string, recorded MismatchValue) string {
	if edited, ok := o.Edits[EditKey{Key: key, Locale: locale}]; ok {
		return edited
	}
	return recorded.Override
}

// SaveIndividual writes one output table per override file that has at
// least one mismatch, next to the source file. Output names derive from
// the source base name plus suffix (default "updated") and a timestamp,
// with numeric collision avoidance.
//
// Files already written before a failure stay on disk; the returned slice
// lists every file actually created.
func SaveIndividual(result *Result, overrides []*locfile.OverrideFile, opts SaveOptions) ([]string, error) {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = "_updated"
	}

	var saved []string
	for _, file := range overrides {
		mismatches := result.PerFile[file.Path]
		if len(mismatches) == 0 {
			continue
		}

		dir := filepath.Dir(file.Path)
		if dir == "" {
			dir, _ = os.Getwd()
		}
		name := locfile.TimestampedName(file.BaseName(), suffix, ".csv")
		outPath := locfile.UniquePath(filepath.Join(dir, name))

		rows := mismatchRows(mismatches, opts)
		if err := locfile.WriteRows(outPath, rows, false); err != nil {
			return saved, fmt.Errorf("failed to save %s: %w", outPath, err)
		}
		saved = append(saved, outPath)
	}

	return saved, nil
}

// SaveMerged writes a single output table across all override files'
// mismatches into dir, deduplicated by (key, locale) keeping the first
// occurrence in file load order.
func SaveMerged(result *Result, overrides []*locfile.OverrideFile, dir string, opts SaveOptions) (string, error) {
	var rows []locfile.Row
	seen := make(map[EditKey]struct{})

	for _, file := range overrides {
		mismatches := result.PerFile[file.Path]
		for _, key := range sortedMismatchKeys(mismatches) {
			record := mismatches[key]
			for _, locale := range sortedValueLocales(record) {
				pair := EditKey{Key: key, Locale: locale}
				if _, ok := seen[pair]; ok {
					continue
				}
				seen[pair] = struct{}{}
				rows = append(rows, locfile.Row{
					Locale: locale,
					Key:    key,
					Value:  opts.value(key, locale, record.Values[locale]),
				})
			}
		}
	}

	name := locfile.TimestampedName("merged", opts.Suffix, ".csv")
	outPath := locfile.UniquePath(filepath.Join(dir, name))
	if err := locfile.WriteRows(outPath, rows, false); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", outPath, err)
	}
	return outPath, nil
}

// ExportDeletedKeys dumps every (key, locale, value) triple for keys in the
// deletion set, pulled from the per-file override maps. A key present in
// several files contributes rows from each. Returns the path actually
// written and the row count.
func ExportDeletedKeys(result *Result, overrides []*locfile.OverrideFile, path string) (string, int, error) {
	var rows []locfile.Row
	for _, key := range result.Deletions {
		for _, file := range overrides {
			locales, ok := file.Entries[key]
			if !ok {
				continue
			}
			for _, locale := range sortedLocaleKeys(locales) {
				rows = append(rows, locfile.Row{
					Key:    key,
					Locale: locale,
					Value:  locales[locale],
				})
			}
		}
	}

	outPath := locfile.UniquePath(path)
	if err := locfile.WriteRows(outPath, rows, true); err != nil {
		return "", 0, fmt.Errorf("failed to export deleted keys: %w", err)
	}
	return outPath, len(rows), nil
}

// mismatchRows flattens one file's mismatch records into output rows,
// sorted by key then locale for reproducible diffs.
func mismatchRows(mismatches map[string]*Mismatch, opts SaveOptions) []locfile.Row {
	var rows []locfile.Row
	for _, key := range sortedMismatchKeys(mismatches) {
		record := mismatches[key]
		for _, locale := range sortedValueLocales(record) {
			rows = append(rows, locfile.Row{
				Locale: locale,
				Key:    key,
				Value:  opts.value(key, locale, record.Values[locale]),
			})
		}
	}
	return rows
}

func sortedMismatchKeys(mismatches map[string]*Mismatch) []string {
	keys := make([]string, 0, len(mismatches))
	for key := range mismatches {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedValueLocales(record *Mismatch) []string {
	locales := make([]string, 0, len(record.Values))
	for locale := range record.Values {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

func sortedLocaleKeys(locales map[string]string) []string {
	out := make([]string, 0, len(locales))
	for locale := range locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}
