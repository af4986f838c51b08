package grammar

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"translation-manager/core/locfile"
)

// CollectExportEntries selects the entries of an export file whose value
// matches language by declared role (source or target). Empty values are
// skipped; they have nothing to correct.
func CollectExportEntries(file *locfile.ExportFile, language string) []Entry {
	language = strings.ToLower(language)
	var entries []Entry
	for key := range file.Entries {
		value, ok := file.ValueForLocale(key, language)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		entries = append(entries, Entry{Key: key, Locale: language, Value: value})
	}
	sortEntries(entries)
	return entries
}

// CollectOverrideEntries selects an override file's non-empty values for
// the given locale.
func CollectOverrideEntries(file *locfile.OverrideFile, language string) []Entry {
	language = strings.ToLower(language)
	var entries []Entry
	for key, locales := range file.Entries {
		value, ok := locales[language]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		entries = append(entries, Entry{Key: key, Locale: language, Value: value})
	}
	sortEntries(entries)
	return entries
}

// SaveCorrections writes each file's accepted corrections as a new
// override table next to the source file, named
// {base}_{suffix}_{timestamp}.csv with collision avoidance. Source files
// are never modified.
func SaveCorrections(report *Report, suffix string) ([]string, error) {
	paths := make([]string, 0, len(report.Corrections))
	for path := range report.Corrections {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var saved []string
	for _, path := range paths {
		dir := filepath.Dir(path)
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name := locfile.TimestampedName(base, suffix, ".csv")
		outPath := locfile.UniquePath(filepath.Join(dir, name))

		rows := make([]locfile.Row, 0, len(report.Corrections[path]))
		for _, correction := range report.Corrections[path] {
			rows = append(rows, locfile.Row{
				Locale: correction.Locale,
				Key:    correction.Key,
				Value:  correction.Corrected,
			})
		}
		if err := locfile.WriteRows(outPath, rows, false); err != nil {
			return saved, fmt.Errorf("failed to save %s: %w", outPath, err)
		}
		saved = append(saved, outPath)
	}
	return saved, nil
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
}
