package searchreplace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"translation-manager/core/locfile"
)

// Change is one planned replacement of a key/locale value.
type Change struct {
	Key    string
	Locale string
	Old    string
	New    string
}

// Preview maps source file paths to their planned replacements.
type Preview map[string][]Change

// TotalChanges counts planned replacements across all files.
func (p Preview) TotalChanges() int {
	total := 0
	for _, changes := range p {
		total += len(changes)
	}
	return total
}

// PreviewOverrides scans override files for the given locale and returns
// the replacements that would be applied. Values that match but come out
// unchanged (e.g. replacing a term with itself in another case under
// case-insensitive matching) are not listed.
func PreviewOverrides(files []*locfile.OverrideFile, locale, search, replace string, opts Options) Preview {
	preview := make(Preview)
	for _, file := range files {
		var changes []Change
		for key, locales := range file.Entries {
			value, ok := locales[locale]
			if !ok || value == "" {
				continue
			}
			if !opts.Matches(value, search) {
				continue
			}
			updated := opts.Replace(value, search, replace)
			if updated == value {
				continue
			}
			changes = append(changes, Change{Key: key, Locale: locale, Old: value, New: updated})
		}
		if len(changes) > 0 {
			sortChanges(changes)
			preview[file.Path] = changes
		}
	}
	return preview
}

// PreviewExports scans export files, selecting each key's source or target
// text according to which declared role the locale matches.
func PreviewExports(files []*locfile.ExportFile, locale, search, replace string, opts Options) Preview {
	preview := make(Preview)
	for _, file := range files {
		var changes []Change
		for key := range file.Entries {
			value, ok := file.ValueForLocale(key, locale)
			if !ok || value == "" {
				continue
			}
			if !opts.Matches(value, search) {
				continue
			}
			updated := opts.Replace(value, search, replace)
			if updated == value {
				continue
			}
			changes = append(changes, Change{Key: key, Locale: strings.ToLower(locale), Old: value, New: updated})
		}
		if len(changes) > 0 {
			sortChanges(changes)
			preview[file.Path] = changes
		}
	}
	return preview
}

// Apply writes the previewed replacements as new override tables, one per
// source file, named {base}_replaced_{timestamp}.csv with collision
// avoidance. Input files are never modified. Files written before a
// failure stay on disk.
func Apply(preview Preview) ([]string, error) {
	paths := make([]string, 0, len(preview))
	for path := range preview {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var saved []string
	for _, path := range paths {
		dir := filepath.Dir(path)
		if dir == "" {
			dir, _ = os.Getwd()
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name := locfile.TimestampedName(base, "_replaced", ".csv")
		outPath := locfile.UniquePath(filepath.Join(dir, name))

		rows := make([]locfile.Row, 0, len(preview[path]))
		for _, change := range preview[path] {
			rows = append(rows, locfile.Row{Locale: change.Locale, Key: change.Key, Value: change.New})
		}
		if err := locfile.WriteRows(outPath, rows, false); err != nil {
			return saved, fmt.Errorf("failed to save %s: %w", outPath, err)
		}
		saved = append(saved, outPath)
	}
	return saved, nil
}

func sortChanges(changes []Change) {
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Key != changes[j].Key {
			return changes[i].Key < changes[j].Key
		}
		return changes[i].Locale < changes[j].Locale
	})
}
