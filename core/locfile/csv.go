package locfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Row is one (locale, key, value) triple of a delimited override table.
type Row struct {
	Locale string
	Key    string
	Value  string
}

// OverrideFile is one parsed term customizer override table.
type OverrideFile struct {
	// Path is the file the data was loaded from.
	Path string
	// Entries maps key -> locale -> value.
	Entries map[string]map[string]string
	// Locales is the set of locales seen in this file, lowercased.
	Locales map[string]struct{}
}

// BaseName returns the file name without directory or extension.
func (f *OverrideFile) BaseName() string {
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SortedLocales returns the file's locales in sorted order.
func (f *OverrideFile) SortedLocales() []string {
	out := make([]string, 0, len(f.Locales))
	for locale := range f.Locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// LoadOverrideFile reads a semicolon-delimited override table with the named
// columns locale, key, and value. Locales are lowercased on read; rows with
// an empty key or empty locale are discarded.
func LoadOverrideFile(path string) (*OverrideFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open override file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse override file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("override file %s is empty", path)
	}

	// Resolve column positions from the header row.
	cols := map[string]int{}
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"locale", "key", "value"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("override file %s is missing column %q", path, required)
		}
	}

	out := &OverrideFile{
		Path:    path,
		Entries: make(map[string]map[string]string),
		Locales: make(map[string]struct{}),
	}

	field := func(record []string, name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	for _, record := range records[1:] {
		key := field(record, "key")
		locale := strings.ToLower(field(record, "locale"))
		if key == "" || locale == "" {
			continue
		}
		if _, ok := out.Entries[key]; !ok {
			out.Entries[key] = make(map[string]string)
		}
		out.Entries[key][locale] = field(record, "value")
		out.Locales[locale] = struct{}{}
	}

	return out, nil
}

// WriteRows serializes rows to a semicolon-delimited table with a header.
// Column order is controlled by keyFirst: false writes locale;key;value
// (the override table shape), true writes key;locale;value (the
// deleted-keys export shape). The destination file is created, never
// appended to.
func WriteRows(path string, rows []Row, keyFirst bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	header := []string{"locale", "key", "value"}
	if keyFirst {
		header = []string{"key", "locale", "value"}
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.Locale, row.Key, row.Value}
		if keyFirst {
			record = []string{row.Key, row.Locale, row.Value}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return nil
}
