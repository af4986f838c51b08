package locfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// ExportEntry is one translation unit from an export file.
type ExportEntry struct {
	// Source is the source-language text (may be empty).
	Source string
	// Target is the target-language text (may be empty).
	Target string
}

// ExportFile is one parsed translation export (XLIFF-origin) document.
type ExportFile struct {
	// Path is the file the data was loaded from.
	Path string
	// SourceLocale is the declared source language, lowercased.
	SourceLocale string
	// TargetLocale is the declared target language, lowercased.
	TargetLocale string
	// Entries maps translation keys to their source/target texts.
	// Keys are unique within one file.
	Entries map[string]ExportEntry
}

// LoadExportFile parses an XLIFF document and extracts its translation data.
//
// The file-level source-language and target-language attributes are read
// from the first <file> element and lowercased; source-language defaults to
// "en" when absent. Each <trans-unit> contributes one entry keyed by its
// resname attribute; units without a resname are skipped.
func LoadExportFile(path string) (*ExportFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse export file %s: %w", path, err)
	}

	out := &ExportFile{
		Path:         path,
		SourceLocale: "en",
		Entries:      make(map[string]ExportEntry),
	}

	if fileElem := xmlquery.FindOne(doc, "//file"); fileElem != nil {
		if v := fileElem.SelectAttr("source-language"); v != "" {
			out.SourceLocale = strings.ToLower(v)
		}
		out.TargetLocale = strings.ToLower(fileElem.SelectAttr("target-language"))
	}

	for _, unit := range xmlquery.Find(doc, "//trans-unit") {
		key := unit.SelectAttr("resname")
		if key == "" {
			continue
		}

		var entry ExportEntry
		if src := xmlquery.FindOne(unit, "source"); src != nil {
			entry.Source = src.InnerText()
		}
		if tgt := xmlquery.FindOne(unit, "target"); tgt != nil {
			entry.Target = tgt.InnerText()
		}
		out.Entries[key] = entry
	}

	return out, nil
}

// ValueForLocale returns the entry text matching the given locale by declared
// role, comparing case-insensitively. The second return reports whether the
// locale matches either role at all.
func (f *ExportFile) ValueForLocale(key, locale string) (string, bool) {
	entry, ok := f.Entries[key]
	if !ok {
		return "", false
	}
	switch strings.ToLower(locale) {
	case f.SourceLocale:
		return entry.Source, true
	case f.TargetLocale:
		return entry.Target, true
	}
	return "", false
}
