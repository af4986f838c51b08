package compare

import (
	"sort"
	"strings"

	"translation-manager/core/locfile"
)

// ExportValue is the merged source/target text for one key.
type ExportValue struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// CanonicalView is the file-order-resolved union of all loaded export files.
type CanonicalView struct {
	// Entries maps key to its merged source/target texts.
	Entries map[string]ExportValue
	// SourceLocales is the set of declared source locales, lowercased.
	SourceLocales map[string]struct{}
	// TargetLocales is the set of declared target locales, lowercased.
	TargetLocales map[string]struct{}
}

// BuildCanonicalView merges export files in load order. The first file to
// see a key initializes it; later files only fill slots that are still
// empty (first-non-empty-wins, not last-wins). Merging the same file twice
// therefore cannot change the view.
func BuildCanonicalView(exports []*locfile.ExportFile) *CanonicalView {
	view := &CanonicalView{
		Entries:       make(map[string]ExportValue),
		SourceLocales: make(map[string]struct{}),
		TargetLocales: make(map[string]struct{}),
	}

	for _, file := range exports {
		if file.SourceLocale != "" {
			view.SourceLocales[strings.ToLower(file.SourceLocale)] = struct{}{}
		}
		if file.TargetLocale != "" {
			view.TargetLocales[strings.ToLower(file.TargetLocale)] = struct{}{}
		}

		for key, entry := range file.Entries {
			current, seen := view.Entries[key]
			if !seen {
				view.Entries[key] = ExportValue{Source: entry.Source, Target: entry.Target}
				continue
			}
			if current.Source == "" && entry.Source != "" {
				current.Source = entry.Source
			}
			if current.Target == "" && entry.Target != "" {
				current.Target = entry.Target
			}
			view.Entries[key] = current
		}
	}

	return view
}

// HasSourceLocale reports whether locale matches a declared source locale.
func (v *CanonicalView) HasSourceLocale(locale string) bool {
	_, ok := v.SourceLocales[strings.ToLower(locale)]
	return ok
}

// HasTargetLocale reports whether locale matches a declared target locale.
func (v *CanonicalView) HasTargetLocale(locale string) bool {
	_, ok := v.TargetLocales[strings.ToLower(locale)]
	return ok
}

// SortedSourceLocales returns the declared source locales, sorted.
func (v *CanonicalView) SortedSourceLocales() []string {
	return sortedSet(v.SourceLocales)
}

// SortedTargetLocales returns the declared target locales, sorted.
func (v *CanonicalView) SortedTargetLocales() []string {
	return sortedSet(v.TargetLocales)
}

// CombinedOverrides merges override files in load order at (key, locale)
// granularity; later files overwrite earlier ones. This combined view backs
// locale discovery and deletion-set computation, while per-file maps stay
// untouched for per-file mismatch computation.
func CombinedOverrides(overrides []*locfile.OverrideFile) map[string]map[string]string {
	combined := make(map[string]map[string]string)
	for _, file := range overrides {
		for key, locales := range file.Entries {
			if _, ok := combined[key]; !ok {
				combined[key] = make(map[string]string, len(locales))
			}
			for locale, value := range locales {
				combined[key][locale] = value
			}
		}
	}
	return combined
}

// OverrideLocales returns the union of locales across all override files.
func OverrideLocales(overrides []*locfile.OverrideFile) map[string]struct{} {
	union := make(map[string]struct{})
	for _, file := range overrides {
		for locale := range file.Locales {
			union[locale] = struct{}{}
		}
	}
	return union
}

// OverrideKeys returns the union of keys across all override files.
func OverrideKeys(overrides []*locfile.OverrideFile) map[string]struct{} {
	union := make(map[string]struct{})
	for _, file := range overrides {
		for key := range file.Entries {
			union[key] = struct{}{}
		}
	}
	return union
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
