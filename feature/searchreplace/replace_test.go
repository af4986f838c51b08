package searchreplace

import (
	"path/filepath"
	"testing"

	"translation-manager/core/locfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Matches(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		text string
		term string
		want bool
	}{
		{"case-insensitive default", Options{}, "Hallo Welt", "hallo", true},
		{"case-sensitive miss", Options{CaseSensitive: true}, "Hallo Welt", "hallo", false},
		{"case-sensitive hit", Options{CaseSensitive: true}, "Hallo Welt", "Hallo", true},
		{"substring", Options{}, "Vorstandssitzung", "sitzung", true},
		{"whole word rejects substring", Options{WholeWord: true}, "Vorstandssitzung", "sitzung", false},
		{"whole word hit", Options{WholeWord: true}, "die Sitzung beginnt", "sitzung", true},
		{"whole word case-sensitive", Options{WholeWord: true, CaseSensitive: true}, "die Sitzung beginnt", "sitzung", false},
		{"empty text", Options{}, "", "hallo", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Matches(tt.text, tt.term))
		})
	}
}

func TestOptions_Replace(t *testing.T) {
	assert.Equal(t, "Treffen und treffen",
		Options{CaseSensitive: true}.Replace("Treffen und treffen", "Sitzung", "Treffen"))

	// Case-insensitive replacement hits every casing.
	assert.Equal(t, "Treffen und Treffen",
		Options{}.Replace("Sitzung und sitzung", "sitzung", "Treffen"))

	// Whole-word leaves compounds alone.
	assert.Equal(t, "die Versammlung in der Sitzungspause",
		Options{WholeWord: true}.Replace("die Sitzung in der Sitzungspause", "Sitzung", "Versammlung"))
}

func TestPreviewOverrides(t *testing.T) {
	file := &locfile.OverrideFile{
		Path: "custom.csv",
		Entries: map[string]map[string]string{
			"b_key": {"de": "die Sitzung beginnt"},
			"a_key": {"de": "noch eine Sitzung", "en": "a meeting"},
			"plain": {"de": "nichts zu tun"},
			"empty": {"de": ""},
		},
		Locales: map[string]struct{}{"de": {}, "en": {}},
	}

	preview := PreviewOverrides([]*locfile.OverrideFile{file}, "de", "Sitzung", "Versammlung", Options{})

	require.Contains(t, preview, "custom.csv")
	changes := preview["custom.csv"]
	require.Len(t, changes, 2)
	// Sorted by key.
	assert.Equal(t, "a_key", changes[0].Key)
	assert.Equal(t, "noch eine Versammlung", changes[0].New)
	assert.Equal(t, "b_key", changes[1].Key)
	assert.Equal(t, 2, preview.TotalChanges())
}

func TestPreviewOverrides_IdentityReplacementSkipped(t *testing.T) {
	file := &locfile.OverrideFile{
		Path: "custom.csv",
		Entries: map[string]map[string]string{
			"k": {"de": "Sitzung"},
		},
		Locales: map[string]struct{}{"de": {}},
	}

	// Replacing with the exact same text matches but changes nothing.
	preview := PreviewOverrides([]*locfile.OverrideFile{file}, "de", "Sitzung", "Sitzung", Options{})
	assert.Empty(t, preview)
}

func TestPreviewExports(t *testing.T) {
	file := &locfile.ExportFile{
		Path:         "main.xliff",
		SourceLocale: "en",
		TargetLocale: "de",
		Entries: map[string]locfile.ExportEntry{
			"k1": {Source: "the meeting", Target: "die Sitzung"},
			"k2": {Source: "a meeting room", Target: "ein Raum"},
		},
	}

	preview := PreviewExports([]*locfile.ExportFile{file}, "DE", "Sitzung", "Versammlung", Options{})
	require.Contains(t, preview, "main.xliff")
	require.Len(t, preview["main.xliff"], 1)
	assert.Equal(t, "de", preview["main.xliff"][0].Locale)
	assert.Equal(t, "die Versammlung", preview["main.xliff"][0].New)

	preview = PreviewExports([]*locfile.ExportFile{file}, "en", "meeting", "gathering", Options{})
	require.Len(t, preview["main.xliff"], 2)
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	file := &locfile.OverrideFile{
		Path: filepath.Join(dir, "custom.csv"),
		Entries: map[string]map[string]string{
			"k": {"de": "die Sitzung"},
		},
		Locales: map[string]struct{}{"de": {}},
	}

	preview := PreviewOverrides([]*locfile.OverrideFile{file}, "de", "Sitzung", "Versammlung", Options{})
	saved, err := Apply(preview)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Contains(t, filepath.Base(saved[0]), "custom_replaced_")

	written, err := locfile.LoadOverrideFile(saved[0])
	require.NoError(t, err)
	assert.Equal(t, "die Versammlung", written.Entries["k"]["de"])
}
