package compare

import (
	"testing"

	"translation-manager/core/locfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_CaseSensitivity(t *testing.T) {
	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"greeting": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile("custom.csv", map[string]map[string]string{
			"greeting": {"en": "hello"},
		}),
	}

	insensitive, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)
	assert.Empty(t, insensitive.Combined)

	sensitive, err := Reconcile(exports, overrides, Policy{CaseSensitive: true})
	require.NoError(t, err)
	require.Contains(t, sensitive.Combined, "greeting")

	value := sensitive.Combined["greeting"].Values["en"]
	assert.Equal(t, "hello", value.Override)
	assert.Equal(t, "Hello", value.Export)
	assert.Equal(t, "main.xliff", value.SourceFile)
}

func TestReconcile_OrphanKeysGoToDeletions(t *testing.T) {
	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"kept": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile("custom.csv", map[string]map[string]string{
			"zebra":  {"de": "weg"},
			"absent": {"en": "gone"},
			"kept":   {"en": "Hello"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	assert.Empty(t, result.Combined)
	assert.Equal(t, []string{"absent", "zebra"}, result.Deletions)
}

func TestReconcile_LocaleMismatchAborts(t *testing.T) {
	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"greeting": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile("custom.csv", map[string]map[string]string{
			"greeting": {"fr": "Bonjour"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	assert.Nil(t, result)

	var localeErr *LocaleMismatchError
	require.ErrorAs(t, err, &localeErr)
	assert.Equal(t, []string{"fr"}, localeErr.Unmatched)
	assert.Equal(t, []string{"en"}, localeErr.SourceLocales)
	assert.Equal(t, []string{"de"}, localeErr.TargetLocales)
}

func TestReconcile_CombinedViewSpansFiles(t *testing.T) {
	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"kept": {Source: "Hello", Target: "Hallo"},
		}),
	}

	// The offending locale only appears in the second file; discovery runs
	// over the combined view, not per file.
	_, err := Reconcile(exports, []*locfile.OverrideFile{
		overrideFile("first.csv", map[string]map[string]string{
			"kept": {"de": "Hallo"},
		}),
		overrideFile("second.csv", map[string]map[string]string{
			"kept": {"fr": "Bonjour"},
		}),
	}, Policy{})

	var localeErr *LocaleMismatchError
	require.ErrorAs(t, err, &localeErr)
	assert.Equal(t, []string{"fr"}, localeErr.Unmatched)

	// Deletion set is the combined key union minus export keys.
	result, err := Reconcile(exports, []*locfile.OverrideFile{
		overrideFile("first.csv", map[string]map[string]string{
			"orphan_a": {"de": "a"},
		}),
		overrideFile("second.csv", map[string]map[string]string{
			"orphan_b": {"de": "b"},
			"kept":     {"de": "Hallo"},
		}),
	}, Policy{})
	require.NoError(t, err)
	assert.Equal(t, []string{"orphan_a", "orphan_b"}, result.Deletions)
}

func TestReconcile_CombinedLaterFileWins(t *testing.T) {
	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"greeting": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile("first.csv", map[string]map[string]string{
			"greeting": {"de": "Servus"},
		}),
		overrideFile("second.csv", map[string]map[string]string{
			"greeting": {"de": "Moin"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	require.Contains(t, result.Combined, "greeting")
	assert.Equal(t, "Moin", result.Combined["greeting"].Values["de"].Override)

	// Per-file records keep each file's own value.
	assert.Equal(t, "Servus", result.PerFile["first.csv"]["greeting"].Values["de"].Override)
	assert.Equal(t, "Moin", result.PerFile["second.csv"]["greeting"].Values["de"].Override)
	assert.Equal(t, 2, result.MismatchedPairs())
}

func TestReconcile_ExportValueResolution(t *testing.T) {
	// Two export files both targeting de; only the second contains the key,
	// so resolution falls through the first and lands on the second.
	exports := []*locfile.ExportFile{
		exportFile("a.xliff", "en", "de", map[string]locfile.ExportEntry{
			"other": {Source: "Other", Target: "Anderes"},
		}),
		exportFile("b.xliff", "en", "de", map[string]locfile.ExportEntry{
			"k1": {Source: "Value", Target: "Wert"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile("custom.csv", map[string]map[string]string{
			"k1": {"de": "Anders"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	value := result.Combined["k1"].Values["de"]
	assert.Equal(t, "Wert", value.Export)
	assert.Equal(t, "b.xliff", value.SourceFile)
}

func TestReconcile_EmptyOverrideSkippedByDefault(t *testing.T) {
	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"greeting": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile("custom.csv", map[string]map[string]string{
			"greeting": {"de": ""},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{RequireOverrideValue: true})
	require.NoError(t, err)
	assert.Empty(t, result.Combined)

	result, err = Reconcile(exports, overrides, Policy{IncludeEmpty: true})
	require.NoError(t, err)
	assert.Contains(t, result.Combined, "greeting")
}
