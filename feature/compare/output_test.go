package compare

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"translation-manager/core/locfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTable(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestSaveIndividual(t *testing.T) {
	dir := t.TempDir()

	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"greeting": {Source: "Hello", Target: "Hallo"},
			"farewell": {Source: "Bye", Target: "Tschuess"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile(filepath.Join(dir, "custom.csv"), map[string]map[string]string{
			"greeting": {"de": "Moin"},
		}),
		overrideFile(filepath.Join(dir, "clean.csv"), map[string]map[string]string{
			"farewell": {"de": "Tschuess"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	saved, err := SaveIndividual(result, overrides, SaveOptions{})
	require.NoError(t, err)

	// Only the file with mismatches produces an output.
	require.Len(t, saved, 1)
	assert.Contains(t, filepath.Base(saved[0]), "custom_updated_")

	records := readTable(t, saved[0])
	require.Len(t, records, 2)
	assert.Equal(t, []string{"locale", "key", "value"}, records[0])
	assert.Equal(t, []string{"de", "greeting", "Moin"}, records[1])
}

func TestSaveIndividual_EditsOverlay(t *testing.T) {
	dir := t.TempDir()

	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"greeting": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile(filepath.Join(dir, "custom.csv"), map[string]map[string]string{
			"greeting": {"de": "Moin"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	saved, err := SaveIndividual(result, overrides, SaveOptions{
		Suffix: "fixed",
		Edits:  map[EditKey]string{{Key: "greeting", Locale: "de"}: "Servus"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Contains(t, filepath.Base(saved[0]), "custom_fixed_")

	records := readTable(t, saved[0])
	assert.Equal(t, []string{"de", "greeting", "Servus"}, records[1])
}

func TestSaveMerged_DedupeFirstWins(t *testing.T) {
	dir := t.TempDir()

	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"greeting": {Source: "Hello", Target: "Hallo"},
			"farewell": {Source: "Bye", Target: "Tschuess"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile(filepath.Join(dir, "first.csv"), map[string]map[string]string{
			"greeting": {"de": "Servus"},
		}),
		overrideFile(filepath.Join(dir, "second.csv"), map[string]map[string]string{
			"greeting": {"de": "Moin"},
			"farewell": {"de": "Ciao"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	outPath, err := SaveMerged(result, overrides, dir, SaveOptions{})
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(outPath), "merged_")

	records := readTable(t, outPath)
	require.Len(t, records, 3)
	// greeting keeps the first file's value even though the combined view
	// records the later one.
	assert.Contains(t, records, []string{"de", "greeting", "Servus"})
	assert.Contains(t, records, []string{"de", "farewell", "Ciao"})
}

func TestExportDeletedKeys(t *testing.T) {
	dir := t.TempDir()

	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"kept": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile(filepath.Join(dir, "custom.csv"), map[string]map[string]string{
			"kept": {"en": "Hello"},
			"gone": {"de": "weg", "en": "away"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	outPath, count, err := ExportDeletedKeys(result, overrides, filepath.Join(dir, "deleted.csv"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	records := readTable(t, outPath)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"key", "locale", "value"}, records[0])
	assert.Equal(t, []string{"gone", "de", "weg"}, records[1])
	assert.Equal(t, []string{"gone", "en", "away"}, records[2])
}

func TestExportDeletedKeys_CollisionSuffix(t *testing.T) {
	dir := t.TempDir()

	exports := []*locfile.ExportFile{
		exportFile("main.xliff", "en", "de", map[string]locfile.ExportEntry{
			"kept": {Source: "Hello", Target: "Hallo"},
		}),
	}
	overrides := []*locfile.OverrideFile{
		overrideFile(filepath.Join(dir, "custom.csv"), map[string]map[string]string{
			"gone": {"de": "weg"},
		}),
	}

	result, err := Reconcile(exports, overrides, Policy{})
	require.NoError(t, err)

	target := filepath.Join(dir, "deleted.csv")
	require.NoError(t, os.WriteFile(target, []byte("occupied"), 0o644))

	outPath, _, err := ExportDeletedKeys(result, overrides, target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "deleted_1.csv"), outPath)
}
