package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const serviceXLIFF = `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="1.2">
  <file original="app" source-language="en" target-language="de" datatype="plaintext">
    <body>
      <trans-unit id="1" resname="greeting">
        <source>Hello</source>
        <target>Hallo</target>
      </trans-unit>
      <trans-unit id="2" resname="farewell">
        <source>Bye</source>
        <target>Tschuess</target>
      </trans-unit>
    </body>
  </file>
</xliff>`

const serviceCSV = "locale;key;value\n" +
	"de;greeting;Moin\n" +
	"en;farewell;Bye\n" +
	"de;orphan;weg\n"

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_LoadSession(t *testing.T) {
	dir := t.TempDir()
	exportPath := writeInput(t, dir, "main.xliff", serviceXLIFF)
	overridePath := writeInput(t, dir, "custom.csv", serviceCSV)

	service := NewService(zap.NewNop())
	session, err := service.LoadSession([]string{exportPath}, []string{overridePath})
	require.NoError(t, err)

	assert.Len(t, session.Exports, 1)
	assert.Len(t, session.Overrides, 1)
}

func TestService_LoadSession_SkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	goodExport := writeInput(t, dir, "main.xliff", serviceXLIFF)
	goodOverride := writeInput(t, dir, "custom.csv", serviceCSV)
	badOverride := writeInput(t, dir, "broken.csv", "not;a;header\nrow")

	service := NewService(zap.NewNop())
	session, err := service.LoadSession(
		[]string{goodExport, filepath.Join(dir, "missing.xliff")},
		[]string{badOverride, goodOverride},
	)
	require.NoError(t, err)

	// Broken files are skipped, the rest load.
	assert.Len(t, session.Exports, 1)
	assert.Len(t, session.Overrides, 1)
}

func TestService_LoadSession_EmptySideFails(t *testing.T) {
	dir := t.TempDir()
	overridePath := writeInput(t, dir, "custom.csv", serviceCSV)

	service := NewService(zap.NewNop())

	_, err := service.LoadSession(nil, []string{overridePath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no export files loaded")

	exportPath := writeInput(t, dir, "main.xliff", serviceXLIFF)
	_, err = service.LoadSession([]string{exportPath}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no override files loaded")
}

func TestService_Compare(t *testing.T) {
	dir := t.TempDir()
	exportPath := writeInput(t, dir, "main.xliff", serviceXLIFF)
	overridePath := writeInput(t, dir, "custom.csv", serviceCSV)

	service := NewService(zap.NewNop())
	session, err := service.LoadSession([]string{exportPath}, []string{overridePath})
	require.NoError(t, err)

	result, stats, err := service.Compare(session, Policy{})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Contains(t, result.Combined, "greeting")
	assert.NotContains(t, result.Combined, "farewell")
	assert.Equal(t, []string{"orphan"}, result.Deletions)
	assert.Equal(t, 2, stats.KeysInBoth)
	assert.Equal(t, 1, stats.MismatchedKeys)
	assert.Equal(t, 1, stats.MatchingKeys)
}

func TestSession_RemoveAndClear(t *testing.T) {
	session := NewSession()
	session.AddExport(exportFile("a.xliff", "en", "de", nil))
	session.AddExport(exportFile("b.xliff", "en", "de", nil))
	session.AddOverride(overrideFile("custom.csv", nil))

	assert.True(t, session.RemoveExport("a.xliff"))
	assert.False(t, session.RemoveExport("a.xliff"))
	assert.Len(t, session.Exports, 1)
	assert.Equal(t, "b.xliff", session.Exports[0].Path)

	session.ClearOverrides()
	assert.Empty(t, session.Overrides)
}
