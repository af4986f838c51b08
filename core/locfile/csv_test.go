package locfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverrideFile(t *testing.T) {
	path := writeTemp(t, "custom.csv", "locale;key;value\n"+
		"DE;greeting;Moin\n"+
		"en;greeting;Hello\n"+
		";orphan;no locale\n"+
		"de;;no key\n"+
		"de;short\n")

	file, err := LoadOverrideFile(path)
	require.NoError(t, err)

	// Rows with an empty key or locale are discarded; the short row has an
	// empty value.
	require.Len(t, file.Entries, 2)
	assert.Equal(t, "Moin", file.Entries["greeting"]["de"])
	assert.Equal(t, "Hello", file.Entries["greeting"]["en"])
	assert.Equal(t, "", file.Entries["short"]["de"])
	assert.Equal(t, []string{"de", "en"}, file.SortedLocales())
}

func TestLoadOverrideFile_ColumnOrderFromHeader(t *testing.T) {
	path := writeTemp(t, "reordered.csv", "Key;Value;Locale\n"+
		"greeting;Moin;de\n")

	file, err := LoadOverrideFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Moin", file.Entries["greeting"]["de"])
}

func TestLoadOverrideFile_MissingColumn(t *testing.T) {
	path := writeTemp(t, "bad.csv", "locale;key\na;b\n")

	_, err := LoadOverrideFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "value"`)
}

func TestLoadOverrideFile_Empty(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")

	_, err := LoadOverrideFile(path)
	assert.Error(t, err)
}

func TestWriteRows_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := []Row{
		{Locale: "de", Key: "greeting", Value: "Moin"},
		{Locale: "en", Key: "greeting", Value: "Hi; there"},
	}

	require.NoError(t, WriteRows(path, rows, false))

	file, err := LoadOverrideFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Moin", file.Entries["greeting"]["de"])
	assert.Equal(t, "Hi; there", file.Entries["greeting"]["en"])
}

func TestBaseName(t *testing.T) {
	f := &OverrideFile{Path: filepath.Join("some", "dir", "custom.terms.csv")}
	assert.Equal(t, "custom.terms", f.BaseName())

	f = &OverrideFile{Path: "plain"}
	assert.Equal(t, "plain", f.BaseName())
}
