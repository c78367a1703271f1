package lookup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LastWins(t *testing.T) {
	table := New([]Entry{
		{Description: "STARBUCKS", Category: "Coffee"},
		{Description: "STARBUCKS", Category: "Eating Out"},
	})

	got, ok := table.Category("STARBUCKS")
	require.True(t, ok)
	assert.Equal(t, "Eating Out", got)
	assert.Equal(t, 1, table.Len())

	require.Len(t, table.Duplicates(), 1)
	assert.Equal(t, Duplicate{Description: "STARBUCKS", Replaced: "Coffee", Category: "Eating Out"}, table.Duplicates()[0])
}

func TestCategory_ExactMatch(t *testing.T) {
	table := New([]Entry{{Description: "STARBUCKS", Category: "Coffee"}})

	_, ok := table.Category("starbucks")
	assert.False(t, ok, "lookup is case-sensitive")
	_, ok = table.Category("STARBUCKS ")
	assert.False(t, ok, "lookup does not trim")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category_lookup.csv")
	require.NoError(t, os.WriteFile(path, []byte("STARBUCKS,Coffee\nRENT,Housing\n"), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	got, ok := table.Category("RENT")
	require.True(t, ok)
	assert.Equal(t, "Housing", got)
}

func TestLoad_Testdata(t *testing.T) {
	table, err := Load("../../testdata/category_lookup.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
}

func TestLoad_Missing(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFile)
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category_lookup.csv")
	require.NoError(t, os.WriteFile(path, []byte("STARBUCKS,Coffee\nBROKEN\n"), 0o644))

	table, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, table)
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.NotErrorIs(t, err, ErrMissingFile)
}
