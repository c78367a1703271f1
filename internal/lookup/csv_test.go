package lookup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntries(t *testing.T) {
	data := "STARBUCKS,Coffee\n\"TESCO, LONDON\",Groceries\nRENT,Housing,ignored\n"
	entries, err := ReadEntries(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{Description: "STARBUCKS", Category: "Coffee"}, entries[0])
	assert.Equal(t, Entry{Description: "TESCO, LONDON", Category: "Groceries"}, entries[1])
	assert.Equal(t, Entry{Description: "RENT", Category: "Housing"}, entries[2])
}

func TestReadEntries_NoHeaderAssumed(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader("description,category\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "description", entries[0].Description)
}

func TestReadEntries_QuotesInDescription(t *testing.T) {
	data := "JOE'S \"DINER\" LONDON,Eating Out\n\"TESCO, \"\"METRO\"\"\",Groceries\n"
	entries, err := ReadEntries(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Description: `JOE'S "DINER" LONDON`, Category: "Eating Out"}, entries[0])
	assert.Equal(t, Entry{Description: `TESCO, "METRO"`, Category: "Groceries"}, entries[1])
}

func TestReadEntries_Empty(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestReadEntries_ShortRow(t *testing.T) {
	data := "STARBUCKS,Coffee\nLONELY\n"
	_, err := ReadEntries(strings.NewReader(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestWriteEntries_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Description: "STARBUCKS", Category: "Coffee"},
		{Description: "AMAZON, MKTP", Category: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))
	assert.Equal(t, "STARBUCKS,Coffee\n\"AMAZON, MKTP\",\n", buf.String())

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
