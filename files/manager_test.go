package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jamshu/librarium/catalog"
	"github.com/jamshu/librarium/library"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), nil)
	require.NoError(t, err)
	return m
}

func testLib(t *testing.T) *library.Library {
	t.Helper()
	lib, err := library.New("Round Trip", []library.Book{
		{Title: "First", Author: "Alice", Year: 1920},
		{Title: "Second", Author: "Bob", Year: 2010},
	})
	require.NoError(t, err)
	return lib
}

func TestNewManager_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := NewManager(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveLoadLibraryJSON_RoundTrip(t *testing.T) {
	m := testManager(t)
	original := testLib(t)

	path, err := m.SaveLibraryJSON(original, "lib.json")
	require.NoError(t, err)
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Persisted with 4-space indentation.
	assert.Contains(t, string(data), "    \"name\"")

	reloaded, err := m.LoadLibraryJSON("lib.json")
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)
}

func TestLoadLibraryJSON_Missing(t *testing.T) {
	m := testManager(t)
	_, err := m.LoadLibraryJSON("absent.json")
	assert.Error(t, err)
}

func TestLoadLibraryJSON_RejectsInvalidSchema(t *testing.T) {
	m := testManager(t)
	bad := `{"name": "Bad", "books": [{"title": "", "author": "A", "year": 2000}]}`
	require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), "bad.json"), []byte(bad), 0o644))

	_, err := m.LoadLibraryJSON("bad.json")
	require.Error(t, err)

	var verr *library.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSaveCSV(t *testing.T) {
	m := testManager(t)
	rows := [][]string{
		{"metric", "value"},
		{"total_books", "4"},
	}

	path, err := m.SaveCSV(rows, "stats.csv")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{"metric,value", "total_books,4"}, lines)
}

func TestList(t *testing.T) {
	m := testManager(t)
	for _, name := range []string{"a.json", "b.json", "chart.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(m.Dir(), name), []byte("x"), 0o644))
	}

	all, err := m.List("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json", "chart.png"}, all)

	jsons, err := m.List("*.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, jsons)
}

func TestList_InvalidPattern(t *testing.T) {
	m := testManager(t)
	_, err := m.List("[")
	assert.Error(t, err)
}

func TestSaveWorkbook(t *testing.T) {
	m := testManager(t)
	catalogs := []*catalog.Catalog{
		{Name: "First Catalog", Books: []catalog.Book{
			{Title: "A", Author: "X", Genre: "Fiction", Pages: 120, Rating: 4.5},
			{Title: "B", Author: "Y", Genre: "Mystery", Pages: 300, Rating: 3.1},
		}},
		{Name: "Second Catalog", Books: []catalog.Book{
			{Title: "C", Author: "Z", Genre: "Fiction", Pages: 200, Rating: 4.9},
		}},
	}

	path, err := m.SaveWorkbook(catalogs, "analysis.xlsx")
	require.NoError(t, err)
	assert.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "First Catalog")
	assert.Contains(t, sheets, "Second Catalog")
	assert.Contains(t, sheets, "All Books")
	assert.Contains(t, sheets, "Genre Counts")
	assert.NotContains(t, sheets, "Sheet1")

	rows, err := f.GetRows("All Books")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + three books
	assert.Equal(t, []string{"Library", "Title", "Author", "Genre", "Pages", "Rating"}, rows[0])

	genreRows, err := f.GetRows("Genre Counts")
	require.NoError(t, err)
	require.Len(t, genreRows, 3)
	assert.Equal(t, []string{"Fiction", "2"}, genreRows[1])
	assert.Equal(t, []string{"Mystery", "1"}, genreRows[2])
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "My Catalog", want: "My Catalog"},
		{name: "illegal characters", input: "A/B:C", want: "A-B-C"},
		{name: "too long", input: strings.Repeat("x", 40), want: strings.Repeat("x", 31)},
		{name: "empty", input: "", want: "Catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sheetName(tt.input))
		})
	}
}
