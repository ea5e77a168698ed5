package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamshu/librarium/library"
)

// spreadLibrary has one book per decade bucket and one per age category.
func spreadLibrary(t *testing.T) *library.Library {
	t.Helper()
	lib, err := library.New("Spread", []library.Book{
		{Title: "Classic", Author: "Alice", Year: 1920},
		{Title: "Mid-Century", Author: "Bob", Year: 1955},
		{Title: "Modern", Author: "Carol", Year: 1985},
		{Title: "Contemporary", Author: "Dave", Year: 2010},
	})
	require.NoError(t, err)
	return lib
}

func TestDecades(t *testing.T) {
	a := NewAt(2025)
	decades := a.Decades(spreadLibrary(t))

	assert.Equal(t, map[string]int{
		"1920s": 1,
		"1950s": 1,
		"1980s": 1,
		"2010s": 1,
	}, decades)
}

func TestDecades_MultiplePerBucket(t *testing.T) {
	lib, err := library.New("Dense", []library.Book{
		{Title: "A", Author: "X", Year: 1961},
		{Title: "B", Author: "X", Year: 1969},
		{Title: "C", Author: "X", Year: 1970},
	})
	require.NoError(t, err)

	decades := NewAt(2025).Decades(lib)
	assert.Equal(t, map[string]int{"1960s": 2, "1970s": 1}, decades)
}

func TestAges_OnePerCategory(t *testing.T) {
	a := NewAt(2025)
	ages := a.Ages(spreadLibrary(t))

	assert.Equal(t, 1, ages.Classic)
	assert.Equal(t, 1, ages.MidCentury)
	assert.Equal(t, 1, ages.Modern)
	assert.Equal(t, 1, ages.Contemporary)
}

func TestAges_Boundaries(t *testing.T) {
	lib, err := library.New("Edges", []library.Book{
		{Title: "LastClassic", Author: "A", Year: 1949},
		{Title: "FirstMid", Author: "A", Year: 1950},
		{Title: "LastMid", Author: "A", Year: 1979},
		{Title: "FirstModern", Author: "A", Year: 1980},
		{Title: "LastModern", Author: "A", Year: 1999},
		{Title: "FirstContemporary", Author: "A", Year: 2000},
	})
	require.NoError(t, err)

	ages := NewAt(2025).Ages(lib)
	assert.Equal(t, 1, ages.Classic)
	assert.Equal(t, 2, ages.MidCentury)
	assert.Equal(t, 2, ages.Modern)
	assert.Equal(t, 1, ages.Contemporary)
}

func TestAges_OldestAndNewest(t *testing.T) {
	a := NewAt(2025)
	ages := a.Ages(spreadLibrary(t))

	assert.Equal(t, NotableBook{Title: "Classic", Year: 1920, Age: 105}, ages.Oldest)
	assert.Equal(t, NotableBook{Title: "Contemporary", Year: 2010, Age: 15}, ages.Newest)
}

func TestAges_Empty(t *testing.T) {
	lib := &library.Library{Name: "Empty"}
	ages := NewAt(2025).Ages(lib)
	assert.Zero(t, ages)
}

func TestBasic(t *testing.T) {
	a := NewAt(2025)
	stats := a.Basic(spreadLibrary(t))

	assert.Equal(t, "Spread", stats.LibraryName)
	assert.Equal(t, 4, stats.TotalBooks)
	assert.Equal(t, 4, stats.UniqueAuthors)
	assert.Equal(t, 1920, stats.EarliestYear)
	assert.Equal(t, 2010, stats.LatestYear)
	assert.InDelta(t, 1967.5, stats.AverageYear, 0.01)
	assert.InDelta(t, 1970.0, stats.MedianYear, 0.01)
	assert.Equal(t, 1, stats.PerAuthor["Alice"])
}

func TestBasic_Empty(t *testing.T) {
	lib := &library.Library{Name: "Empty"}
	stats := NewAt(2025).Basic(lib)

	assert.Zero(t, stats.TotalBooks)
	assert.Zero(t, stats.AverageYear)
}

func TestReport(t *testing.T) {
	report := NewAt(2025).Report(spreadLibrary(t))

	assert.Contains(t, report, "LIBRARY ANALYSIS REPORT")
	assert.Contains(t, report, "Library: Spread")
	assert.Contains(t, report, "Total Books: 4")
	assert.Contains(t, report, "1920s: 1 book(s)")
	assert.Contains(t, report, "Classic (pre-1950): 1 books")
	assert.Contains(t, report, `Oldest: "Classic" (1920)`)
	assert.Contains(t, report, "Alice: 1 book(s)")
}

func TestCSVRows(t *testing.T) {
	stats := NewAt(2025).Basic(spreadLibrary(t))
	rows := stats.CSVRows()

	assert.Equal(t, []string{"metric", "value"}, rows[0])
	assert.Contains(t, rows, []string{"total_books", "4"})
	assert.Contains(t, rows, []string{"average_publication_year", "1967.5"})
	assert.Contains(t, rows, []string{"books_by_Alice", "1"})
}

func TestDecadeKeys_Sorted(t *testing.T) {
	keys := DecadeKeys(map[string]int{"2010s": 1, "1920s": 1, "1980s": 1})
	assert.Equal(t, []string{"1920s", "1980s", "2010s"}, keys)
}
