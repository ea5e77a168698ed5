package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := New("Queries", []Book{
		{Title: "One", Author: "Ursula K. Le Guin", Year: 1969},
		{Title: "Two", Author: "ursula k. le guin", Year: 1974},
		{Title: "Three", Author: "Italo Calvino", Year: 1972},
		{Title: "Four", Author: "Octavia Butler", Year: 1993},
	})
	require.NoError(t, err)
	return lib
}

func TestBooksByAuthor_CaseInsensitive(t *testing.T) {
	lib := testLibrary(t)
	books := lib.BooksByAuthor("URSULA K. LE GUIN")
	assert.Len(t, books, 2)
}

func TestBooksAfterYear(t *testing.T) {
	lib := testLibrary(t)
	books := lib.BooksAfterYear(1972)
	assert.Len(t, books, 2)
}

func TestBooksBeforeYear(t *testing.T) {
	lib := testLibrary(t)
	books := lib.BooksBeforeYear(1972)
	assert.Len(t, books, 1)
}

func TestAverageYear(t *testing.T) {
	lib := testLibrary(t)
	assert.InDelta(t, 1977.0, lib.AverageYear(), 0.01)

	empty := &Library{Name: "Empty"}
	assert.Zero(t, empty.AverageYear())
}

func TestUniqueAuthors(t *testing.T) {
	lib := testLibrary(t)
	// Case differs, so the two Le Guin spellings count separately.
	assert.Len(t, lib.UniqueAuthors(), 4)
}

func TestCountByAuthor(t *testing.T) {
	lib := testLibrary(t)
	counts := lib.CountByAuthor()
	assert.Equal(t, 1, counts["Italo Calvino"])
	assert.Equal(t, 1, counts["Octavia Butler"])
}
