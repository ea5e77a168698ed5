package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGenerate(t *testing.T) {
	c := Generate(testRNG(), "Test Catalog", 25)

	assert.Equal(t, "Test Catalog", c.Name)
	require.Len(t, c.Books, 25)

	for _, b := range c.Books {
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.Contains(t, genres, b.Genre)
		assert.GreaterOrEqual(t, b.Pages, 60)
		assert.LessOrEqual(t, b.Pages, 1200)
		assert.GreaterOrEqual(t, b.Rating, 1.0)
		assert.LessOrEqual(t, b.Rating, 5.0)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(testRNG(), "Seeded", 10)
	b := Generate(testRNG(), "Seeded", 10)
	assert.Equal(t, a, b)
}

func TestCatalog_Add(t *testing.T) {
	c := &Catalog{Name: "Manual"}
	c.Add(Book{Title: "T", Author: "A", Genre: "Fiction", Pages: 100, Rating: 4.2})
	assert.Len(t, c.Books, 1)
}

func TestOverall(t *testing.T) {
	catalogs := []*Catalog{
		{Name: "One", Books: []Book{
			{Title: "A", Author: "X", Genre: "Fiction", Pages: 100, Rating: 4.0},
			{Title: "B", Author: "Y", Genre: "Mystery", Pages: 300, Rating: 3.0},
		}},
		{Name: "Two", Books: []Book{
			{Title: "C", Author: "Z", Genre: "Fiction", Pages: 200, Rating: 5.0},
		}},
	}

	stats := Overall(catalogs)
	assert.Equal(t, 3, stats.TotalBooks)
	assert.InDelta(t, 200.0, stats.AveragePages, 0.01)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.01)
	assert.Equal(t, map[string]int{"Fiction": 2, "Mystery": 1}, stats.GenreDistribution)
}

func TestOverall_Empty(t *testing.T) {
	stats := Overall(nil)
	assert.Zero(t, stats.TotalBooks)
	assert.Zero(t, stats.AveragePages)
	assert.Empty(t, stats.GenreDistribution)
}

func TestPerCatalog(t *testing.T) {
	catalogs := []*Catalog{
		{Name: "One", Books: []Book{
			{Title: "A", Author: "X", Genre: "Fiction", Pages: 120, Rating: 4.0},
			{Title: "B", Author: "Y", Genre: "Fiction", Pages: 180, Rating: 2.0},
			{Title: "C", Author: "Z", Genre: "Mystery", Pages: 300, Rating: 3.0},
		}},
	}

	stats := PerCatalog(catalogs)
	require.Contains(t, stats, "One")
	assert.Equal(t, 3, stats["One"].Books)
	assert.InDelta(t, 200.0, stats["One"].AveragePages, 0.01)
	assert.InDelta(t, 3.0, stats["One"].AverageRating, 0.01)
	assert.Equal(t, "Fiction", stats["One"].TopGenre)
}

func TestGenreCounts(t *testing.T) {
	catalogs := []*Catalog{
		{Name: "One", Books: []Book{{Genre: "Fiction"}, {Genre: "History"}}},
		{Name: "Two", Books: []Book{{Genre: "Fiction"}}},
	}

	counts := GenreCounts(catalogs)
	assert.Equal(t, map[string]int{"Fiction": 2, "History": 1}, counts)
}
