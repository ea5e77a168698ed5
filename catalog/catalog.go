// Package catalog holds the richer, unvalidated book shape used by the
// random-data workflow: title/author/genre/pages/rating. It is deliberately
// a separate type from library.Book, which carries the strict generated-data
// schema; the two shapes are not reconciled.
package catalog

import (
	"fmt"
	"math/rand/v2"
)

// Book is a catalog record. Unlike library.Book it carries no validation
// contract; catalogs are built from trusted in-process data.
type Book struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Genre  string  `json:"genre"`
	Pages  int     `json:"pages"`
	Rating float64 `json:"rating"`
}

func (b Book) String() string {
	return fmt.Sprintf("'%s' by %s [%s] (%d pages, %.1f)", b.Title, b.Author, b.Genre, b.Pages, b.Rating)
}

// Catalog is a named collection of catalog books.
type Catalog struct {
	Name  string `json:"name"`
	Books []Book `json:"books"`
}

// Add appends a book. Catalogs mutate by simple appends only.
func (c *Catalog) Add(b Book) {
	c.Books = append(c.Books, b)
}

var (
	titleAdjectives = []string{
		"Silent", "Golden", "Forgotten", "Endless", "Crimson",
		"Hollow", "Distant", "Shattered", "Luminous", "Wandering",
	}
	titleNouns = []string{
		"Garden", "Horizon", "Cipher", "Voyage", "Archive",
		"Winter", "Machine", "Harbor", "Oracle", "Labyrinth",
	}
	authorFirst = []string{
		"Elena", "Marcus", "Priya", "Jonas", "Amara",
		"Viktor", "Sofia", "Declan", "Yuki", "Tomas",
	}
	authorLast = []string{
		"Whitfield", "Okafor", "Lindqvist", "Marchetti", "Tanaka",
		"Reyes", "Novak", "Abernathy", "Kovalenko", "Huang",
	}
	genres = []string{
		"Fiction", "Science Fiction", "Mystery", "Fantasy",
		"Biography", "History", "Romance", "Thriller",
	}
)

// Generate builds a catalog of n random books. Pass a seeded rng for
// reproducible output.
func Generate(rng *rand.Rand, name string, n int) *Catalog {
	c := &Catalog{Name: name, Books: make([]Book, 0, n)}
	for i := 0; i < n; i++ {
		c.Add(Book{
			Title:  fmt.Sprintf("The %s %s", pick(rng, titleAdjectives), pick(rng, titleNouns)),
			Author: fmt.Sprintf("%s %s", pick(rng, authorFirst), pick(rng, authorLast)),
			Genre:  pick(rng, genres),
			Pages:  60 + rng.IntN(1141),
			Rating: 1.0 + rng.Float64()*4.0,
		})
	}
	return c
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.IntN(len(pool))]
}
