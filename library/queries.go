package library

import "strings"

// BooksByAuthor returns all books by the given author, case-insensitively.
func (l *Library) BooksByAuthor(author string) []Book {
	var out []Book
	for _, b := range l.Books {
		if strings.EqualFold(b.Author, author) {
			out = append(out, b)
		}
	}
	return out
}

// BooksAfterYear returns all books published strictly after year.
func (l *Library) BooksAfterYear(year int) []Book {
	var out []Book
	for _, b := range l.Books {
		if b.Year > year {
			out = append(out, b)
		}
	}
	return out
}

// BooksBeforeYear returns all books published strictly before year.
func (l *Library) BooksBeforeYear(year int) []Book {
	var out []Book
	for _, b := range l.Books {
		if b.Year < year {
			out = append(out, b)
		}
	}
	return out
}

// AverageYear returns the mean publication year, or 0 for an empty library.
func (l *Library) AverageYear() float64 {
	if len(l.Books) == 0 {
		return 0
	}
	sum := 0
	for _, b := range l.Books {
		sum += b.Year
	}
	return float64(sum) / float64(len(l.Books))
}

// UniqueAuthors returns the distinct authors in first-appearance order.
func (l *Library) UniqueAuthors() []string {
	seen := make(map[string]struct{}, len(l.Books))
	var out []string
	for _, b := range l.Books {
		if _, ok := seen[b.Author]; ok {
			continue
		}
		seen[b.Author] = struct{}{}
		out = append(out, b.Author)
	}
	return out
}

// CountByAuthor returns the number of books per author.
func (l *Library) CountByAuthor() map[string]int {
	counts := make(map[string]int, len(l.Books))
	for _, b := range l.Books {
		counts[b.Author]++
	}
	return counts
}
