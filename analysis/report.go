package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jamshu/librarium/library"
)

// Report renders a comprehensive text analysis of a library.
func (a *Analyzer) Report(lib *library.Library) string {
	basic := a.Basic(lib)
	decades := a.Decades(lib)
	ages := a.Ages(lib)

	var sb strings.Builder
	sb.WriteString("LIBRARY ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&sb, "Library: %s\n", basic.LibraryName)
	fmt.Fprintf(&sb, "Total Books: %d\n", basic.TotalBooks)
	fmt.Fprintf(&sb, "Unique Authors: %d\n\n", basic.UniqueAuthors)

	sb.WriteString("TEMPORAL ANALYSIS\n")
	fmt.Fprintf(&sb, "Publication Range: %d - %d\n", basic.EarliestYear, basic.LatestYear)
	fmt.Fprintf(&sb, "Average Publication Year: %.1f\n", basic.AverageYear)
	fmt.Fprintf(&sb, "Median Publication Year: %.1f\n\n", basic.MedianYear)

	sb.WriteString("BOOKS BY DECADE:\n")
	for _, decade := range DecadeKeys(decades) {
		fmt.Fprintf(&sb, "  %s: %d book(s)\n", decade, decades[decade])
	}

	sb.WriteString("\nAGE CATEGORIES:\n")
	fmt.Fprintf(&sb, "  Classic (pre-%d): %d books\n", midCenturyFrom, ages.Classic)
	fmt.Fprintf(&sb, "  Mid-Century (%d-%d): %d books\n", midCenturyFrom, modernFrom-1, ages.MidCentury)
	fmt.Fprintf(&sb, "  Modern (%d-%d): %d books\n", modernFrom, contemporaryFrom-1, ages.Modern)
	fmt.Fprintf(&sb, "  Contemporary (%d+): %d books\n", contemporaryFrom, ages.Contemporary)

	if basic.TotalBooks > 0 {
		sb.WriteString("\nNOTABLE BOOKS:\n")
		fmt.Fprintf(&sb, "  Oldest: %q (%d) - %d years old\n", ages.Oldest.Title, ages.Oldest.Year, ages.Oldest.Age)
		fmt.Fprintf(&sb, "  Newest: %q (%d) - %d years old\n", ages.Newest.Title, ages.Newest.Year, ages.Newest.Age)
	}

	sb.WriteString("\nAUTHORS:\n")
	authors := make([]string, 0, len(basic.PerAuthor))
	for author := range basic.PerAuthor {
		authors = append(authors, author)
	}
	sort.Strings(authors)
	for _, author := range authors {
		fmt.Fprintf(&sb, "  %s: %d book(s)\n", author, basic.PerAuthor[author])
	}

	return sb.String()
}

// CSVRows flattens the basic statistics into metric/value rows for tabular
// export, one row per statistic.
func (s BasicStats) CSVRows() [][]string {
	rows := [][]string{
		{"metric", "value"},
		{"library_name", s.LibraryName},
		{"total_books", fmt.Sprintf("%d", s.TotalBooks)},
		{"unique_authors", fmt.Sprintf("%d", s.UniqueAuthors)},
		{"earliest_year", fmt.Sprintf("%d", s.EarliestYear)},
		{"latest_year", fmt.Sprintf("%d", s.LatestYear)},
		{"average_publication_year", fmt.Sprintf("%.1f", s.AverageYear)},
		{"median_publication_year", fmt.Sprintf("%.1f", s.MedianYear)},
	}

	authors := make([]string, 0, len(s.PerAuthor))
	for author := range s.PerAuthor {
		authors = append(authors, author)
	}
	sort.Strings(authors)
	for _, author := range authors {
		rows = append(rows, []string{
			"books_by_" + strings.ReplaceAll(author, " ", "_"),
			fmt.Sprintf("%d", s.PerAuthor[author]),
		})
	}
	return rows
}
