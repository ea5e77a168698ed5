package catalog

import (
	"math"

	"github.com/montanaflynn/stats"
)

// OverallStats aggregates across a set of catalogs.
type OverallStats struct {
	TotalBooks        int
	AveragePages      float64
	AverageRating     float64
	GenreDistribution map[string]int
}

// CatalogStats summarizes a single catalog.
type CatalogStats struct {
	Books         int
	AveragePages  float64
	AverageRating float64
	TopGenre      string
}

// Overall computes aggregate statistics across catalogs. Averages are
// rounded to one decimal.
func Overall(catalogs []*Catalog) OverallStats {
	out := OverallStats{GenreDistribution: make(map[string]int)}

	var pages, ratings []float64
	for _, c := range catalogs {
		for _, b := range c.Books {
			out.TotalBooks++
			out.GenreDistribution[b.Genre]++
			pages = append(pages, float64(b.Pages))
			ratings = append(ratings, b.Rating)
		}
	}

	out.AveragePages = round1(mean(pages))
	out.AverageRating = round1(mean(ratings))
	return out
}

// PerCatalog computes per-catalog summaries keyed by catalog name.
func PerCatalog(catalogs []*Catalog) map[string]CatalogStats {
	out := make(map[string]CatalogStats, len(catalogs))
	for _, c := range catalogs {
		var pages, ratings []float64
		genreCounts := make(map[string]int)
		for _, b := range c.Books {
			pages = append(pages, float64(b.Pages))
			ratings = append(ratings, b.Rating)
			genreCounts[b.Genre]++
		}

		top, best := "", 0
		for g, n := range genreCounts {
			if n > best || (n == best && g < top) {
				top, best = g, n
			}
		}

		out[c.Name] = CatalogStats{
			Books:         len(c.Books),
			AveragePages:  round1(mean(pages)),
			AverageRating: round1(mean(ratings)),
			TopGenre:      top,
		}
	}
	return out
}

// GenreCounts merges genre counts across catalogs.
func GenreCounts(catalogs []*Catalog) map[string]int {
	counts := make(map[string]int)
	for _, c := range catalogs {
		for _, b := range c.Books {
			counts[b.Genre]++
		}
	}
	return counts
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
