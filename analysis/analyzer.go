// Package analysis derives statistics from a validated library: basic
// aggregates, decade buckets, and age categories.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/jamshu/librarium/library"
)

// Age category boundaries.
const (
	midCenturyFrom   = 1950
	modernFrom       = 1980
	contemporaryFrom = 2000
)

// BasicStats summarizes a library.
type BasicStats struct {
	LibraryName   string
	TotalBooks    int
	UniqueAuthors int
	EarliestYear  int
	LatestYear    int
	AverageYear   float64 // one decimal
	MedianYear    float64
	PerAuthor     map[string]int
}

// NotableBook identifies the oldest or newest book.
type NotableBook struct {
	Title string
	Year  int
	Age   int
}

// AgeStats buckets books into age categories relative to the current year.
type AgeStats struct {
	Classic      int // before 1950
	MidCentury   int // 1950-1979
	Modern       int // 1980-1999
	Contemporary int // 2000 and later
	AverageAge   float64
	Oldest       NotableBook
	Newest       NotableBook
}

// Analyzer computes statistics against a fixed reference year, normally the
// current one. Tests pin the year for stable age math.
type Analyzer struct {
	currentYear int
}

// New returns an Analyzer referenced to the current calendar year.
func New() *Analyzer {
	return &Analyzer{currentYear: time.Now().Year()}
}

// NewAt returns an Analyzer referenced to a fixed year.
func NewAt(year int) *Analyzer {
	return &Analyzer{currentYear: year}
}

// Basic computes the headline statistics for a library.
func (a *Analyzer) Basic(lib *library.Library) BasicStats {
	s := BasicStats{
		LibraryName:   lib.Name,
		TotalBooks:    len(lib.Books),
		UniqueAuthors: len(lib.UniqueAuthors()),
		PerAuthor:     lib.CountByAuthor(),
	}
	if len(lib.Books) == 0 {
		return s
	}

	years := yearsOf(lib)
	mean, _ := stats.Mean(years)
	median, _ := stats.Median(years)
	min, _ := stats.Min(years)
	max, _ := stats.Max(years)

	s.EarliestYear = int(min)
	s.LatestYear = int(max)
	s.AverageYear = math.Round(mean*10) / 10
	s.MedianYear = median
	return s
}

// Decades buckets books by decade, keyed "1920s", "1950s", ...
func (a *Analyzer) Decades(lib *library.Library) map[string]int {
	buckets := make(map[string]int)
	for _, b := range lib.Books {
		decade := (b.Year / 10) * 10
		buckets[fmt.Sprintf("%ds", decade)]++
	}
	return buckets
}

// DecadeKeys returns the decade bucket keys in chronological order.
func DecadeKeys(buckets map[string]int) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Ages buckets books into age categories and finds the oldest and newest
// books. The zero AgeStats is returned for an empty library.
func (a *Analyzer) Ages(lib *library.Library) AgeStats {
	var s AgeStats
	if len(lib.Books) == 0 {
		return s
	}

	oldest, newest := lib.Books[0], lib.Books[0]
	totalAge := 0
	for _, b := range lib.Books {
		switch {
		case b.Year < midCenturyFrom:
			s.Classic++
		case b.Year < modernFrom:
			s.MidCentury++
		case b.Year < contemporaryFrom:
			s.Modern++
		default:
			s.Contemporary++
		}

		totalAge += a.currentYear - b.Year
		if b.Year < oldest.Year {
			oldest = b
		}
		if b.Year > newest.Year {
			newest = b
		}
	}

	s.AverageAge = math.Round(float64(totalAge)/float64(len(lib.Books))*10) / 10
	s.Oldest = NotableBook{Title: oldest.Title, Year: oldest.Year, Age: a.currentYear - oldest.Year}
	s.Newest = NotableBook{Title: newest.Title, Year: newest.Year, Age: a.currentYear - newest.Year}
	return s
}

func yearsOf(lib *library.Library) []float64 {
	years := make([]float64, len(lib.Books))
	for i, b := range lib.Books {
		years[i] = float64(b.Year)
	}
	return years
}
