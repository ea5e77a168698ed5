package visualize

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jamshu/librarium/analysis"
	"github.com/jamshu/librarium/library"
)

const (
	chartWidth  = 1000
	chartHeight = 600

	panelWidth  = 520
	panelHeight = 390
)

// ChartRenderer implements Renderer with go-chart.
type ChartRenderer struct {
	analyzer *analysis.Analyzer
}

// NewChartRenderer creates a ChartRenderer backed by the given analyzer.
func NewChartRenderer(a *analysis.Analyzer) *ChartRenderer {
	return &ChartRenderer{analyzer: a}
}

// YearsHistogram renders the distribution of publication years. The average
// year is carried in the title since bar charts have no marker lines.
func (r *ChartRenderer) YearsHistogram(lib *library.Library) ([]byte, error) {
	bars, err := yearBins(lib)
	if err != nil {
		return nil, err
	}
	stats := r.analyzer.Basic(lib)

	return renderBars(chart.BarChart{
		Title:  fmt.Sprintf("Publication Years - %s (avg %.0f)", lib.Name, stats.AverageYear),
		Width:  chartWidth,
		Height: chartHeight,
		Bars:   bars,
	})
}

// DecadesBar renders books-per-decade counts in chronological order.
func (r *ChartRenderer) DecadesBar(lib *library.Library) ([]byte, error) {
	return renderBars(chart.BarChart{
		Title:  fmt.Sprintf("Books by Decade - %s", lib.Name),
		Width:  chartWidth,
		Height: chartHeight,
		Bars:   r.decadeBars(lib),
	})
}

// AgePie renders the age-category split, omitting empty categories.
func (r *ChartRenderer) AgePie(lib *library.Library) ([]byte, error) {
	values := r.ageSlices(lib)
	if len(values) == 0 {
		return nil, ErrNoData
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("Books by Age Category - %s", lib.Name),
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// GenreBar renders a genre-count bar chart, genres sorted alphabetically.
func (r *ChartRenderer) GenreBar(title string, counts map[string]int) ([]byte, error) {
	if len(counts) == 0 {
		return nil, ErrNoData
	}

	genres := make([]string, 0, len(counts))
	for g := range counts {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	bars := make([]chart.Value, 0, len(genres))
	for _, g := range genres {
		bars = append(bars, chart.Value{Label: g, Value: float64(counts[g])})
	}

	return renderBars(chart.BarChart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Bars:   bars,
	})
}

func (r *ChartRenderer) decadeBars(lib *library.Library) []chart.Value {
	decades := r.analyzer.Decades(lib)
	bars := make([]chart.Value, 0, len(decades))
	for _, key := range analysis.DecadeKeys(decades) {
		bars = append(bars, chart.Value{Label: key, Value: float64(decades[key])})
	}
	return bars
}

func (r *ChartRenderer) ageSlices(lib *library.Library) []chart.Value {
	ages := r.analyzer.Ages(lib)
	categories := []struct {
		label string
		count int
	}{
		{"Classic", ages.Classic},
		{"Mid-Century", ages.MidCentury},
		{"Modern", ages.Modern},
		{"Contemporary", ages.Contemporary},
	}

	var values []chart.Value
	for _, c := range categories {
		if c.count > 0 {
			values = append(values, chart.Value{Label: c.label, Value: float64(c.count)})
		}
	}
	return values
}

func (r *ChartRenderer) authorBars(lib *library.Library) []chart.Value {
	counts := lib.CountByAuthor()
	authors := make([]string, 0, len(counts))
	for a := range counts {
		authors = append(authors, a)
	}
	sort.Strings(authors)

	bars := make([]chart.Value, 0, len(authors))
	for _, a := range authors {
		bars = append(bars, chart.Value{Label: a, Value: float64(counts[a])})
	}
	return bars
}

func renderBars(bc chart.BarChart) ([]byte, error) {
	if len(bc.Bars) == 0 {
		return nil, ErrNoData
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// yearBins buckets publication years into at most ten equal-width bins.
func yearBins(lib *library.Library) ([]chart.Value, error) {
	if len(lib.Books) == 0 {
		return nil, ErrNoData
	}

	minYear, maxYear := lib.Books[0].Year, lib.Books[0].Year
	for _, b := range lib.Books {
		if b.Year < minYear {
			minYear = b.Year
		}
		if b.Year > maxYear {
			maxYear = b.Year
		}
	}

	binCount := len(lib.Books)
	if binCount > 10 {
		binCount = 10
	}
	span := maxYear - minYear + 1
	width := (span + binCount - 1) / binCount

	counts := make([]int, binCount)
	for _, b := range lib.Books {
		idx := (b.Year - minYear) / width
		if idx >= binCount {
			idx = binCount - 1
		}
		counts[idx]++
	}

	bars := make([]chart.Value, binCount)
	for i, n := range counts {
		start := minYear + i*width
		end := start + width - 1
		if end > maxYear {
			end = maxYear
		}
		label := fmt.Sprintf("%d", start)
		if end > start {
			label = fmt.Sprintf("%d-%d", start, end)
		}
		bars[i] = chart.Value{Label: label, Value: float64(n)}
	}
	return bars, nil
}
