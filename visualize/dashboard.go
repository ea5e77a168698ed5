package visualize

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jamshu/librarium/library"
)

// Dashboard renders the comprehensive four-panel analysis: publication-year
// histogram, decades bar chart, age-category pie, and books-per-author bar
// chart. go-chart has no subplot support, so the panels are rendered
// separately and composited into one image.
func (r *ChartRenderer) Dashboard(lib *library.Library) ([]byte, error) {
	if len(lib.Books) == 0 {
		return nil, ErrNoData
	}

	bars, err := yearBins(lib)
	if err != nil {
		return nil, err
	}

	panels := make([]image.Image, 0, 4)

	histogram, err := renderBars(chart.BarChart{
		Title:  "Publication Years Distribution",
		Width:  panelWidth,
		Height: panelHeight,
		Bars:   bars,
	})
	if err != nil {
		return nil, err
	}
	panels = append(panels, mustDecode(histogram))

	decades, err := renderBars(chart.BarChart{
		Title:  "Books by Decade",
		Width:  panelWidth,
		Height: panelHeight,
		Bars:   r.decadeBars(lib),
	})
	if err != nil {
		return nil, err
	}
	panels = append(panels, mustDecode(decades))

	agePanel, err := r.agePanel(lib)
	if err != nil {
		return nil, err
	}
	panels = append(panels, agePanel)

	authors, err := renderBars(chart.BarChart{
		Title:  "Books per Author",
		Width:  panelWidth,
		Height: panelHeight,
		Bars:   r.authorBars(lib),
	})
	if err != nil {
		return nil, err
	}
	panels = append(panels, mustDecode(authors))

	return composite(panels)
}

func (r *ChartRenderer) agePanel(lib *library.Library) (image.Image, error) {
	values := r.ageSlices(lib)
	if len(values) == 0 {
		return nil, ErrNoData
	}

	pie := chart.PieChart{
		Title:  "Books by Age Category",
		Width:  panelWidth,
		Height: panelHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering pie chart: %w", err)
	}
	return mustDecode(buf.Bytes()), nil
}

// composite lays four equally sized panels out on a 2x2 white canvas.
func composite(panels []image.Image) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, panelWidth*2, panelHeight*2))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	offsets := []image.Point{
		{0, 0},
		{panelWidth, 0},
		{0, panelHeight},
		{panelWidth, panelHeight},
	}
	for i, panel := range panels {
		rect := image.Rectangle{
			Min: offsets[i],
			Max: offsets[i].Add(panel.Bounds().Size()),
		}
		draw.Draw(canvas, rect, panel, panel.Bounds().Min, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encoding dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// mustDecode decodes PNG bytes this package just encoded.
func mustDecode(data []byte) image.Image {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("decoding freshly rendered chart: %v", err))
	}
	return img
}
