// Package visualize renders library statistics as chart images. Rendering is
// behind the Renderer capability so callers and tests can substitute a fake
// without producing pixels.
package visualize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jamshu/librarium/library"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("no data available for visualization")

// Renderer produces PNG-encoded charts from library data.
type Renderer interface {
	YearsHistogram(lib *library.Library) ([]byte, error)
	DecadesBar(lib *library.Library) ([]byte, error)
	AgePie(lib *library.Library) ([]byte, error)
	Dashboard(lib *library.Library) ([]byte, error)
	GenreBar(title string, counts map[string]int) ([]byte, error)
}

// Visualizer renders charts and writes them under an output directory with
// filenames derived from the library name (spaces replaced by underscores).
type Visualizer struct {
	r   Renderer
	dir string
	log *zap.Logger
}

// NewVisualizer creates a Visualizer. A nil logger disables logging.
func NewVisualizer(r Renderer, outputDir string, log *zap.Logger) (*Visualizer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Visualizer{r: r, dir: outputDir, log: log}, nil
}

// SaveYearsHistogram writes the publication-year histogram and returns the path.
func (v *Visualizer) SaveYearsHistogram(lib *library.Library) (string, error) {
	return v.save(lib, "years_histogram", v.r.YearsHistogram)
}

// SaveDecadesBar writes the books-by-decade bar chart and returns the path.
func (v *Visualizer) SaveDecadesBar(lib *library.Library) (string, error) {
	return v.save(lib, "decades_bar", v.r.DecadesBar)
}

// SaveDashboard writes the four-panel comprehensive chart and returns the path.
func (v *Visualizer) SaveDashboard(lib *library.Library) (string, error) {
	return v.save(lib, "comprehensive_analysis", v.r.Dashboard)
}

// SaveAll renders the histogram, the decades chart, and the dashboard,
// returning the written paths.
func (v *Visualizer) SaveAll(lib *library.Library) ([]string, error) {
	savers := []func(*library.Library) (string, error){
		v.SaveYearsHistogram,
		v.SaveDecadesBar,
		v.SaveDashboard,
	}

	paths := make([]string, 0, len(savers))
	for _, save := range savers {
		path, err := save(lib)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SaveGenreBar writes a genre-distribution bar chart for catalog data.
func (v *Visualizer) SaveGenreBar(name string, counts map[string]int) (string, error) {
	png, err := v.r.GenreBar(fmt.Sprintf("Genre Distribution - %s", name), counts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(v.dir, FileName(name, "genre_distribution"))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("writing chart: %w", err)
	}
	v.log.Info("chart saved", zap.String("path", path))
	return path, nil
}

func (v *Visualizer) save(lib *library.Library, suffix string, render func(*library.Library) ([]byte, error)) (string, error) {
	png, err := render(lib)
	if err != nil {
		return "", err
	}
	path := filepath.Join(v.dir, FileName(lib.Name, suffix))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("writing chart: %w", err)
	}
	v.log.Info("chart saved", zap.String("path", path))
	return path, nil
}

// FileName derives a chart filename from a library name: spaces become
// underscores and the suffix names the chart kind.
func FileName(libraryName, suffix string) string {
	return fmt.Sprintf("%s_%s.png", strings.ReplaceAll(libraryName, " ", "_"), suffix)
}
