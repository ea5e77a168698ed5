// Package files handles persistence: library JSON, analysis CSV, and catalog
// spreadsheets, all written under a single output directory. Writes are
// whole-file overwrites with no concurrent-writer protection.
package files

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/jamshu/librarium/library"
	"github.com/jamshu/librarium/respclean"
)

// Manager performs file I/O rooted at an output directory.
type Manager struct {
	dir string
	log *zap.Logger
}

// NewManager creates a Manager, creating the output directory if needed.
// A nil logger disables logging.
func NewManager(outputDir string, log *zap.Logger) (*Manager, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{dir: outputDir, log: log}, nil
}

// Dir returns the output directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// SaveLibraryJSON writes the library as 4-space-indented JSON and returns
// the written path.
func (m *Manager) SaveLibraryJSON(lib *library.Library, filename string) (string, error) {
	content, err := lib.JSON()
	if err != nil {
		return "", err
	}

	path := filepath.Join(m.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing library JSON: %w", err)
	}

	m.log.Info("library saved", zap.String("path", path), zap.Int("books", len(lib.Books)))
	return path, nil
}

// LoadLibraryJSON reads a saved library back through the full clean/validate
// pipeline, so a hand-edited file that violates the schema is rejected the
// same way a bad model response would be.
func (m *Manager) LoadLibraryJSON(filename string) (*library.Library, error) {
	path := filepath.Join(m.dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading library file: %w", err)
	}

	cleaned, err := respclean.Strip(string(data))
	if err != nil {
		return nil, err
	}

	lib, err := library.ParseLibrary(cleaned)
	if err != nil {
		return nil, err
	}

	m.log.Info("library loaded", zap.String("path", path), zap.Int("books", len(lib.Books)))
	return lib, nil
}

// SaveCSV writes tabular rows to a CSV file and returns the written path.
func (m *Manager) SaveCSV(rows [][]string, filename string) (string, error) {
	path := filepath.Join(m.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("writing CSV: %w", err)
	}

	m.log.Info("CSV saved", zap.String("path", path), zap.Int("rows", len(rows)))
	return path, nil
}

// List returns the names of output files matching the glob pattern, sorted.
// An empty pattern lists everything.
func (m *Manager) List(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("listing output directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, e.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
