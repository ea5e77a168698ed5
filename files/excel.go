package files

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jamshu/librarium/catalog"
)

const (
	allBooksSheet    = "All Books"
	genreCountsSheet = "Genre Counts"

	// Excel limits sheet names to 31 characters.
	maxSheetName = 31
)

// SaveWorkbook writes catalogs to an XLSX workbook: one sheet per catalog,
// an aggregate "All Books" sheet, and a "Genre Counts" sheet. Returns the
// written path.
func (m *Manager) SaveWorkbook(catalogs []*catalog.Catalog, filename string) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header := []any{"Title", "Author", "Genre", "Pages", "Rating"}

	for _, c := range catalogs {
		sheet := sheetName(c.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("creating sheet %q: %w", sheet, err)
		}
		if err := writeBookRows(f, sheet, header, c.Books); err != nil {
			return "", err
		}
	}

	if _, err := f.NewSheet(allBooksSheet); err != nil {
		return "", fmt.Errorf("creating sheet %q: %w", allBooksSheet, err)
	}
	var all []catalog.Book
	var owners []string
	for _, c := range catalogs {
		for _, b := range c.Books {
			all = append(all, b)
			owners = append(owners, c.Name)
		}
	}
	if err := writeAllBooks(f, all, owners); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(genreCountsSheet); err != nil {
		return "", fmt.Errorf("creating sheet %q: %w", genreCountsSheet, err)
	}
	if err := writeGenreCounts(f, catalog.GenreCounts(catalogs)); err != nil {
		return "", err
	}

	// Drop the default sheet so the workbook opens on real data.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("removing default sheet: %w", err)
	}

	path := filepath.Join(m.dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}

	m.log.Info("workbook saved",
		zap.String("path", path),
		zap.Int("catalogs", len(catalogs)),
		zap.Int("books", len(all)))
	return path, nil
}

func writeBookRows(f *excelize.File, sheet string, header []any, books []catalog.Book) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header on %q: %w", sheet, err)
	}
	for i, b := range books {
		row := []any{b.Title, b.Author, b.Genre, b.Pages, b.Rating}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d on %q: %w", i+2, sheet, err)
		}
	}
	return nil
}

func writeAllBooks(f *excelize.File, books []catalog.Book, owners []string) error {
	header := []any{"Library", "Title", "Author", "Genre", "Pages", "Rating"}
	if err := f.SetSheetRow(allBooksSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header on %q: %w", allBooksSheet, err)
	}
	for i, b := range books {
		row := []any{owners[i], b.Title, b.Author, b.Genre, b.Pages, b.Rating}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(allBooksSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d on %q: %w", i+2, allBooksSheet, err)
		}
	}
	return nil
}

func writeGenreCounts(f *excelize.File, counts map[string]int) error {
	header := []any{"Genre", "Count"}
	if err := f.SetSheetRow(genreCountsSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header on %q: %w", genreCountsSheet, err)
	}

	genres := make([]string, 0, len(counts))
	for g := range counts {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	for i, g := range genres {
		row := []any{g, counts[g]}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(genreCountsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d on %q: %w", i+2, genreCountsSheet, err)
		}
	}
	return nil
}

// sheetName makes a catalog name safe for use as an Excel sheet name.
func sheetName(name string) string {
	replacer := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")")
	s := replacer.Replace(name)
	if len(s) > maxSheetName {
		s = s[:maxSheetName]
	}
	if s == "" {
		s = "Catalog"
	}
	return s
}
