// Package library defines the schema-validated domain model: a Library is a
// named, ordered collection of Book records. Construction is all-or-nothing:
// callers receive either a value satisfying every field invariant or a
// ValidationError listing every violated field.
package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// MinYear is the earliest accepted publication year. The upper bound is the
// current calendar year, evaluated at validation time.
const MinYear = 1000

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Publication year must fall in [MinYear, current year].
	_ = v.RegisterValidation("pubyear", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= MinYear && year <= time.Now().Year()
	})
	return v
}

// Book is a single validated bibliographic record. Immutable once validated.
type Book struct {
	Title  string `json:"title" validate:"required" jsonschema:"required,minLength=1,description=Book title"`
	Author string `json:"author" validate:"required" jsonschema:"required,minLength=1,description=Author name"`
	Year   int    `json:"year" validate:"pubyear" jsonschema:"required,minimum=1000,description=Publication year"`
}

// NewBook validates and constructs a Book. Title and author are stripped of
// surrounding whitespace before validation, so a blank-only string fails the
// non-empty requirement.
func NewBook(title, author string, year int) (Book, error) {
	b := Book{Title: title, Author: author, Year: year}
	b.normalize()
	if err := validate.Struct(b); err != nil {
		return Book{}, wrapValidation(err)
	}
	return b, nil
}

func (b *Book) normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
}

func (b Book) String() string {
	return fmt.Sprintf("'%s' by %s (%d)", b.Title, b.Author, b.Year)
}

// Library is a named collection of books, the unit of generation, storage,
// and analysis.
type Library struct {
	Name  string `json:"name" validate:"required" jsonschema:"required,minLength=1,description=Library name"`
	Books []Book `json:"books" validate:"dive" jsonschema:"required,description=List of books in the library"`
}

// New validates and constructs a Library. One invalid book rejects the whole
// library; there is no partial construction.
func New(name string, books []Book) (*Library, error) {
	lib := &Library{Name: name, Books: books}
	lib.normalize()
	if err := validate.Struct(lib); err != nil {
		return nil, wrapValidation(err)
	}
	return lib, nil
}

// ParseLibrary builds a Library from cleaned JSON text, applying full schema
// validation. The input must already be fence-free; see package respclean.
func ParseLibrary(jsonText string) (*Library, error) {
	var lib Library
	if err := json.UnmarshalFromString(jsonText, &lib); err != nil {
		return nil, fmt.Errorf("decoding library JSON: %w", err)
	}
	lib.normalize()
	if err := validate.Struct(&lib); err != nil {
		return nil, wrapValidation(err)
	}
	return &lib, nil
}

// AddBook validates book and appends it to the library.
func (l *Library) AddBook(title, author string, year int) error {
	b, err := NewBook(title, author, year)
	if err != nil {
		return err
	}
	l.Books = append(l.Books, b)
	return nil
}

// JSON serializes the library with 4-space indentation, the on-disk format.
func (l *Library) JSON() (string, error) {
	out, err := json.MarshalIndent(l, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encoding library: %w", err)
	}
	return string(out), nil
}

func (l *Library) normalize() {
	l.Name = strings.TrimSpace(l.Name)
	for i := range l.Books {
		l.Books[i].normalize()
	}
}

func (l *Library) String() string {
	return fmt.Sprintf("%s (%d books)", l.Name, len(l.Books))
}
