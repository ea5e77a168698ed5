// Package generate orchestrates the generation pipeline: ask the model for
// library JSON, strip markdown artifacts, parse, and schema-validate into a
// domain object. Each stage can fail independently; the caller receives a
// single error with the raw offending text preserved for diagnostics.
package generate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jamshu/librarium/library"
	"github.com/jamshu/librarium/respclean"
)

// TextGenerator is the capability the pipeline needs from a text-generation
// backend. gemini.Client satisfies it; tests substitute a fake.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateLibrary(ctx context.Context, numBooks int) (string, error)
	TestConnection(ctx context.Context) error
}

// DataError reports a cleaning, parsing, or schema-validation failure with
// the raw model output attached.
type DataError struct {
	Raw   string
	Cause error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("processing model response: %v", e.Cause)
}

func (e *DataError) Unwrap() error {
	return e.Cause
}

// Pipeline runs the generate → clean → validate workflow.
type Pipeline struct {
	gen TextGenerator
	log *zap.Logger
}

// New creates a Pipeline. A nil logger disables logging.
func New(gen TextGenerator, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{gen: gen, log: log}
}

// Library generates and validates one library of numBooks books. No stage
// is retried: on failure the caller gets either an upstream error from the
// generator or a *DataError carrying the raw text.
func (p *Pipeline) Library(ctx context.Context, numBooks int) (*library.Library, error) {
	run := uuid.NewString()
	log := p.log.With(zap.String("run", run), zap.Int("books", numBooks))

	log.Info("generating library data")
	raw, err := p.gen.GenerateLibrary(ctx, numBooks)
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return nil, fmt.Errorf("generating library data: %w", err)
	}

	lib, err := parse(raw)
	if err != nil {
		log.Error("response rejected", zap.Error(err), zap.String("raw", raw))
		return nil, err
	}

	log.Info("library validated",
		zap.String("name", lib.Name),
		zap.Int("parsed_books", len(lib.Books)))
	return lib, nil
}

// ParseJSON runs the clean → validate path on caller-supplied text, e.g. a
// saved response or a file being reloaded.
func (p *Pipeline) ParseJSON(text string) (*library.Library, error) {
	return parse(text)
}

// TestConnection probes the backend.
func (p *Pipeline) TestConnection(ctx context.Context) error {
	return p.gen.TestConnection(ctx)
}

func parse(raw string) (*library.Library, error) {
	cleaned, err := respclean.Strip(raw)
	if err != nil {
		return nil, &DataError{Raw: raw, Cause: err}
	}

	// Structural check first so a non-object payload fails with a shape
	// error rather than a field-by-field validation report.
	if _, err := respclean.ParseObject(cleaned); err != nil {
		return nil, &DataError{Raw: raw, Cause: err}
	}

	lib, err := library.ParseLibrary(cleaned)
	if err != nil {
		return nil, &DataError{Raw: raw, Cause: err}
	}
	return lib, nil
}
