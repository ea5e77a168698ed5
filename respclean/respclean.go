// Package respclean normalizes raw text returned by a text-generation API
// into something safe to hand to a JSON parser. Models frequently wrap JSON
// payloads in a markdown fenced code block despite being told not to; this
// package strips exactly one leading and one trailing fence marker.
package respclean

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	taggedFence = "```json"
	bareFence   = "```"
)

// ErrEmptyInput is returned when the response text is empty or all whitespace.
var ErrEmptyInput = errors.New("response text is empty")

// ErrNotAnObject is returned when the top-level JSON value is not an object.
var ErrNotAnObject = errors.New("JSON must be an object, not an array or primitive")

// SyntaxError wraps the parser diagnostic for malformed JSON.
type SyntaxError struct {
	Cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed JSON: %v", e.Cause)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Strip removes markdown fence markers from a model response.
// It is a pure function and idempotent on already-clean text: at most one
// leading fence (tagged or bare) and one trailing fence are removed, and the
// result is re-trimmed. The output is not guaranteed to be valid JSON.
func Strip(text string) (string, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return "", ErrEmptyInput
	}

	if rest, ok := strings.CutPrefix(cleaned, taggedFence); ok {
		cleaned = rest
	} else if rest, ok := strings.CutPrefix(cleaned, bareFence); ok {
		cleaned = rest
	}

	if rest, ok := strings.CutSuffix(cleaned, bareFence); ok {
		cleaned = rest
	}

	return strings.TrimSpace(cleaned), nil
}

// ParseObject parses s as JSON and requires the top-level value to be an
// object. Parse failures come back as a *SyntaxError carrying the decoder's
// diagnostic; a non-object top level fails with ErrNotAnObject.
func ParseObject(s string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, &SyntaxError{Cause: err}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return obj, nil
}

// StripAndParse cleans a model response and validates its structure in one
// step. The three failure modes (empty input, malformed JSON, wrong shape)
// stay distinguishable through errors.Is / errors.As.
func StripAndParse(text string) (map[string]any, error) {
	cleaned, err := Strip(text)
	if err != nil {
		return nil, err
	}
	return ParseObject(cleaned)
}
