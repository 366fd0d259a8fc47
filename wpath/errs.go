package wpath

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedBracket = errors.New("unterminated '['")
	ErrUnterminatedQuote   = errors.New("unterminated quoted key")
	ErrUnexpectedBracket   = errors.New("unexpected ']'")
	ErrTrailingCharacters  = errors.New("characters between closing quote and ']'")
)

// SyntaxError reports where a strict Parse gave up.
type SyntaxError struct {
	Path   string
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path %q: %v at offset %d", e.Path, e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxError(path string, offset int, err error) error {
	return &SyntaxError{Path: path, Offset: offset, Err: err}
}
