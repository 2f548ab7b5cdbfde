package entities

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("glossary source unavailable")
	ErrOutOfRange        = errors.New("index out of range")
)

// SourceUnavailableError reports that raw glossary text could not be obtained.
// It is fatal for the session being started; the caller retries the whole load.
type SourceUnavailableError struct {
	Source string // human-readable source description (path, URL, table row)
	Err    error  // underlying cause
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("glossary source %q unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceUnavailableError wraps err as a SourceUnavailableError.
func NewSourceUnavailableError(source string, err error) *SourceUnavailableError {
	return &SourceUnavailableError{Source: source, Err: err}
}

// IndexKind names which index of an answer call was invalid.
type IndexKind string

const (
	IndexQuestion IndexKind = "question"
	IndexOption   IndexKind = "option"
)

// OutOfRangeError reports a question or option index outside its bounds.
type OutOfRangeError struct {
	Kind  IndexKind
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Kind, e.Index, e.Len)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Reasons a glossary entry was dropped.
const (
	ReasonMissingDefinition = "missing definition"
	ReasonEmptyDefinition   = "empty definition"
	ReasonOrphanDefinition  = "orphan definition"
)

// MalformedEntryWarning describes an entry the parser dropped.
// It is a diagnostic only and never interrupts parsing.
type MalformedEntryWarning struct {
	Term   Term   // pending term, empty for orphan definitions
	Line   int    // 1-based line number where the problem was detected
	Reason string // one of the Reason* constants
}

func (w *MalformedEntryWarning) Error() string {
	if w.Term == "" {
		return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
	}
	return fmt.Sprintf("line %d: term %q: %s", w.Line, w.Term, w.Reason)
}
