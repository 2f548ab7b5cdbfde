package entities

import "strings"

// DefaultBlankMarker replaces the answer term inside a question prompt.
const DefaultBlankMarker = "_____"

// Question is a fill-in-the-blank question built from one glossary entry.
type Question struct {
	Prompt       string // definition with the answer term blanked out
	Options      []Term // distinct candidate terms, exactly one equals Answer
	CorrectIndex int    // position of Answer in Options
	Answer       Term
}

// HasBlank reports whether the prompt contains marker.
// Definitions that never repeat their term produce prompts without a blank.
func (q Question) HasBlank(marker string) bool {
	return strings.Contains(q.Prompt, marker)
}

// AnswerVerdict is the result of checking one submitted answer.
type AnswerVerdict struct {
	SelectedIndex int
	CorrectIndex  int
	IsCorrect     bool
}
