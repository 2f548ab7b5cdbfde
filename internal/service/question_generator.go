package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

// QuestionGenerator builds one fill-in-the-blank question per glossary term.
type QuestionGenerator struct {
	options *OptionGenerator
	marker  string
	leadIn  *regexp.Regexp
	logger  *zap.Logger
}

// NewQuestionGenerator creates a generator that blanks terms with marker.
// An empty marker falls back to entities.DefaultBlankMarker.
func NewQuestionGenerator(options *OptionGenerator, marker string, logger *zap.Logger) *QuestionGenerator {
	if options == nil {
		options = NewOptionGenerator(nil)
	}
	if marker == "" {
		marker = entities.DefaultBlankMarker
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QuestionGenerator{
		options: options,
		marker:  marker,
		leadIn:  regexp.MustCompile(`(?i)^(?:to|when\s+you|if\s+you)\s+` + regexp.QuoteMeta(marker)),
		logger:  logger,
	}
}

// Marker returns the blank marker used in prompts.
func (g *QuestionGenerator) Marker() string {
	return g.marker
}

// Generate returns questions in glossary order. An empty glossary yields no questions.
func (g *QuestionGenerator) Generate(glossary *entities.Glossary) []entities.Question {
	terms := glossary.Terms()
	questions := make([]entities.Question, 0, len(terms))

	for term, definition := range glossary.All() {
		prompt := g.trimLeadIn(blankTerm(definition, term, g.marker))
		options, correctIndex := g.options.GenerateOptions(term, terms)

		q := entities.Question{
			Prompt:       prompt,
			Options:      options,
			CorrectIndex: correctIndex,
			Answer:       term,
		}
		if !q.HasBlank(g.marker) {
			g.logger.Debug("definition does not mention its term", zap.String("term", string(term)))
		}

		questions = append(questions, q)
	}

	return questions
}

// trimLeadIn drops "to", "when you" or "if you" when it directly precedes the blank
// at the start of the prompt.
func (g *QuestionGenerator) trimLeadIn(prompt string) string {
	loc := g.leadIn.FindStringIndex(prompt)
	if loc == nil {
		return prompt
	}
	return g.marker + prompt[loc[1]:]
}

// blankTerm replaces every case-insensitive whole-word occurrence of term in text with marker.
func blankTerm(text string, term entities.Term, marker string) string {
	if term == "" {
		return text
	}

	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(string(term)))

	var b strings.Builder
	last, pos := 0, 0
	for pos <= len(text) {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if isWordBoundary(text, start, end) {
			b.WriteString(text[last:start])
			b.WriteString(marker)
			last, pos = end, end
			continue
		}

		// Retry one rune further so overlapping candidates are not skipped.
		_, size := utf8.DecodeRuneInString(text[start:])
		if size == 0 {
			break
		}
		pos = start + size
	}

	if last == 0 {
		return text
	}
	b.WriteString(text[last:])

	return b.String()
}

// isWordBoundary reports whether text[start:end] is not glued to word characters.
func isWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
