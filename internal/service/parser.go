package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

// parserState is the state of the glossary line machine.
type parserState int

const (
	awaitingTerm parserState = iota
	awaitingDefinition
)

// GlossaryParser converts alternating term / "label: definition" lines into a Glossary.
type GlossaryParser struct {
	logger *zap.Logger
}

// NewGlossaryParser creates a parser. A nil logger discards diagnostics.
func NewGlossaryParser(logger *zap.Logger) *GlossaryParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GlossaryParser{logger: logger}
}

// Parse reads raw glossary text. Lines without a colon are term lines and are
// only accepted while no term is pending. Lines with a colon define the pending
// term with the text after the first colon. Blank lines are skipped.
// Dropped entries are logged and returned as warnings; Parse never fails.
func (p *GlossaryParser) Parse(raw string) (*entities.Glossary, []*entities.MalformedEntryWarning) {
	var (
		glossary = entities.NewGlossary()
		warnings []*entities.MalformedEntryWarning
		state    = awaitingTerm
		pending  entities.Term
		termLine int
	)

	warn := func(w *entities.MalformedEntryWarning) {
		p.logger.Warn("glossary entry dropped",
			zap.String("term", string(w.Term)),
			zap.Int("line", w.Line),
			zap.String("reason", w.Reason),
		)
		warnings = append(warnings, w)
	}

	for i, line := range strings.Split(raw, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		_, definition, isDefinition := strings.Cut(line, ":")
		if !isDefinition {
			if state == awaitingTerm {
				pending = entities.NormalizeTerm(line)
				termLine = lineNo
				state = awaitingDefinition
			}
			continue
		}

		if state == awaitingTerm {
			warn(&entities.MalformedEntryWarning{Line: lineNo, Reason: entities.ReasonOrphanDefinition})
			continue
		}

		if !glossary.Set(pending, definition) {
			warn(&entities.MalformedEntryWarning{Term: pending, Line: lineNo, Reason: entities.ReasonEmptyDefinition})
		}
		pending = ""
		state = awaitingTerm
	}

	if state == awaitingDefinition {
		warn(&entities.MalformedEntryWarning{Term: pending, Line: termLine, Reason: entities.ReasonMissingDefinition})
	}

	p.logger.Debug("glossary parsed",
		zap.Int("terms", glossary.Len()),
		zap.Int("warnings", len(warnings)),
	)

	return glossary, warnings
}
