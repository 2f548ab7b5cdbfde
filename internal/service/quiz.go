package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

var ErrNoQuestionsAvailable = errors.New("no questions available")

// LoadResult is the outcome of one load-parse-generate run.
type LoadResult struct {
	Session  *entities.QuizSession
	Glossary *entities.Glossary
	Warnings []*entities.MalformedEntryWarning
}

// QuizService runs the glossary pipeline and builds quiz sessions.
type QuizService struct {
	source    GlossarySource
	parser    *GlossaryParser
	generator *QuestionGenerator
	shuffle   bool
	newRNG    func() *rand.Rand
	logger    *zap.Logger
}

// Option configures a QuizService.
type Option func(*QuizService)

// WithShuffle makes Load shuffle the question order of new sessions.
func WithShuffle(shuffle bool) Option {
	return func(s *QuizService) { s.shuffle = shuffle }
}

// WithRand sets the random source factory used for new sessions.
func WithRand(newRNG func() *rand.Rand) Option {
	return func(s *QuizService) { s.newRNG = newRNG }
}

func NewQuizService(
	source GlossarySource,
	parser *GlossaryParser,
	generator *QuestionGenerator,
	logger *zap.Logger,
	opts ...Option,
) *QuizService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &QuizService{
		source:    source,
		parser:    parser,
		generator: generator,
		logger:    logger,
		newRNG:    func() *rand.Rand { return nil },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Marker returns the blank marker used by generated prompts.
func (s *QuizService) Marker() string {
	return s.generator.Marker()
}

// Load fetches the glossary, parses it and returns a fresh session.
// A source failure is returned unchanged and no result is produced.
// When parsing yields no questions, the result is returned together with
// ErrNoQuestionsAvailable so callers can still report dropped entries.
func (s *QuizService) Load(ctx context.Context) (*LoadResult, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("failed to fetch glossary",
			zap.String("source", s.source.Name()),
			zap.Error(err),
		)
		return nil, err
	}

	glossary, warnings := s.parser.Parse(raw)
	questions := s.generator.Generate(glossary)

	result := &LoadResult{
		Glossary: glossary,
		Warnings: warnings,
		Session:  entities.NewQuizSession(questions, s.newRNG()),
	}

	s.logger.Info("quiz session loaded",
		zap.String("source", s.source.Name()),
		zap.Int("terms", glossary.Len()),
		zap.Int("questions", len(questions)),
		zap.Int("warnings", len(warnings)),
	)

	if len(questions) == 0 {
		return result, fmt.Errorf("%s: %w", s.source.Name(), ErrNoQuestionsAvailable)
	}

	if s.shuffle {
		result.Session.ShuffleQuestions()
	}

	return result, nil
}
