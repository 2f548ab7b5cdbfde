package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Fetch(context.Context) (string, error) {
	return "", entities.NewSourceUnavailableError("broken", errors.New("connection refused"))
}

type staticSource string

func (s staticSource) Name() string { return "static" }

func (s staticSource) Fetch(context.Context) (string, error) { return string(s), nil }

func newTestService(source GlossarySource, opts ...Option) *QuizService {
	return NewQuizService(
		source,
		NewGlossaryParser(nil),
		newTestGenerator(1),
		nil,
		opts...,
	)
}

func TestQuizService_Load(t *testing.T) {
	raw := "apple\napple: A fruit. apple is red.\nbanana\nbanana: A yellow fruit.\ncherry\n"
	s := newTestService(staticSource(raw))

	result, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.Session.Len() != 2 || result.Glossary.Len() != 2 {
		t.Fatalf("session = %d questions, glossary = %d terms", result.Session.Len(), result.Glossary.Len())
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Term != "cherry" {
		t.Fatalf("warnings = %v", result.Warnings)
	}

	// Without shuffling, questions follow glossary order.
	q, _ := result.Session.Question(0)
	if q.Answer != "apple" {
		t.Fatalf("first question = %q, want apple", q.Answer)
	}

	v, err := result.Session.CheckAnswer(0, q.CorrectIndex)
	if err != nil || !v.IsCorrect {
		t.Fatalf("CheckAnswer = %+v, %v", v, err)
	}
}

func TestQuizService_LoadShuffles(t *testing.T) {
	raw := "a\na: 1\nb\nb: 2\nc\nc: 3\nd\nd: 4\ne\ne: 5\nf\nf: 6\n"

	shuffled := false
	for seed := int64(1); seed <= 5; seed++ {
		s := newTestService(staticSource(raw),
			WithShuffle(true),
			WithRand(func() *rand.Rand { return rand.New(rand.NewSource(seed)) }),
		)

		result, err := s.Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}

		seen := map[entities.Term]bool{}
		for i, q := range result.Session.Questions() {
			seen[q.Answer] = true
			if q.Answer != result.Glossary.Terms()[i] {
				shuffled = true
			}
		}
		if len(seen) != 6 {
			t.Fatalf("seed %d: questions lost in shuffle: %v", seed, seen)
		}
	}

	if !shuffled {
		t.Fatalf("questions were never shuffled")
	}
}

func TestQuizService_SourceUnavailable(t *testing.T) {
	s := newTestService(failingSource{})

	result, err := s.Load(context.Background())
	if result != nil {
		t.Fatalf("expected no result, got %+v", result)
	}
	if !errors.Is(err, entities.ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
	if errors.Is(err, ErrNoQuestionsAvailable) {
		t.Fatalf("source failure reported as empty glossary")
	}
}

func TestQuizService_NoQuestions(t *testing.T) {
	s := newTestService(staticSource("apple\nA fruit.\n"))

	result, err := s.Load(context.Background())
	if !errors.Is(err, ErrNoQuestionsAvailable) {
		t.Fatalf("err = %v, want ErrNoQuestionsAvailable", err)
	}
	if errors.Is(err, entities.ErrSourceUnavailable) {
		t.Fatalf("empty glossary reported as source failure")
	}
	if result == nil || result.Session.Len() != 0 || len(result.Warnings) != 1 {
		t.Fatalf("result = %+v", result)
	}
}
