package storage

import (
	"testing"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

func newSession() *entities.QuizSession {
	return entities.NewQuizSession([]entities.Question{{Answer: "a"}, {Answer: "b"}}, nil)
}

func TestQuizStorage_Rounds(t *testing.T) {
	s := NewQuizStorage()

	s.Store(1, newSession())
	q, ok := s.Get(1)
	if !ok || q.Round != 1 || q.Next != 0 {
		t.Fatalf("after Store: %+v, %v", q, ok)
	}

	if round := s.Rewind(1); round != 2 {
		t.Fatalf("Rewind = %d, want 2", round)
	}

	s.Store(1, newSession())
	q, _ = s.Get(1)
	if q.Round != 3 {
		t.Fatalf("Round after second Store = %d, want 3", q.Round)
	}
}

func TestQuizStorage_MarkAnswered(t *testing.T) {
	s := NewQuizStorage()
	s.Store(1, newSession())

	next, ok := s.MarkAnswered(1, 1, 0)
	if !ok || next != 1 {
		t.Fatalf("first answer = %d, %v; want 1, true", next, ok)
	}

	if next, ok := s.MarkAnswered(1, 1, 0); ok || next != 1 {
		t.Fatalf("repeated answer = %d, %v; want 1, false", next, ok)
	}

	if _, ok := s.MarkAnswered(1, 7, 1); ok {
		t.Fatalf("answer from another round was accepted")
	}

	round := s.Rewind(1)
	q, _ := s.Get(1)
	if q.Next != 0 {
		t.Fatalf("Next after Rewind = %d", q.Next)
	}
	if _, ok := s.MarkAnswered(1, round, 0); !ok {
		t.Fatalf("question 0 not answerable after Rewind")
	}
}

func TestQuizStorage_EarlierAnswerKeepsPointer(t *testing.T) {
	s := NewQuizStorage()
	s.Store(1, newSession())

	s.MarkAnswered(1, 1, 1)
	if next, ok := s.MarkAnswered(1, 1, 0); !ok || next != 2 {
		t.Fatalf("earlier answer = %d, %v; want 2, true", next, ok)
	}
}

func TestQuizStorage_DeleteKeepsRoundsUnique(t *testing.T) {
	s := NewQuizStorage()

	s.Store(42, newSession())
	s.Delete(42)
	if _, ok := s.Get(42); ok {
		t.Fatalf("Delete did not remove the quiz")
	}
	if _, ok := s.MarkAnswered(42, 1, 0); ok {
		t.Fatalf("answer accepted for a deleted quiz")
	}
	if s.Rewind(42) != 0 {
		t.Fatalf("Rewind of a deleted quiz should report zero")
	}

	s.Store(42, newSession())
	q, _ := s.Get(42)
	if q.Round == 1 {
		t.Fatalf("round 1 reused after Delete")
	}
}
