package storage

import (
	"sync"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

// ChatQuiz is the state of one chat's quiz: the session and the question shown next.
// Round changes whenever the question order is replaced, so answers to
// questions from an older order can be told apart.
type ChatQuiz struct {
	Session *entities.QuizSession
	Next    int
	Round   int

	answered map[int]struct{}
}

// QuizStorage provides in-memory storage for quiz sessions by chat ID.
// Each chat owns an independent session; nothing is shared between them.
// Rounds come from one counter, so a chat that stops and starts again
// never reuses a round number.
type QuizStorage struct {
	mu        sync.RWMutex
	quizzes   map[int64]*ChatQuiz
	lastRound int
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		quizzes: make(map[int64]*ChatQuiz),
	}
}

// Store saves a fresh session for chatID, replacing any previous one.
func (s *QuizStorage) Store(chatID int64, session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRound++
	s.quizzes[chatID] = &ChatQuiz{
		Session:  session,
		Round:    s.lastRound,
		answered: make(map[int]struct{}),
	}
}

// Get retrieves the quiz for chatID.
func (s *QuizStorage) Get(chatID int64) (*ChatQuiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quizzes[chatID]
	return q, ok
}

// MarkAnswered records question as answered in round and moves the chat's
// pointer past it. It returns the new pointer and false when the chat has no
// quiz, the round is over, or the question was already answered.
// Answering an earlier question does not move the pointer back.
func (s *QuizStorage) MarkAnswered(chatID int64, round, question int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[chatID]
	if !ok || q.Round != round {
		return 0, false
	}
	if _, done := q.answered[question]; done {
		return q.Next, false
	}
	q.answered[question] = struct{}{}
	if question+1 > q.Next {
		q.Next = question + 1
	}
	return q.Next, true
}

// Rewind resets the chat's pointer to the first question and starts a new round.
// It returns the new round, or 0 when the chat has no quiz.
func (s *QuizStorage) Rewind(chatID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[chatID]
	if !ok {
		return 0
	}
	s.lastRound++
	q.Next = 0
	q.Round = s.lastRound
	q.answered = make(map[int]struct{})
	return q.Round
}

// Delete removes the quiz for chatID.
func (s *QuizStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, chatID)
}
