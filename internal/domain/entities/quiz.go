package entities

import (
	"math/rand"
	"time"
)

// QuizSession owns the working list of questions for one quiz run.
// It is single-writer and is not safe for concurrent use.
type QuizSession struct {
	questions []Question
	rng       *rand.Rand
}

// NewQuizSession creates a session over a copy of questions.
// A nil rng is replaced with a time-seeded source.
func NewQuizSession(questions []Question, rng *rand.Rand) *QuizSession {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &QuizSession{
		questions: append([]Question(nil), questions...),
		rng:       rng,
	}
}

// Len returns the number of questions.
func (qs *QuizSession) Len() int {
	return len(qs.questions)
}

// Questions returns a copy of the questions in their current order.
func (qs *QuizSession) Questions() []Question {
	return append([]Question(nil), qs.questions...)
}

// Question returns the question at index i.
func (qs *QuizSession) Question(i int) (Question, error) {
	if i < 0 || i >= len(qs.questions) {
		return Question{}, &OutOfRangeError{Kind: IndexQuestion, Index: i, Len: len(qs.questions)}
	}
	return qs.questions[i], nil
}

// ShuffleQuestions re-orders the questions uniformly at random.
func (qs *QuizSession) ShuffleQuestions() {
	qs.rng.Shuffle(len(qs.questions), func(i, j int) {
		qs.questions[i], qs.questions[j] = qs.questions[j], qs.questions[i]
	})
}

// CheckAnswer evaluates selectedIndex against the question at questionIndex.
// Both indexes must be in range; a negative selectedIndex (nothing selected)
// is rejected like any other invalid index. The session is not modified.
func (qs *QuizSession) CheckAnswer(questionIndex, selectedIndex int) (AnswerVerdict, error) {
	q, err := qs.Question(questionIndex)
	if err != nil {
		return AnswerVerdict{}, err
	}

	if selectedIndex < 0 || selectedIndex >= len(q.Options) {
		return AnswerVerdict{}, &OutOfRangeError{Kind: IndexOption, Index: selectedIndex, Len: len(q.Options)}
	}

	return AnswerVerdict{
		SelectedIndex: selectedIndex,
		CorrectIndex:  q.CorrectIndex,
		IsCorrect:     selectedIndex == q.CorrectIndex,
	}, nil
}
