// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/glossary-quiz/internal/service"
)

const msgWelcome = "<b>Glossary quiz</b>\n\n" +
	"Each question shows a definition with its term blanked out. Pick the missing term.\n\n" +
	"/quiz — start a new quiz\n" +
	"/shuffle — shuffle the current quiz and start over\n" +
	"/stop — end the current quiz\n" +
	"/help — show this message"

const (
	msgUseCommands     = "Use /quiz to start a quiz or /help for the list of commands."
	msgUnknownCommand  = "Unknown command. Available commands:\n\n/quiz — start a new quiz\n/shuffle — shuffle the current quiz\n/stop — end the current quiz\n/help — help"
	msgInternalError   = "Something went wrong. Please try again later."
	msgNoQuiz          = "There is no active quiz. Send /quiz to start one."
	msgStaleQuestion   = "This question belongs to an earlier round."
	msgInvalidQuestion = "This question is no longer available."
	msgAlreadyAnswered = "You have already answered this question."
	msgStopped         = "Quiz ended. Send /quiz to start a new one."
)

// Load failures get distinct guidance.
const (
	msgSourceUnavailable = "The glossary could not be loaded.\n\nCheck that the glossary file or URL is reachable, then send /quiz to try again."
	msgNoQuestions       = "The glossary was loaded but contains no usable entries.\n\nEvery term needs a line of its own followed by a line like <code>term: definition</code>."
)

// errorMessage picks the reply for a failed quiz operation.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrSourceUnavailable):
		return msgSourceUnavailable
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		return msgNoQuestions
	case errors.Is(err, entities.ErrOutOfRange):
		return msgInvalidQuestion
	default:
		return msgInternalError
	}
}

// questionText renders question number i (0-based) of total.
func questionText(q entities.Question, i, total int, marker string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Question %d/%d</b>\n\n%s", i+1, total, html.EscapeString(q.Prompt))
	if !q.HasBlank(marker) {
		b.WriteString("\n\n<i>The definition does not mention its term.</i>")
	}
	return b.String()
}

// verdictText renders the locked-in state of an answered question.
func verdictText(q entities.Question, i, total int, marker string, v entities.AnswerVerdict) string {
	base := questionText(q, i, total, marker)
	correct := html.EscapeString(string(q.Options[v.CorrectIndex]))

	if v.IsCorrect {
		return fmt.Sprintf("%s\n\n✅ Correct: <b>%s</b>", base, correct)
	}

	chosen := html.EscapeString(string(q.Options[v.SelectedIndex]))
	return fmt.Sprintf("%s\n\n❌ You chose <b>%s</b>. The answer is <b>%s</b>.", base, chosen, correct)
}

// finishedText is sent after the last question has been answered.
func finishedText(total int) string {
	return fmt.Sprintf("That was the last of %d questions. Send /quiz for a fresh quiz or /shuffle to go again.", total)
}

// warningsText summarizes glossary entries skipped while parsing.
func warningsText(warnings []*entities.MalformedEntryWarning) string {
	if len(warnings) == 0 {
		return ""
	}

	const maxListed = 5

	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ %d glossary entries were skipped:", len(warnings))
	for i, w := range warnings {
		if i == maxListed {
			fmt.Fprintf(&b, "\n…and %d more", len(warnings)-maxListed)
			break
		}
		b.WriteString("\n• ")
		b.WriteString(html.EscapeString(w.Error()))
	}
	return b.String()
}
