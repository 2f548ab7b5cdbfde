package telegram

import (
	"context"

	"go.uber.org/zap"
)

// quizHandler loads a fresh quiz for the chat and sends its first question.
func (h *Handler) quizHandler(ctx context.Context, chatID int64) error {
	result, err := h.quizService.Load(ctx)
	if result != nil && len(result.Warnings) > 0 {
		h.send(newHTMLMessage(chatID, warningsText(result.Warnings)))
	}
	if err != nil {
		return err
	}

	h.quizStorage.Store(chatID, result.Session)
	h.logger.Info("quiz started",
		zap.Int64("chat_id", chatID),
		zap.Int("questions", result.Session.Len()),
	)

	h.sendQuestion(chatID)
	return nil
}

// shuffleHandler re-orders the chat's quiz and starts it over.
func (h *Handler) shuffleHandler(_ context.Context, chatID int64) error {
	quiz, ok := h.quizStorage.Get(chatID)
	if !ok {
		h.send(newHTMLMessage(chatID, msgNoQuiz))
		return nil
	}

	quiz.Session.ShuffleQuestions()
	h.quizStorage.Rewind(chatID)

	h.sendQuestion(chatID)
	return nil
}

// stopHandler ends the chat's quiz and releases its session.
func (h *Handler) stopHandler(_ context.Context, chatID int64) error {
	if _, ok := h.quizStorage.Get(chatID); !ok {
		h.send(newHTMLMessage(chatID, msgNoQuiz))
		return nil
	}

	h.quizStorage.Delete(chatID)
	h.logger.Info("quiz stopped", zap.Int64("chat_id", chatID))

	h.send(newHTMLMessage(chatID, msgStopped))
	return nil
}

// sendQuestion sends the chat's next unanswered question, or the final message.
func (h *Handler) sendQuestion(chatID int64) {
	quiz, ok := h.quizStorage.Get(chatID)
	if !ok {
		h.send(newHTMLMessage(chatID, msgNoQuiz))
		return
	}

	total := quiz.Session.Len()
	if quiz.Next >= total {
		msg := newHTMLMessage(chatID, finishedText(total))
		msg.ReplyMarkup = buildQuizResultKeyboard()
		h.send(msg)
		return
	}

	q, err := quiz.Session.Question(quiz.Next)
	if err != nil {
		h.logger.Error("get question", zap.Int64("chat_id", chatID), zap.Error(err))
		h.sendError(chatID, msgInternalError)
		return
	}

	msg := newHTMLMessage(chatID, questionText(q, quiz.Next, total, h.quizService.Marker()))
	msg.ReplyMarkup = buildQuizAnswerKeyboard(q, quiz.Round, quiz.Next)
	h.send(msg)
}
