package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	var notice string

	cd := decodeCallback(cb.Data)
	switch cd.Action {
	case actionAnswer:
		notice = h.handleAnswerCallback(cb, cd)
	case actionShuffle:
		_ = h.withErrorHandling(h.shuffleHandler)(ctx, chatID)
	case actionRestart:
		_ = h.withErrorHandling(h.quizHandler)(ctx, chatID)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, notice)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

// handleAnswerCallback checks the chosen option, locks the question message
// into its answered state and moves on. It returns the callback notice.
func (h *Handler) handleAnswerCallback(cb *tgbotapi.CallbackQuery, cd callbackData) string {
	chatID := cb.Message.Chat.ID

	ac, err := parseAnswerCallback(cd)
	if err != nil {
		h.logger.Warn("invalid answer callback", zap.String("data", cd.Raw))
		return msgInvalidQuestion
	}

	quiz, ok := h.quizStorage.Get(chatID)
	if !ok {
		return msgNoQuiz
	}
	if ac.Round != quiz.Round {
		return msgStaleQuestion
	}

	q, err := quiz.Session.Question(ac.Question)
	if err != nil {
		h.logger.Warn("answer for unknown question",
			zap.Int64("chat_id", chatID),
			zap.Int("question", ac.Question),
			zap.Error(err),
		)
		return errorMessage(err)
	}

	verdict, err := quiz.Session.CheckAnswer(ac.Question, ac.Option)
	if err != nil {
		h.logger.Error("check answer",
			zap.Int64("chat_id", chatID),
			zap.Int("question", ac.Question),
			zap.Int("option", ac.Option),
			zap.Error(err),
		)
		return errorMessage(err)
	}

	next, first := h.quizStorage.MarkAnswered(chatID, ac.Round, ac.Question)
	if !first {
		return msgAlreadyAnswered
	}

	h.send(newHTMLEdit(chatID, cb.Message.MessageID,
		verdictText(q, ac.Question, quiz.Session.Len(), h.quizService.Marker(), verdict)))

	if next == ac.Question+1 {
		h.sendQuestion(chatID)
	}

	if verdict.IsCorrect {
		return "✅"
	}
	return "❌"
}
