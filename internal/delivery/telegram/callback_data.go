package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionAnswer  = "answer"
	actionShuffle = "shuffle"
	actionRestart = "restart"
)

var errInvalidCallback = errors.New("invalid callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// answerCallback identifies one option button.
type answerCallback struct {
	Round    int
	Question int
	Option   int
}

func buildAnswerCallback(round, question, option int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{
			strconv.Itoa(round),
			strconv.Itoa(question),
			strconv.Itoa(option),
		},
	}.encode()
}

// parseAnswerCallback decodes the parameters of an answer callback.
// Index range is not checked here; the quiz session does that.
func parseAnswerCallback(cd callbackData) (answerCallback, error) {
	if cd.Action != actionAnswer || len(cd.Params) != 3 {
		return answerCallback{}, errInvalidCallback
	}

	var nums [3]int
	for i, p := range cd.Params {
		n, err := strconv.Atoi(p)
		if err != nil {
			return answerCallback{}, errInvalidCallback
		}
		nums[i] = n
	}

	return answerCallback{Round: nums[0], Question: nums[1], Option: nums[2]}, nil
}

func buildShuffleCallback() string {
	return callbackData{Action: actionShuffle}.encode()
}

func buildRestartCallback() string {
	return callbackData{Action: actionRestart}.encode()
}
