package telegram

import (
	"errors"
	"testing"
)

func TestAnswerCallbackRoundTrip(t *testing.T) {
	data := buildAnswerCallback(3, 12, 2)
	if data != "answer:3:12:2" {
		t.Fatalf("encoded = %q", data)
	}

	ac, err := parseAnswerCallback(decodeCallback(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ac != (answerCallback{Round: 3, Question: 12, Option: 2}) {
		t.Fatalf("parsed = %+v", ac)
	}
}

func TestParseAnswerCallback_Invalid(t *testing.T) {
	for _, data := range []string{"answer", "answer:1:2", "answer:1:x:2", "shuffle:1:2:3", "answer:1:2:3:4"} {
		if _, err := parseAnswerCallback(decodeCallback(data)); !errors.Is(err, errInvalidCallback) {
			t.Errorf("%q: err = %v, want errInvalidCallback", data, err)
		}
	}
}

func TestDecodeCallback_NoParams(t *testing.T) {
	cd := decodeCallback(buildShuffleCallback())
	if cd.Action != actionShuffle || len(cd.Params) != 0 {
		t.Fatalf("decoded = %+v", cd)
	}
	if buildRestartCallback() != actionRestart {
		t.Fatalf("restart callback = %q", buildRestartCallback())
	}
}
