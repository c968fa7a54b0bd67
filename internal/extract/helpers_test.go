package extract

import (
	"testing"

	"quizdeck/internal/question"
)

// assertValid fails the test when any question breaks the model invariants.
func assertValid(t *testing.T, questions []question.Question) {
	t.Helper()
	for i, q := range questions {
		if err := question.Validate(q); err != nil {
			t.Fatalf("question %d invalid: %v", i, err)
		}
	}
}

func assertCorrect(t *testing.T, q question.Question, want ...int) {
	t.Helper()
	if len(q.CorrectAnswers) != len(want) {
		t.Fatalf("expected correct answers %v, got %v", want, q.CorrectAnswers)
	}
	for i := range want {
		if q.CorrectAnswers[i] != want[i] {
			t.Fatalf("expected correct answers %v, got %v", want, q.CorrectAnswers)
		}
	}
}
