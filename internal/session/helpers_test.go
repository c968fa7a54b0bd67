package session

import (
	"fmt"
	"testing"

	"quizdeck/internal/question"
)

// reverser is a deterministic shuffler that reverses order.
type reverser struct{}

func (reverser) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func numbered(n int) []question.Question {
	out := make([]question.Question, n)
	for i := range out {
		out[i] = question.Question{
			Prompt:         fmt.Sprintf("Q%d", i),
			Choices:        []string{"right", "wrong", "other"},
			CorrectAnswers: []int{0},
		}
	}
	return out
}

func configured(t *testing.T, group []question.Question, opts Options) *Session {
	t.Helper()
	s := New(reverser{})
	if err := s.Configure(group, opts); err != nil {
		t.Fatalf("configure: %v", err)
	}
	return s
}

func answerAndAdvance(t *testing.T, s *Session, sel Selection) Feedback {
	t.Helper()
	if _, err := s.CurrentQuestion(); err != nil {
		t.Fatalf("current question: %v", err)
	}
	fb, err := s.Answer(sel)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	return fb
}
