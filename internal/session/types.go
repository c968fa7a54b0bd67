package session

import (
	"fmt"
	"strconv"
	"strings"

	"quizdeck/internal/question"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateUnconfigured State = iota
	StateConfigured
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Range selects the half-open interval [Start, End) of a group.
type Range struct {
	Start int
	End   int
}

// ParseRange reads "start:end".
func ParseRange(value string) (*Range, error) {
	startText, endText, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return nil, fmt.Errorf("range %q: expected start:end", value)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startText))
	if err != nil {
		return nil, fmt.Errorf("range %q: invalid start", value)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endText))
	if err != nil {
		return nil, fmt.Errorf("range %q: invalid end", value)
	}
	return &Range{Start: start, End: end}, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// Options shapes the working set built by Configure.
type Options struct {
	// Count caps the working set; zero keeps every question in range.
	Count int
	// Range slices the group before Count applies; nil means the whole group.
	Range *Range
	// Shuffle randomizes question order, on the first pass and on every retry.
	Shuffle bool
	// ShuffleChoices permutes each question's choices and remaps its correct answers.
	ShuffleChoices bool
}

// Selection is the user's answer to the current question.
type Selection struct {
	index int
	set   bool
}

// NoAnswer is an empty selection.
func NoAnswer() Selection {
	return Selection{}
}

// Choose selects the zero-based choice index.
func Choose(index int) Selection {
	return Selection{index: index, set: true}
}

// Index returns the chosen index, or false for NoAnswer.
func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

// Outcome classifies one answered question.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeNoAnswer
	OutcomeNoKey
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeNoAnswer:
		return "no_answer"
	case OutcomeNoKey:
		return "no_key"
	default:
		return "unknown"
	}
}

// Feedback reports how an answer was judged.
type Feedback struct {
	Outcome Outcome
	// Selected is the chosen index, or -1 for NoAnswer.
	Selected       int
	CorrectAnswers []int
	Question       question.Question
}

// Correct reports whether the answer counted as correct.
func (f Feedback) Correct() bool {
	return f.Outcome == OutcomeCorrect
}

// Result summarizes a completed pass.
type Result struct {
	Pass           int
	Total          int
	IncorrectCount int
	ScorePercent   float64
}

// CorrectCount is the number of questions answered correctly in the pass.
func (r Result) CorrectCount() int {
	return r.Total - r.IncorrectCount
}
