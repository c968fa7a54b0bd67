// Package session runs one quiz over a working copy of a question group.
//
// A Session moves through Unconfigured, Configured, InProgress and Completed. Retry
// starts a new pass over the questions missed in the previous one. A Session has a
// single owner and does no locking.
package session

import (
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/question"
)

// Session is one quiz over a working copy of a question group. The zero value is
// not usable; call New.
type Session struct {
	shuffler Shuffler
	opts     Options
	id       string

	state     State
	pass      int
	working   []question.Question
	outcomes  []Outcome
	cursor    int
	answered  bool
	incorrect []question.Question
	tally     int
}

// New returns an unconfigured session. A nil shuffler seeds one from the clock.
func New(shuffler Shuffler) *Session {
	if shuffler == nil {
		shuffler = NewShuffler(uint64(time.Now().UnixNano()))
	}
	return &Session{shuffler: shuffler}
}

// Configure builds the working set from group and restarts the session. On error the
// session keeps its previous state.
func (s *Session) Configure(group []question.Question, opts Options) error {
	start, end := 0, len(group)
	if r := opts.Range; r != nil {
		switch {
		case r.Start < 0:
			return configError("range", "start %d is negative", r.Start)
		case r.End > len(group):
			return configError("range", "end %d exceeds group size %d", r.End, len(group))
		case r.Start >= r.End:
			return configError("range", "start %d must be before end %d", r.Start, r.End)
		}
		start, end = r.Start, r.End
	}
	if opts.Count < 0 {
		return configError("count", "must not be negative (got %d)", opts.Count)
	}

	selected := group[start:end]
	if opts.Count > 0 && opts.Count < len(selected) {
		selected = selected[:opts.Count]
	}
	if len(selected) == 0 {
		return configError("", "working set is empty")
	}
	working := make([]question.Question, len(selected))
	for i, q := range selected {
		if len(q.Choices) == 0 {
			return configError("group", "question %d has no choices", start+i)
		}
		working[i] = q.Normalized()
	}

	s.opts = opts
	s.id = uuid.NewString()
	s.pass = 1
	s.startPass(working)
	s.state = StateConfigured
	return nil
}

func (s *Session) startPass(working []question.Question) {
	if s.opts.Shuffle {
		s.shuffler.Shuffle(len(working), func(i, j int) { working[i], working[j] = working[j], working[i] })
	}
	if s.opts.ShuffleChoices {
		for i, q := range working {
			working[i] = q.Permute(permutation(s.shuffler, len(q.Choices)))
		}
	}
	s.working = working
	s.outcomes = make([]Outcome, 0, len(working))
	s.cursor = 0
	s.answered = false
	s.incorrect = nil
	s.tally = 0
}

func (s *Session) active() bool {
	return s.state == StateConfigured || s.state == StateInProgress
}

// CurrentQuestion returns a copy of the question under the cursor.
func (s *Session) CurrentQuestion() (question.Question, error) {
	if !s.active() {
		return question.Question{}, ErrNotInProgress
	}
	s.state = StateInProgress
	return s.working[s.cursor].Clone(), nil
}

// Answer judges sel against the current question. Each question accepts one answer.
func (s *Session) Answer(sel Selection) (Feedback, error) {
	if !s.active() {
		return Feedback{}, ErrNotInProgress
	}
	if s.answered {
		return Feedback{}, ErrAlreadyAnswered
	}
	current := s.working[s.cursor]
	index, chosen := sel.Index()
	if chosen && (index < 0 || index >= len(current.Choices)) {
		return Feedback{}, ErrSelectionOutOfRange
	}

	outcome := judge(current, index, chosen)
	s.state = StateInProgress
	s.record(outcome)

	selected := -1
	if chosen {
		selected = index
	}
	return Feedback{
		Outcome:        outcome,
		Selected:       selected,
		CorrectAnswers: append([]int(nil), current.CorrectAnswers...),
		Question:       current.Clone(),
	}, nil
}

func judge(q question.Question, index int, chosen bool) Outcome {
	switch {
	case !chosen:
		return OutcomeNoAnswer
	case !q.HasKey():
		return OutcomeNoKey
	case q.IsCorrect(index):
		return OutcomeCorrect
	default:
		return OutcomeIncorrect
	}
}

func (s *Session) record(outcome Outcome) {
	s.answered = true
	s.outcomes = append(s.outcomes, outcome)
	if outcome != OutcomeCorrect {
		s.tally++
		s.incorrect = append(s.incorrect, s.working[s.cursor].Clone())
	}
}

// Advance moves to the next question, recording an unanswered one as NoAnswer.
func (s *Session) Advance() error {
	if !s.active() {
		return ErrNotInProgress
	}
	if !s.answered {
		s.record(OutcomeNoAnswer)
	}
	s.state = StateInProgress
	s.cursor++
	s.answered = false
	if s.cursor == len(s.working) {
		s.state = StateCompleted
	}
	return nil
}

// Result summarizes the completed pass.
func (s *Session) Result() (Result, error) {
	if s.state != StateCompleted {
		return Result{}, ErrNotCompleted
	}
	total := len(s.working)
	score := 0.0
	if total > 0 {
		score = float64(total-s.tally) / float64(total) * 100
	}
	return Result{
		Pass:           s.pass,
		Total:          total,
		IncorrectCount: s.tally,
		ScorePercent:   score,
	}, nil
}

// Retry starts a new pass over the questions missed in the completed one.
func (s *Session) Retry() error {
	if s.state != StateCompleted {
		return ErrNotCompleted
	}
	if len(s.incorrect) == 0 {
		return ErrNothingToRetry
	}
	s.pass++
	s.startPass(s.incorrect)
	s.state = StateInProgress
	return nil
}

// ID identifies the current configuration; it changes on every Configure.
func (s *Session) ID() string { return s.id }

// State is the current lifecycle state.
func (s *Session) State() State { return s.state }

// Pass is the 1-based pass number, zero before Configure.
func (s *Session) Pass() int { return s.pass }

// Cursor is the 0-based position of the current question within the pass.
func (s *Session) Cursor() int { return s.cursor }

// Len is the size of the current pass.
func (s *Session) Len() int { return len(s.working) }

// Tally counts non-correct outcomes in the current pass.
func (s *Session) Tally() int { return s.tally }

// Answered reports whether the current question already has an outcome.
func (s *Session) Answered() bool { return s.answered }

// Incorrect returns copies of the questions missed so far in this pass.
func (s *Session) Incorrect() []question.Question {
	return question.CloneAll(s.incorrect)
}

// Outcomes lists the outcomes recorded so far in this pass, in answer order.
func (s *Session) Outcomes() []Outcome {
	return append([]Outcome(nil), s.outcomes...)
}
