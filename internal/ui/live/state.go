package live

// Phase is the screen the quiz UI is showing.
type Phase int

const (
	// PhaseQuestion waits for a choice to be submitted.
	PhaseQuestion Phase = iota
	// PhaseFeedback shows how the last answer was judged.
	PhaseFeedback
	// PhaseResult shows the score of a completed pass.
	PhaseResult
	// PhaseQuit ends the program.
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseQuestion:
		return "question"
	case PhaseFeedback:
		return "feedback"
	case PhaseResult:
		return "result"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}
