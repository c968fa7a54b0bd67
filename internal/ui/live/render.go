package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/question"
	"quizdeck/internal/session"
)

// renderHeader renders the group, pass and progress line.
func renderHeader(m Model) string {
	line := "Quiz"
	if m.group != "" {
		line += " | " + m.group
	}
	s := m.session
	line += " | Pass " + strconv.Itoa(s.Pass())
	if m.phase != PhaseResult {
		line += " | Question " + strconv.Itoa(s.Cursor()+1) + "/" + strconv.Itoa(s.Len())
	}
	line += " | Missed " + strconv.Itoa(s.Tally())
	return stylize(line, m.noColor, colorHeader)
}

// renderQuestion renders the prompt and lettered choices; marked is highlighted.
func renderQuestion(q question.Question, marked int, noColor bool) string {
	lines := []string{lipgloss.NewStyle().Bold(!noColor).Render(q.Prompt), ""}
	for i, choice := range q.Choices {
		pointer := "  "
		text := question.Label(i) + ". " + choice
		if i == marked {
			pointer = "> "
			text = stylize(text, noColor, colorCursor)
		}
		lines = append(lines, pointer+text)
	}
	return strings.Join(lines, "\n")
}

// renderFeedback renders the judgement of the last answer.
func renderFeedback(fb session.Feedback, noColor bool) string {
	color := colorWrong
	if fb.Correct() {
		color = colorCorrect
	}
	return stylize(FeedbackText(fb), noColor, color)
}

// renderResult renders the score line for a completed pass.
func renderResult(result session.Result, noColor bool) string {
	line := "Score: " + strconv.Itoa(result.CorrectCount()) + "/" + strconv.Itoa(result.Total) +
		" (" + FormatPercent(result.ScorePercent) + ")"
	if result.IncorrectCount > 0 {
		line += " | To review: " + strconv.Itoa(result.IncorrectCount)
	}
	color := colorCorrect
	if result.IncorrectCount > 0 {
		color = colorWrong
	}
	return stylize(line, noColor, color)
}

// renderHelp renders the key hints for a phase.
func renderHelp(phase Phase, canRetry, noColor bool) string {
	var line string
	switch phase {
	case PhaseQuestion:
		line = "a-h/↑↓ choose • enter submit • s skip • q quit"
	case PhaseFeedback:
		line = "enter next • q quit"
	case PhaseResult:
		if canRetry {
			line = "r retry missed • q quit"
		} else {
			line = "q quit"
		}
	}
	return stylize(line, noColor, colorMuted)
}
