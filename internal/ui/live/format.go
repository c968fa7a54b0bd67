package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/question"
	"quizdeck/internal/session"
)

const (
	colorHeader  = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorCursor  = lipgloss.Color("39")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("220")
	colorError   = lipgloss.Color("196")
)

// letterIndex maps a single letter key to a choice index.
func letterIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'h':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'H':
		return int(c - 'A'), true
	default:
		return 0, false
	}
}

// formatQuestionText flattens and truncates question text for table cells.
func formatQuestionText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if limit < 4 {
		limit = 4
	}
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// FormatPercent renders a score without trailing zeros.
func FormatPercent(score float64) string {
	text := fmt.Sprintf("%.1f", score)
	return strings.TrimSuffix(text, ".0") + "%"
}

// formatAnswers names correct choices as "B. Paris".
func formatAnswers(q question.Question, indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, index := range indices {
		if index >= 0 && index < len(q.Choices) {
			parts = append(parts, question.Label(index)+". "+q.Choices[index])
		}
	}
	return strings.Join(parts, ", ")
}

// FeedbackText describes a judged answer.
func FeedbackText(fb session.Feedback) string {
	switch fb.Outcome {
	case session.OutcomeCorrect:
		return "Correct!"
	case session.OutcomeNoKey:
		return "No correct answer is recorded for this question."
	case session.OutcomeNoAnswer:
		if len(fb.CorrectAnswers) == 0 {
			return "No answer selected. No correct answer is recorded for this question."
		}
		return "No answer selected. Correct answer: " + formatAnswers(fb.Question, fb.CorrectAnswers)
	default:
		return "Incorrect. Correct answer: " + formatAnswers(fb.Question, fb.CorrectAnswers)
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
