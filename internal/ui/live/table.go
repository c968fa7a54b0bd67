package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/question"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// reviewColumns sizes the missed-question table for a terminal width.
func reviewColumns(width int) []table.Column {
	answerWidth := 24
	questionWidth := max(width-answerWidth-10, 20)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Correct answer", Width: answerWidth},
	}
}

// reviewRows lists missed questions with their correct answers.
func reviewRows(missed []question.Question) []table.Row {
	rows := make([]table.Row, 0, len(missed))
	for i, q := range missed {
		answer := formatAnswers(q, q.CorrectAnswers)
		if answer == "" {
			answer = "(none recorded)"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			formatQuestionText(q.Prompt, 60),
			answer,
		})
	}
	return rows
}
