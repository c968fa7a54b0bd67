// Package extract turns materialized source content into questions.
//
// Each adapter is a pure function over data already loaded by a reader. Malformed
// structure (choices with no open question, questions with no choices) is dropped
// rather than reported.
package extract

import (
	"strings"

	"quizdeck/internal/signal"
)

// SheetRow is one spreadsheet row: a marker cell, a prompt cell, a choice cell, and the
// resolved fill of the choice cell.
type SheetRow struct {
	Marker string
	Prompt string
	Choice string
	Fill   signal.CellFill
}

// Run is a contiguous span of paragraph text with uniform formatting.
type Run struct {
	Text   string
	Bold   bool
	Format signal.RunFormat
}

// Paragraph is an ordered sequence of runs.
type Paragraph struct {
	Runs []Run
}

// Text concatenates the run texts and trims the result.
func (p Paragraph) Text() string {
	var builder strings.Builder
	for _, run := range p.Runs {
		builder.WriteString(run.Text)
	}
	return strings.TrimSpace(builder.String())
}

// IsQuestion reports whether every run is bold. A paragraph with no runs is not a question.
func (p Paragraph) IsQuestion() bool {
	if len(p.Runs) == 0 {
		return false
	}
	for _, run := range p.Runs {
		if !run.Bold {
			return false
		}
	}
	return true
}
