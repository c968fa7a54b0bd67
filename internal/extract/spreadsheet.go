package extract

import (
	"quizdeck/internal/question"
	"quizdeck/internal/signal"
)

// Spreadsheet parses sheet rows into questions.
//
// A non-blank prompt cell opens a new question. Each non-blank choice cell appends a
// choice; a marked fill makes that choice the single correct answer, so a later marked
// cell in the same question overrides an earlier one.
func Spreadsheet(rows []SheetRow, detector signal.Detector[signal.CellFill]) []question.Question {
	var (
		out     []question.Question
		current *question.Builder
	)
	flush := func() {
		if q, ok := current.Finalize(); ok {
			out = append(out, q)
		}
		current = nil
	}

	for _, row := range rows {
		if !question.IsBlank(row.Prompt) {
			flush()
			current = question.NewBuilder(row.Prompt)
		}
		if question.IsBlank(row.Choice) || current == nil {
			continue
		}
		index := current.AddChoice(question.NormalizeText(row.Choice))
		if detector.Marked(row.Fill) {
			current.SetCorrect(index)
		}
	}
	flush()
	return out
}
