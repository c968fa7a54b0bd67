package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizdeck/internal/question"
)

var csvHeader = []string{"Group", "Question", "Choices", "Correct_Answers"}

// CSVOptions controls the cell layout of WriteCSV.
type CSVOptions struct {
	// Delimiter joins values inside one cell; empty means DefaultDelimiter.
	Delimiter string
	// Answers picks texts or indices for Correct_Answers; empty means AnswerText.
	Answers AnswerStyle
}

// WriteCSV writes one row per question. Choices and correct answers are joined with
// the delimiter inside their cells.
func WriteCSV(w io.Writer, groups []question.Group, opts CSVOptions) error {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, group := range groups {
		for _, q := range group.Questions {
			correct := make([]string, 0, len(q.CorrectAnswers))
			for _, index := range q.CorrectAnswers {
				if opts.Answers == AnswerIndex {
					correct = append(correct, strconv.Itoa(index))
					continue
				}
				correct = append(correct, q.Choices[index])
			}
			row := []string{
				group.Name,
				q.Prompt,
				strings.Join(q.Choices, delimiter),
				strings.Join(correct, delimiter),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
