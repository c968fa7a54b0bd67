package cli

import (
	"bufio"
	"fmt"
	"io"

	"quizdeck/internal/question"
	"quizdeck/internal/session"
	"quizdeck/internal/ui/live"
)

// runPlainQuiz drives a session with line-based prompts.
func runPlainQuiz(reader *bufio.Reader, out io.Writer, s *session.Session, group string) error {
	for {
		for s.State() != session.StateCompleted {
			q, err := s.CurrentQuestion()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n[%s] Question %d/%d (pass %d)\n", group, s.Cursor()+1, s.Len(), s.Pass())
			fmt.Fprintln(out, q.Prompt)
			for i, choice := range q.Choices {
				fmt.Fprintf(out, "  %s. %s\n", question.Label(i), choice)
			}
			sel, quit, err := promptSelection(reader, out, len(q.Choices))
			if err != nil {
				return err
			}
			if quit {
				fmt.Fprintln(out, "Quiz ended.")
				return nil
			}
			feedback, err := s.Answer(sel)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, live.FeedbackText(feedback))
			if err := s.Advance(); err != nil {
				return err
			}
		}

		result, err := s.Result()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nScore: %d/%d (%s)\n", result.CorrectCount(), result.Total, live.FormatPercent(result.ScorePercent))
		if result.IncorrectCount == 0 {
			return nil
		}
		retry, err := promptYesNo(reader, out, fmt.Sprintf("Retry the %d missed questions?", result.IncorrectCount), true)
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
		if err := s.Retry(); err != nil {
			return err
		}
	}
}
