package extract

import (
	"quizdeck/internal/question"
	"quizdeck/internal/signal"
)

// Document parses word-processor paragraphs into questions.
//
// Runs of all-bold paragraphs form the prompt; the plain paragraphs that follow are the
// choices. Returning to a bold paragraph after a choice starts the next question. A choice
// with any highlighted or shaded run becomes the single correct answer.
func Document(paragraphs []Paragraph, detector signal.Detector[signal.RunFormat]) []question.Question {
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

	for _, para := range paragraphs {
		text := para.Text()
		if text == "" {
			continue
		}
		if para.IsQuestion() {
			if current != nil && current.NumChoices() > 0 {
				flush()
			}
			if current == nil {
				current = question.NewBuilder(text)
			} else {
				current.AppendPrompt(text)
			}
			continue
		}
		if current == nil {
			continue
		}
		index := current.AddChoice(text)
		if anyRunMarked(para.Runs, detector) {
			current.SetCorrect(index)
		}
	}
	flush()
	return out
}

func anyRunMarked(runs []Run, detector signal.Detector[signal.RunFormat]) bool {
	for _, run := range runs {
		if detector.Marked(run.Format) {
			return true
		}
	}
	return false
}
