package extract

import (
	"strings"
	"unicode"

	"quizdeck/internal/question"
)

// Markers holds the literal prefixes recognized by the heuristic text adapter.
type Markers struct {
	Question    []string
	Answer      []string
	Instruction []string
	// JoinPromptLines appends unmarked lines seen before the first choice to the prompt
	// instead of recording them as verbatim choices.
	JoinPromptLines bool
}

// DefaultMarkers returns the built-in Vietnamese and English marker phrases.
func DefaultMarkers() Markers {
	return Markers{
		Question: []string{"Câu Hỏi"},
		Answer: []string{
			"Câu trả lời đúng là:",
			"Đáp án chính xác là",
			"The correct answers are",
			"The correct answer is",
		},
		Instruction: []string{
			"Chọn câu:",
			"Chọn một hoặc nhiều hơn:",
			"Select one:",
			"Select one or more:",
		},
	}
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineQuestion
	lineLetterChoice
	lineAnswer
	lineInstruction
	lineText
)

// Heuristic parses flat extracted text into questions.
//
// Only questions with a prompt, at least one choice, and at least one matched correct
// answer are emitted; partial parses are common in extracted text and are discarded.
func Heuristic(lines []string, markers Markers) []question.Question {
	var (
		out        []question.Question
		current    *question.Builder
		lastLetter bool
		// bareLetter is set by a letter line with no text; the next text line is its body.
		bareLetter bool
	)
	flush := func() {
		if current != nil && current.NumCorrect() > 0 {
			if q, ok := current.Finalize(); ok {
				out = append(out, q)
			}
		}
		current = nil
		lastLetter = false
		bareLetter = false
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		kind := markers.classify(line)
		if kind == lineQuestion {
			flush()
			current = question.NewBuilder(line)
			continue
		}
		if current == nil {
			continue
		}
		switch kind {
		case lineLetterChoice:
			body := strings.TrimSpace(line[2:])
			bareLetter = body == ""
			lastLetter = !bareLetter
			if !bareLetter {
				current.AddChoice(body)
			}
		case lineAnswer:
			bareLetter = false
			for _, label := range answerLabels(markers.answerRemainder(line)) {
				if index := current.ChoiceIndex(label); index >= 0 {
					current.MarkCorrect(index)
				}
			}
		case lineText:
			switch {
			case bareLetter:
				current.AddChoice(line)
				bareLetter, lastLetter = false, true
			case lastLetter && current.ExtendLastChoice(line):
			case markers.JoinPromptLines && current.NumChoices() == 0:
				current.AppendPrompt(line)
			default:
				current.AddChoice(line)
			}
		}
	}
	flush()
	return out
}

func (m Markers) classify(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case hasAnyPrefix(line, m.Question):
		return lineQuestion
	case isLetterChoice(line):
		return lineLetterChoice
	case hasAnyPrefix(line, m.Answer):
		return lineAnswer
	case hasAnyPrefix(line, m.Instruction):
		return lineInstruction
	default:
		return lineText
	}
}

// answerRemainder returns the text after the first colon, or after the matched marker
// phrase when the line has no colon.
func (m Markers) answerRemainder(line string) string {
	if _, after, found := strings.Cut(line, ":"); found {
		return after
	}
	for _, marker := range m.Answer {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):]
		}
	}
	return ""
}

func answerLabels(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func isLetterChoice(line string) bool {
	if len(line) < 2 || line[1] != '.' {
		return false
	}
	c := line[0]
	return (c >= 'a' && c <= 'h') || (c >= 'A' && c <= 'H')
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
