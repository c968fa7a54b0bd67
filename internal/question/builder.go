package question

import (
	"slices"
	"strings"
)

// Builder accumulates one question while an adapter scans its source.
// Adapters hold it as a local value and finalize it at each question boundary.
type Builder struct {
	prompt  []string
	choices []string
	correct []int
}

// NewBuilder opens a question with the given prompt line.
func NewBuilder(prompt string) *Builder {
	b := &Builder{}
	b.AppendPrompt(prompt)
	return b
}

// AppendPrompt adds a line to the prompt. Blank lines are ignored.
func (b *Builder) AppendPrompt(line string) {
	line = NormalizeText(line)
	if line == "" {
		return
	}
	b.prompt = append(b.prompt, line)
}

// AddChoice appends a choice and returns its index.
func (b *Builder) AddChoice(text string) int {
	b.choices = append(b.choices, text)
	return len(b.choices) - 1
}

// ExtendLastChoice appends text to the most recent choice, separated by a space.
// It reports false when there is no choice to extend.
func (b *Builder) ExtendLastChoice(text string) bool {
	if len(b.choices) == 0 {
		return false
	}
	last := len(b.choices) - 1
	b.choices[last] = b.choices[last] + " " + text
	return true
}

// NumChoices returns the number of choices collected so far.
func (b *Builder) NumChoices() int {
	return len(b.choices)
}

// ChoiceIndex returns the index of the first choice equal to text, or -1.
func (b *Builder) ChoiceIndex(text string) int {
	return slices.Index(b.choices, text)
}

// MarkCorrect adds index to the correct-answer set.
func (b *Builder) MarkCorrect(index int) {
	if slices.Contains(b.correct, index) {
		return
	}
	b.correct = append(b.correct, index)
}

// SetCorrect replaces the correct-answer set with the single index.
func (b *Builder) SetCorrect(index int) {
	b.correct = []int{index}
}

// NumCorrect returns the number of correct answers recorded so far.
func (b *Builder) NumCorrect() int {
	return len(b.correct)
}

// Finalize produces the question. It reports false when the accumulated content
// does not satisfy the model invariants (blank prompt or no choices).
func (b *Builder) Finalize() (Question, bool) {
	if b == nil {
		return Question{}, false
	}
	prompt := strings.Join(b.prompt, "\n")
	if IsBlank(prompt) || len(b.choices) == 0 {
		return Question{}, false
	}
	return Question{
		Prompt:         prompt,
		Choices:        slices.Clone(b.choices),
		CorrectAnswers: normalizeIndices(b.correct, len(b.choices)),
	}, true
}
