package question

import "slices"

// Question is a finalized multiple-choice question.
//
// CorrectAnswers is a sorted set of indices into Choices. It may be empty when the
// source did not mark any choice, and may hold several indices for multi-answer sources.
type Question struct {
	Prompt         string   `json:"question" yaml:"question"`
	Choices        []string `json:"choices" yaml:"choices"`
	CorrectAnswers []int    `json:"correct_answers" yaml:"correct_answers"`
}

// Group is a named, ordered collection of questions from one logical source unit.
type Group struct {
	Name      string     `json:"name" yaml:"name"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	return Question{
		Prompt:         q.Prompt,
		Choices:        slices.Clone(q.Choices),
		CorrectAnswers: slices.Clone(q.CorrectAnswers),
	}
}

// HasKey reports whether the source recorded at least one correct answer.
func (q Question) HasKey() bool {
	return len(q.CorrectAnswers) > 0
}

// IsCorrect reports whether index is one of the recorded correct answers.
func (q Question) IsCorrect(index int) bool {
	return slices.Contains(q.CorrectAnswers, index)
}

// Normalized returns a deep copy whose correct answers are sorted, unique and in range
// of Choices. Questions built outside the loaders may carry keys in any order.
func (q Question) Normalized() Question {
	out := q.Clone()
	out.CorrectAnswers = normalizeIndices(out.CorrectAnswers, len(out.Choices))
	return out
}

// Permute returns a copy whose choices are reordered so that the new choice i is the
// old choice perm[i]. Correct answers are remapped to the new positions.
func (q Question) Permute(perm []int) Question {
	if len(perm) != len(q.Choices) {
		return q.Clone()
	}
	out := Question{
		Prompt:  q.Prompt,
		Choices: make([]string, len(perm)),
	}
	for to, from := range perm {
		out.Choices[to] = q.Choices[from]
		if q.IsCorrect(from) {
			out.CorrectAnswers = append(out.CorrectAnswers, to)
		}
	}
	slices.Sort(out.CorrectAnswers)
	return out
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	return Group{Name: g.Name, Questions: CloneAll(g.Questions)}
}

// CloneAll deep-copies a question slice.
func CloneAll(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}
	return out
}

// Deck is the serialized form of a set of groups, read and written as YAML or JSON.
type Deck struct {
	Version int     `json:"version" yaml:"version"`
	Groups  []Group `json:"groups" yaml:"groups"`
}
