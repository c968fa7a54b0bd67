package question

import (
	"fmt"
	"strings"
)

// DeckVersion is the only supported deck schema version.
const DeckVersion = 1

// Issue captures a validation problem in a question or deck.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks the model invariants of a finalized question.
func Validate(q Question) error {
	collector := &issueCollector{}
	checkQuestion(collector, "question", q)
	return collector.result()
}

func checkQuestion(collector *issueCollector, prefix string, q Question) {
	if IsBlank(q.Prompt) {
		collector.add(prefix+".question", "is required")
	}
	if len(q.Choices) == 0 {
		collector.add(prefix+".choices", "must include at least one entry")
	}
	seen := map[int]struct{}{}
	for i, index := range q.CorrectAnswers {
		field := fmt.Sprintf("%s.correct_answers[%d]", prefix, i)
		if index < 0 || index >= len(q.Choices) {
			collector.add(field, fmt.Sprintf("index %d out of range for %d choices", index, len(q.Choices)))
			continue
		}
		if _, dup := seen[index]; dup {
			collector.add(field, fmt.Sprintf("duplicate index %d", index))
		}
		seen[index] = struct{}{}
	}
}

// NormalizeDeck trims text, orders correct-answer sets, and validates a deck.
func NormalizeDeck(deck Deck) (Deck, error) {
	collector := &issueCollector{}
	if deck.Version == 0 {
		collector.add("version", "is required")
	} else if deck.Version != DeckVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", deck.Version))
	}
	if len(deck.Groups) == 0 {
		collector.add("groups", "must include at least one entry")
	}

	seenNames := map[string]struct{}{}
	for gi, group := range deck.Groups {
		groupPrefix := fmt.Sprintf("groups[%d]", gi)
		group.Name = NormalizeText(group.Name)
		if group.Name == "" {
			collector.add(groupPrefix+".name", "is required")
		} else if _, exists := seenNames[group.Name]; exists {
			collector.add(groupPrefix+".name", fmt.Sprintf("duplicate name %q", group.Name))
		} else {
			seenNames[group.Name] = struct{}{}
		}

		for qi, q := range group.Questions {
			prefix := fmt.Sprintf("%s.questions[%d]", groupPrefix, qi)
			q.Prompt = NormalizeText(q.Prompt)
			for ci, choice := range q.Choices {
				q.Choices[ci] = NormalizeText(choice)
				if q.Choices[ci] == "" {
					collector.add(fmt.Sprintf("%s.choices[%d]", prefix, ci), "is required")
				}
			}
			checkQuestion(collector, prefix, q)
			q.CorrectAnswers = normalizeIndices(q.CorrectAnswers, len(q.Choices))
			group.Questions[qi] = q
		}
		deck.Groups[gi] = group
	}

	if err := collector.result(); err != nil {
		return Deck{}, err
	}
	return deck, nil
}
