package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDeckYAML verifies YAML decks load and normalize properly.
func TestLoadDeckYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yml")
	payload := `version: 1
groups:
  - name: " Geography "
    questions:
      - question: "  Capital of France? "
        choices: [" Paris ", "London"]
        correct_answers: [0, 0]
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	deck, err := LoadDeck(path)
	if err == nil {
		t.Fatalf("expected duplicate index to be rejected")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	payload = `version: 1
groups:
  - name: " Geography "
    questions:
      - question: "  Capital of France? "
        choices: [" Paris ", "London"]
        correct_answers: [0]
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	deck, err = LoadDeck(path)
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	if len(deck.Groups) != 1 || deck.Groups[0].Name != "Geography" {
		t.Fatalf("unexpected groups: %+v", deck.Groups)
	}
	q := deck.Groups[0].Questions[0]
	if q.Prompt != "Capital of France?" {
		t.Fatalf("expected trimmed prompt, got %q", q.Prompt)
	}
	if q.Choices[0] != "Paris" {
		t.Fatalf("expected trimmed choice, got %q", q.Choices[0])
	}
	if len(q.CorrectAnswers) != 1 || q.CorrectAnswers[0] != 0 {
		t.Fatalf("unexpected correct answers: %v", q.CorrectAnswers)
	}
}

// TestLoadDeckJSON verifies JSON decks are parsed and validated.
func TestLoadDeckJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	payload := `{
  "version": 1,
  "groups": [
    {
      "name": "Colors",
      "questions": [
        {"question": "Warm colors?", "choices": ["red", "blue", "orange"], "correct_answers": [2, 0]}
      ]
    }
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	deck, err := LoadDeck(path)
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	got := deck.Groups[0].Questions[0].CorrectAnswers
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("expected sorted correct answers, got %v", got)
	}
}

// TestLoadDeckValidationErrors verifies invalid decks return validation errors.
func TestLoadDeckValidationErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yml")
	payload := `version: 2
groups:
  - name: dup
    questions:
      - question: ""
        choices: ["yes"]
        correct_answers: [3]
  - name: dup
    questions: []
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	_, err := LoadDeck(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) < 4 {
		t.Fatalf("expected version, prompt, index, and name issues, got %+v", validationErr.Issues)
	}
}

// TestParseDeckRejectsUnknownFields verifies strict decoding.
func TestParseDeckRejectsUnknownFields(t *testing.T) {
	_, err := ParseDeck([]byte("version: 1\nextra: true\n"), "deck.yaml")
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}
