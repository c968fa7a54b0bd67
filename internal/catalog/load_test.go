package catalog

import (
	"path/filepath"
	"testing"

	"quizdeck/internal/testutil"
)

const examText = `Câu Hỏi 1: What is the capital of France?
a. London
b. Paris
Câu trả lời đúng là: Paris
Câu Hỏi 2: Pick even numbers
Chọn một hoặc nhiều hơn:
a. 2
b. 3
c. 4
The correct answers are: 2, 4
`

func TestLoadTextUsesFileStem(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "Chapter 1.txt", examText)
	c, err := Load(testutil.Context(t, 0), path, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	group, ok := c.Group("Chapter 1")
	if !ok {
		t.Fatalf("expected group named after stem, got %v", c.Names())
	}
	if len(group.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %+v", group.Questions)
	}
	if got := group.Questions[0].CorrectAnswers; len(got) != 1 || got[0] != 1 {
		t.Fatalf("unexpected key %v", got)
	}
	if got := group.Questions[1].CorrectAnswers; len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("unexpected key %v", got)
	}
}

func TestLoadDeck(t *testing.T) {
	data := `version: 1
groups:
  - name: Basics
    questions:
      - question: "2+2?"
        choices: ["3", "4"]
        correct_answers: [1]
`
	path := testutil.WriteFile(t, t.TempDir(), "deck.yml", data)
	c, err := Load(testutil.Context(t, 0), path, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if names := c.Names(); len(names) != 1 || names[0] != "Basics" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestLoadRejectsUnsupportedFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "slides.pptx", "x")
	if _, err := Load(testutil.Context(t, 0), path, DefaultOptions(), nil); err == nil {
		t.Fatalf("expected unsupported file error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.docx")
	if _, err := Load(testutil.Context(t, 0), path, DefaultOptions(), nil); err == nil {
		t.Fatalf("expected error for missing docx")
	}
}
