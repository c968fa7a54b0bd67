package source

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"quizdeck/internal/extract"
	"quizdeck/internal/signal"
)

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Q1 part1</w:t></w:r></w:p>
    <w:p><w:r><w:rPr><w:b w:val="1"/></w:rPr><w:t>Q1 part2</w:t></w:r></w:p>
    <w:p><w:r><w:t>first</w:t></w:r></w:p>
    <w:p><w:r><w:rPr><w:highlight w:val="yellow"/></w:rPr><w:t>sec</w:t></w:r><w:r><w:t>ond</w:t></w:r></w:p>
    <w:p><w:r><w:rPr><w:b w:val="0"/></w:rPr><w:t>third</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Q2</w:t></w:r></w:p>
    <w:p><w:r><w:rPr><w:shd w:val="clear" w:fill="FFFF00"/></w:rPr><w:t>only</w:t></w:r></w:p>
    <w:sectPr/>
  </w:body>
</w:document>`

func TestParseDocumentXML(t *testing.T) {
	paragraphs, err := ParseDocumentXML([]byte(sampleDocumentXML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(paragraphs) != 8 {
		t.Fatalf("expected 8 paragraphs, got %d", len(paragraphs))
	}
	if !paragraphs[0].IsQuestion() || !paragraphs[1].IsQuestion() {
		t.Fatalf("bold paragraphs should be questions")
	}
	if paragraphs[4].IsQuestion() {
		t.Fatalf("b val=0 should not count as bold")
	}
	if got := paragraphs[3].Text(); got != "second" {
		t.Fatalf("unexpected joined text %q", got)
	}
	if paragraphs[3].Runs[0].Format.Highlight != "yellow" {
		t.Fatalf("highlight not decoded: %+v", paragraphs[3].Runs[0])
	}
	shd := paragraphs[7].Runs[0].Format.Shading
	if shd == nil || shd.Fill != "FFFF00" || shd.Val != "clear" {
		t.Fatalf("shading not decoded: %+v", shd)
	}

	questions := extract.Document(paragraphs, signal.RunDetector{})
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Prompt != "Q1 part1\nQ1 part2" {
		t.Fatalf("unexpected prompt %q", questions[0].Prompt)
	}
	if len(questions[0].Choices) != 3 || questions[0].CorrectAnswers[0] != 1 {
		t.Fatalf("unexpected first question %+v", questions[0])
	}
	if len(questions[1].CorrectAnswers) != 1 || questions[1].CorrectAnswers[0] != 0 {
		t.Fatalf("unexpected second question %+v", questions[1])
	}
}

func TestParseDocumentXMLRejectsGarbage(t *testing.T) {
	if _, err := ParseDocumentXML([]byte("<w:document><w:body>")); err == nil {
		t.Fatalf("expected xml error")
	}
}

func TestReadDocumentFromArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.docx")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := zip.NewWriter(file)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip entry: %v", err)
	}
	if _, err := w.Write([]byte(sampleDocumentXML)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("file close: %v", err)
	}

	paragraphs, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if len(paragraphs) != 8 {
		t.Fatalf("expected 8 paragraphs, got %d", len(paragraphs))
	}
}

func TestReadDocumentMissingPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := zip.NewWriter(file)
	if _, err := zw.Create("word/styles.xml"); err != nil {
		t.Fatalf("zip entry: %v", err)
	}
	_ = zw.Close()
	_ = file.Close()

	if _, err := ReadDocument(path); err == nil {
		t.Fatalf("expected missing document part error")
	}
}
