// Package source loads authoring files from disk into the in-memory shapes the
// extraction adapters consume. It is the only place that touches file formats.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies a supported source file format.
type Kind string

const (
	KindWorkbook Kind = "workbook"
	KindDocument Kind = "document"
	KindPDF      Kind = "pdf"
	KindText     Kind = "text"
	KindDeck     Kind = "deck"
)

// DetectKind maps a file extension to a source kind.
func DetectKind(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return KindWorkbook, nil
	case ".docx":
		return KindDocument, nil
	case ".pdf":
		return KindPDF, nil
	case ".txt":
		return KindText, nil
	case ".yml", ".yaml", ".json":
		return KindDeck, nil
	default:
		return "", fmt.Errorf("unsupported source file %q (expected .xlsx, .docx, .pdf, .txt, .yml, .yaml, or .json)", filepath.Base(path))
	}
}

// Stem returns the file name without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
