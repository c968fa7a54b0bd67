package source

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"quizdeck/internal/extract"
	"quizdeck/internal/signal"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Geography"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	rows := [][]any{
		{"#", "Question", "Choice"},
		{"1", "Capital of France?", "Berlin"},
		{"", "", "Paris"},
		{"", "", "Rome"},
		{"2", "Largest ocean?", "Pacific"},
		{"", "", "Atlantic"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Geography", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
	})
	if err != nil {
		t.Fatalf("new style: %v", err)
	}
	for _, cell := range []string{"C3", "C5"} {
		if err := f.SetCellStyle("Geography", cell, cell, style); err != nil {
			t.Fatalf("set style: %v", err)
		}
	}

	if _, err := f.NewSheet("Empty"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "quiz.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadWorkbookSheetsAndFills(t *testing.T) {
	path := writeWorkbook(t)

	sheets, err := ReadWorkbook(path, WorkbookOptions{HeaderRows: 1})
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	if len(sheets) != 2 || sheets[0].Name != "Geography" || sheets[1].Name != "Empty" {
		t.Fatalf("unexpected sheets %+v", sheets)
	}
	rows := sheets[0].Rows
	if len(rows) != 5 {
		t.Fatalf("expected 5 data rows, got %d", len(rows))
	}
	if rows[0].Prompt != "Capital of France?" || rows[0].Choice != "Berlin" {
		t.Fatalf("unexpected first row %+v", rows[0])
	}

	detector := signal.FillDetector{}
	if detector.Marked(rows[0].Fill) {
		t.Fatalf("unfilled cell reported as marked: %+v", rows[0].Fill)
	}
	if !detector.Marked(rows[1].Fill) {
		t.Fatalf("filled cell not marked: %+v", rows[1].Fill)
	}

	questions := extract.Spreadsheet(rows, detector)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if got := questions[0].CorrectAnswers; len(got) != 1 || got[0] != 1 {
		t.Fatalf("unexpected key for first question %v", got)
	}
	if got := questions[1].CorrectAnswers; len(got) != 1 || got[0] != 0 {
		t.Fatalf("unexpected key for second question %v", got)
	}
}

func TestReadWorkbookCustomNoFillSentinel(t *testing.T) {
	path := writeWorkbook(t)

	sheets, err := ReadWorkbook(path, WorkbookOptions{HeaderRows: 1})
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	detector := signal.FillDetector{NoFill: "FFFFFFFF"}
	if detector.Marked(sheets[0].Rows[0].Fill) {
		t.Fatalf("unfilled cell reported as marked: %+v", sheets[0].Rows[0].Fill)
	}
	questions := extract.Spreadsheet(sheets[0].Rows, detector)
	if got := questions[0].CorrectAnswers; len(got) != 1 || got[0] != 1 {
		t.Fatalf("unfilled cells must not count as marked under a custom sentinel, got %v", got)
	}
	if got := questions[1].CorrectAnswers; len(got) != 1 || got[0] != 0 {
		t.Fatalf("unexpected key for second question %v", got)
	}
}

func TestReadWorkbookWithoutHeaderSkip(t *testing.T) {
	path := writeWorkbook(t)

	sheets, err := ReadWorkbook(path, WorkbookOptions{})
	if err != nil {
		t.Fatalf("read workbook: %v", err)
	}
	if len(sheets[0].Rows) != 6 {
		t.Fatalf("expected header row to be kept, got %d rows", len(sheets[0].Rows))
	}
}

func TestReadWorkbookMissingFile(t *testing.T) {
	if _, err := ReadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"), WorkbookOptions{}); err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}

func TestFillFromStyle(t *testing.T) {
	if got := fillFromStyle(nil); got.Foreground != "" || got.Background != "" {
		t.Fatalf("nil style should be unfilled, got %+v", got)
	}
	none := fillFromStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 0}})
	if (signal.FillDetector{}).Marked(none) {
		t.Fatalf("pattern 0 should be unfilled, got %+v", none)
	}
	theme := fillFromStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1}})
	if theme.Foreground != themeFill {
		t.Fatalf("expected theme placeholder, got %+v", theme)
	}
}
