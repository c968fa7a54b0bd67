package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"quizdeck/internal/extract"
	"quizdeck/internal/signal"
)

// Workbook column layout: marker, prompt, choice.
const (
	markerColumn = 1
	promptColumn = 2
	choiceColumn = 3
)

// themeFill stands in for a fill whose color is set but not expressed as RGB.
const themeFill = "theme"

// Sheet is one worksheet reduced to adapter rows.
type Sheet struct {
	Name string
	Rows []extract.SheetRow
}

// WorkbookOptions controls how sheets are read.
type WorkbookOptions struct {
	// HeaderRows is the number of leading rows skipped on every sheet.
	HeaderRows int
}

// ReadWorkbook loads every sheet of an xlsx workbook in tab order.
func ReadWorkbook(path string, opts WorkbookOptions) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := readSheet(f, name, opts.HeaderRows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

func readSheet(f *excelize.File, sheet string, headerRows int) ([]extract.SheetRow, error) {
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if headerRows < 0 {
		headerRows = 0
	}
	out := make([]extract.SheetRow, 0, len(cells))
	for i, row := range cells {
		if i < headerRows {
			continue
		}
		rowNumber := i + 1
		entry := extract.SheetRow{
			Marker: cellAt(row, markerColumn),
			Prompt: cellAt(row, promptColumn),
			Choice: cellAt(row, choiceColumn),
		}
		if strings.TrimSpace(entry.Choice) != "" {
			fill, err := cellFill(f, sheet, choiceColumn, rowNumber)
			if err != nil {
				return nil, err
			}
			entry.Fill = fill
		}
		out = append(out, entry)
	}
	return out, nil
}

func cellAt(row []string, column int) string {
	if column-1 < len(row) {
		return row[column-1]
	}
	return ""
}

func cellFill(f *excelize.File, sheet string, column, row int) (signal.CellFill, error) {
	name, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return signal.CellFill{}, fmt.Errorf("cell name: %w", err)
	}
	styleID, err := f.GetCellStyle(sheet, name)
	if err != nil {
		return signal.CellFill{}, fmt.Errorf("cell style %s!%s: %w", sheet, name, err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return signal.CellFill{}, fmt.Errorf("style %d: %w", styleID, err)
	}
	return fillFromStyle(style), nil
}

// fillFromStyle resolves an excelize fill into foreground and background colors.
// An unset color stays empty, which every FillDetector reads as no fill whatever its
// sentinel. A pattern fill with no RGB color (theme or indexed) still counts as filled.
func fillFromStyle(style *excelize.Style) signal.CellFill {
	var fill signal.CellFill
	if style == nil {
		return fill
	}
	colors := style.Fill.Color
	switch style.Fill.Type {
	case "pattern":
		if style.Fill.Pattern == 0 {
			return fill
		}
		fill.Foreground = themeFill
		if len(colors) > 0 && strings.TrimSpace(colors[0]) != "" {
			fill.Foreground = colors[0]
		}
		if len(colors) > 1 && strings.TrimSpace(colors[1]) != "" {
			fill.Background = colors[1]
		}
	case "gradient":
		fill.Foreground = themeFill
		if len(colors) > 0 {
			fill.Foreground = colors[0]
		}
		if len(colors) > 1 {
			fill.Background = colors[1]
		}
	}
	return fill
}
