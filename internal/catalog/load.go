package catalog

import (
	"context"
	"fmt"

	"quizdeck/internal/extract"
	"quizdeck/internal/logging"
	"quizdeck/internal/question"
	"quizdeck/internal/signal"
	"quizdeck/internal/source"
)

// Options controls how source files are parsed.
type Options struct {
	Workbook source.WorkbookOptions
	Fill     signal.FillDetector
	Markers  extract.Markers
	PDF      source.PDFOptions
}

// DefaultOptions returns the options used when no configuration is present.
func DefaultOptions() Options {
	return Options{
		Workbook: source.WorkbookOptions{HeaderRows: 1},
		Fill:     signal.FillDetector{NoFill: signal.NoFill},
		Markers:  extract.DefaultMarkers(),
	}
}

// Load reads path and groups its questions. Workbooks yield one group per sheet; docx,
// pdf and text files yield a single group named after the file stem; deck files keep
// their own groups.
func Load(ctx context.Context, path string, opts Options, logger *logging.Logger) (*Catalog, error) {
	logger = logging.OrNop(logger).With("source", path)
	kind, err := source.DetectKind(path)
	if err != nil {
		return nil, err
	}

	var groups []question.Group
	switch kind {
	case source.KindWorkbook:
		groups, err = loadWorkbook(path, opts)
	case source.KindDocument:
		groups, err = loadDocument(path)
	case source.KindPDF:
		var text string
		text, err = source.ReadPDFText(ctx, path, opts.PDF)
		if err == nil {
			groups = textGroup(path, text, opts.Markers)
		}
	case source.KindText:
		var text string
		text, err = source.ReadText(path)
		if err == nil {
			groups = textGroup(path, text, opts.Markers)
		}
	case source.KindDeck:
		var deck question.Deck
		deck, err = question.LoadDeck(path)
		groups = deck.Groups
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}

	c, err := New(groups)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	for _, name := range c.names {
		logger.Debug("group loaded", "group", name, "questions", len(c.groups[name]))
	}
	logger.Info("catalog loaded", "kind", string(kind), "groups", c.Len())
	return c, nil
}

func loadWorkbook(path string, opts Options) ([]question.Group, error) {
	sheets, err := source.ReadWorkbook(path, opts.Workbook)
	if err != nil {
		return nil, err
	}
	groups := make([]question.Group, 0, len(sheets))
	for _, sheet := range sheets {
		groups = append(groups, question.Group{
			Name:      sheet.Name,
			Questions: extract.Spreadsheet(sheet.Rows, opts.Fill),
		})
	}
	return groups, nil
}

func loadDocument(path string) ([]question.Group, error) {
	paragraphs, err := source.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return []question.Group{{
		Name:      source.Stem(path),
		Questions: extract.Document(paragraphs, signal.RunDetector{}),
	}}, nil
}

func textGroup(path, text string, markers extract.Markers) []question.Group {
	return []question.Group{{
		Name:      source.Stem(path),
		Questions: extract.Heuristic(source.SplitLines(text), markers),
	}}
}
