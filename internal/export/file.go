package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"quizdeck/internal/duckdb"
	"quizdeck/internal/question"
)

// Options controls an export run.
type Options struct {
	Format    Format
	Delimiter string
	// Answers applies to CSV exports only.
	Answers AnswerStyle
	// Source is recorded with DuckDB exports.
	Source string
}

// Summary describes what was written.
type Summary struct {
	Path      string
	Groups    int
	Questions int
	// ExportID is set for DuckDB exports.
	ExportID string
}

// ToFile writes groups to path in the requested format. DuckDB targets are appended to;
// other formats replace the file.
func ToFile(ctx context.Context, path string, groups []question.Group, opts Options) (Summary, error) {
	summary := Summary{Path: path, Groups: len(groups)}
	for _, group := range groups {
		summary.Questions += len(group.Questions)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("create output dir: %w", err)
		}
	}

	if opts.Format == FormatDuckDB {
		db, err := duckdb.Open(ctx, path)
		if err != nil {
			return Summary{}, err
		}
		defer db.Close()
		id, err := duckdb.InsertDeck(ctx, db, opts.Source, groups)
		if err != nil {
			return Summary{}, err
		}
		stored, err := duckdb.Summaries(ctx, db, id)
		if err != nil {
			return Summary{}, err
		}
		summary.ExportID = id
		summary.Groups, summary.Questions = len(stored), 0
		for _, group := range stored {
			summary.Questions += group.Questions
		}
		return summary, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return Summary{}, fmt.Errorf("create output: %w", err)
	}
	switch opts.Format {
	case FormatCSV:
		err = WriteCSV(file, groups, CSVOptions{Delimiter: opts.Delimiter, Answers: opts.Answers})
	case FormatYAML, FormatJSON:
		err = WriteDeck(file, groups, opts.Format)
	default:
		err = fmt.Errorf("unknown export format %q", opts.Format)
	}
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}
