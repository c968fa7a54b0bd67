// Package export writes question groups to CSV, deck files, or DuckDB.
package export

import (
	"fmt"
	"strings"
)

// Format names an export target.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatDuckDB Format = "duckdb"
)

// DefaultDelimiter joins choices and correct answers inside one CSV cell.
const DefaultDelimiter = "; "

// AnswerStyle selects how the CSV Correct_Answers cell names the key.
type AnswerStyle string

const (
	// AnswerText repeats the text of each correct choice.
	AnswerText AnswerStyle = "text"
	// AnswerIndex writes the zero-based choice indices.
	AnswerIndex AnswerStyle = "index"
)

// ParseAnswerStyle validates an answer style name; blank means AnswerText.
func ParseAnswerStyle(value string) (AnswerStyle, error) {
	switch AnswerStyle(strings.ToLower(strings.TrimSpace(value))) {
	case "", AnswerText:
		return AnswerText, nil
	case AnswerIndex:
		return AnswerIndex, nil
	default:
		return "", fmt.Errorf("unknown answer style %q (expected text or index)", value)
	}
}

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatDuckDB:
		return FormatDuckDB, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected csv, yaml, json, or duckdb)", value)
	}
}
