package config

import (
	"fmt"
	"strings"

	"quizdeck/internal/logging"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	if cfg.Version != Version {
		collector.add("version", fmt.Sprintf("unsupported version %d (expected %d)", cfg.Version, Version))
	}

	switch cfg.Log.Mode {
	case "dev", "development", "prod", "production":
	default:
		collector.add("log.mode", fmt.Sprintf("must be dev or prod (got %q)", cfg.Log.Mode))
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		collector.add("log.level", err.Error())
	}

	if cfg.Spreadsheet.HeaderRows != nil && *cfg.Spreadsheet.HeaderRows < 0 {
		collector.add("spreadsheet.header_rows", "must be zero or greater")
	}
	if !isARGB(cfg.Spreadsheet.NoFill) {
		collector.add("spreadsheet.no_fill", fmt.Sprintf("must be an 8-digit ARGB hex value (got %q)", cfg.Spreadsheet.NoFill))
	}

	if len(cfg.Heuristic.QuestionMarkers) == 0 {
		collector.add("heuristic.question_markers", "must include at least one entry")
	}
	validateMarkers(collector, "heuristic.question_markers", cfg.Heuristic.QuestionMarkers)
	validateMarkers(collector, "heuristic.answer_markers", cfg.Heuristic.AnswerMarkers)
	validateMarkers(collector, "heuristic.instruction_markers", cfg.Heuristic.InstructionMarkers)

	if cfg.PDF.TimeoutSeconds < 0 {
		collector.add("pdf.timeout_seconds", "must be zero or greater")
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("must be auto, live, or plain (got %q)", cfg.UI.Mode))
	}
	if strings.ContainsAny(cfg.Export.Delimiter, "\r\n") {
		collector.add("export.delimiter", "must not contain line breaks")
	}
	switch cfg.Export.Answers {
	case "text", "index":
	default:
		collector.add("export.answers", fmt.Sprintf("must be text or index (got %q)", cfg.Export.Answers))
	}
	return collector.result()
}

func validateMarkers(collector *issueCollector, field string, markers []string) {
	for i, marker := range markers {
		if marker == "" {
			collector.add(fmt.Sprintf("%s[%d]", field, i), "must not be blank")
		}
	}
}

func isARGB(value string) bool {
	if len(value) != 8 {
		return false
	}
	for _, r := range value {
		if !strings.ContainsRune("0123456789ABCDEFabcdef", r) {
			return false
		}
	}
	return true
}
