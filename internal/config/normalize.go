package config

import (
	"strings"

	"quizdeck/internal/extract"
	"quizdeck/internal/signal"
)

// Default values applied by Normalize.
const (
	DefaultLogMode         = "dev"
	DefaultLogLevel        = "warn"
	DefaultHeaderRows      = 1
	DefaultPDFTimeout      = 120
	DefaultUIMode          = "auto"
	DefaultExportDelimiter = "; "
	DefaultExportAnswers   = "text"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{Version: Version}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills unset fields with defaults.
func Normalize(cfg *Config) {
	cfg.Log.Mode = strings.ToLower(strings.TrimSpace(cfg.Log.Mode))
	if cfg.Log.Mode == "" {
		cfg.Log.Mode = DefaultLogMode
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	if cfg.Spreadsheet.HeaderRows == nil {
		rows := DefaultHeaderRows
		cfg.Spreadsheet.HeaderRows = &rows
	}
	cfg.Spreadsheet.NoFill = strings.ToUpper(strings.TrimSpace(cfg.Spreadsheet.NoFill))
	if cfg.Spreadsheet.NoFill == "" {
		cfg.Spreadsheet.NoFill = signal.NoFill
	}

	defaults := extract.DefaultMarkers()
	cfg.Heuristic.QuestionMarkers = markersOr(cfg.Heuristic.QuestionMarkers, defaults.Question)
	cfg.Heuristic.AnswerMarkers = markersOr(cfg.Heuristic.AnswerMarkers, defaults.Answer)
	cfg.Heuristic.InstructionMarkers = markersOr(cfg.Heuristic.InstructionMarkers, defaults.Instruction)

	cfg.PDF.PdftotextPath = strings.TrimSpace(cfg.PDF.PdftotextPath)
	if cfg.PDF.TimeoutSeconds == 0 {
		cfg.PDF.TimeoutSeconds = DefaultPDFTimeout
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	if cfg.Export.Delimiter == "" {
		cfg.Export.Delimiter = DefaultExportDelimiter
	}
	cfg.Export.Answers = strings.ToLower(strings.TrimSpace(cfg.Export.Answers))
	if cfg.Export.Answers == "" {
		cfg.Export.Answers = DefaultExportAnswers
	}
}

// markersOr trims values; an unset list takes the defaults.
func markersOr(values, defaults []string) []string {
	if values == nil {
		return append([]string(nil), defaults...)
	}
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = strings.TrimSpace(value)
	}
	return out
}
