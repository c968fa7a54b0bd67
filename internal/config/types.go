package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Version is the only supported config schema version.
const Version = 1

// Config is the parsed .quizdeck/config.yml.
type Config struct {
	Version     int               `yaml:"version"`
	Log         LogConfig         `yaml:"log"`
	Spreadsheet SpreadsheetConfig `yaml:"spreadsheet"`
	Heuristic   HeuristicConfig   `yaml:"heuristic"`
	PDF         PDFConfig         `yaml:"pdf"`
	Session     SessionConfig     `yaml:"session"`
	UI          UIConfig          `yaml:"ui"`
	Export      ExportConfig      `yaml:"export"`
}

type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

type SpreadsheetConfig struct {
	// HeaderRows is a pointer so an explicit 0 survives defaulting.
	HeaderRows *int   `yaml:"header_rows"`
	NoFill     string `yaml:"no_fill"`
}

type HeuristicConfig struct {
	QuestionMarkers    []string `yaml:"question_markers"`
	AnswerMarkers      []string `yaml:"answer_markers"`
	InstructionMarkers []string `yaml:"instruction_markers"`
	JoinPromptLines    bool     `yaml:"join_prompt_lines"`
}

type PDFConfig struct {
	PdftotextPath  string `yaml:"pdftotext_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type SessionConfig struct {
	Shuffle        bool `yaml:"shuffle"`
	ShuffleChoices bool `yaml:"shuffle_choices"`
	// Seed fixes shuffling; nil seeds from the clock.
	Seed *uint64 `yaml:"seed"`
}

type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

type ExportConfig struct {
	Delimiter string `yaml:"delimiter"`
	// Answers is "text" or "index" for the CSV Correct_Answers cell.
	Answers string `yaml:"answers"`
}

// ParseConfig strictly decodes a single YAML document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return Config{}, fmt.Errorf("parse config: empty document")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
