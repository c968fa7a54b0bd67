package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

log:
  mode: dev        # dev (console) or prod (json)
  level: warn

spreadsheet:
  header_rows: 1   # rows skipped at the top of every sheet
  no_fill: "00000000"

heuristic:
  question_markers:
    - "Câu Hỏi"
  answer_markers:
    - "Câu trả lời đúng là:"
    - "Đáp án chính xác là"
    - "The correct answers are"
    - "The correct answer is"
  instruction_markers:
    - "Chọn câu:"
    - "Chọn một hoặc nhiều hơn:"
    - "Select one:"
    - "Select one or more:"
  join_prompt_lines: false

pdf:
  pdftotext_path: ""   # empty reads in process, then tries pdftotext from PATH
  timeout_seconds: 120

session:
  shuffle: false
  shuffle_choices: false

ui:
  mode: auto       # auto, live, or plain
  no_color: false

export:
  delimiter: "; "
  answers: text    # text or index, for the CSV Correct_Answers column
`

// DefaultConfigYAML returns the scaffolded config text.
func DefaultConfigYAML() string {
	return defaultConfig
}

// Scaffold writes the default config to path, creating its directory.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
