package cli

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"quizdeck/internal/testutil"
)

const twoGroupDeck = `version: 1
groups:
  - name: Basics
    questions:
      - question: "2+2?"
        choices: ["3", "4"]
        correct_answers: [1]
      - question: "Capital of France?"
        choices: ["London", "Paris", "Rome"]
        correct_answers: [1]
  - name: Extra
    questions:
      - question: "Unkeyed?"
        choices: ["yes", "no"]
`

const oneGroupDeck = `version: 1
groups:
  - name: Basics
    questions:
      - question: "2+2?"
        choices: ["3", "4"]
        correct_answers: [1]
      - question: "Capital of France?"
        choices: ["London", "Paris", "Rome"]
        correct_answers: [1]
`

// writeFile writes a fixture under dir and returns its path.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	return testutil.WriteFile(t, dir, name, body)
}

// writeTestConfig writes a config that keeps the logger quiet.
func writeTestConfig(t *testing.T, dir string, extra string) string {
	t.Helper()
	return writeFile(t, dir, filepath.Join(".quizdeck", "config.yml"), "version: 1\nlog:\n  level: error\n"+extra)
}

// withPlayInput feeds lines to the quiz prompts for one test.
func withPlayInput(t *testing.T, lines ...string) {
	t.Helper()
	original := playInput
	playInput = strings.NewReader(strings.Join(lines, "\n") + "\n")
	t.Cleanup(func() { playInput = original })
}

// withTTY forces the terminal check for one test.
func withTTY(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}
