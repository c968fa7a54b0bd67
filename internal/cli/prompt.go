package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizdeck/internal/question"
	"quizdeck/internal/session"
)

// readAnswer reads one trimmed line. io.EOF is returned only when input ended
// before any text.
func readAnswer(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// promptYesNo asks a yes/no question. Blank input or end of input picks the default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		answer, err := readAnswer(reader)
		if err == io.EOF {
			return defaultYes, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(out, "Please answer y or n.")
	}
}

// promptMenu asks for one of options by 1-based number or exact text and returns its
// index. Blank input or end of input picks the first option.
func promptMenu(reader *bufio.Reader, out io.Writer, label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options for %s", label)
	}
	for {
		fmt.Fprintf(out, "%s [1]: ", label)
		answer, err := readAnswer(reader)
		if err == io.EOF || (err == nil && answer == "") {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		for i, option := range options {
			if option == answer {
				return i, nil
			}
		}
		fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", len(options))
	}
}

// promptSelection reads a choice letter or number. Blank skips; q or end of input quits.
func promptSelection(reader *bufio.Reader, out io.Writer, choices int) (session.Selection, bool, error) {
	last := question.Label(choices - 1)
	for {
		fmt.Fprintf(out, "Answer [A-%s, enter to skip, q to quit]: ", last)
		answer, err := readAnswer(reader)
		if err == io.EOF {
			return session.Selection{}, true, nil
		}
		if err != nil {
			return session.Selection{}, false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return session.NoAnswer(), false, nil
		case "q", "quit":
			return session.Selection{}, true, nil
		}
		if index, ok := parseChoice(answer, choices); ok {
			return session.Choose(index), false, nil
		}
		fmt.Fprintf(out, "Please enter a letter between A and %s.\n", last)
	}
}

// parseChoice accepts a label letter or a 1-based number.
func parseChoice(text string, choices int) (int, bool) {
	if n, err := strconv.Atoi(text); err == nil {
		if n >= 1 && n <= choices {
			return n - 1, true
		}
		return 0, false
	}
	for i := 0; i < choices; i++ {
		if strings.EqualFold(text, question.Label(i)) {
			return i, true
		}
	}
	return 0, false
}
