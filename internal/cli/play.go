package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quizdeck/internal/catalog"
	"quizdeck/internal/question"
	"quizdeck/internal/session"
	"quizdeck/internal/ui/live"
)

// playInput allows tests to override stdin for the quiz.
var playInput io.Reader = os.Stdin

// runLive runs the live UI; tests replace it.
var runLive = live.Run

func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := registerCommonFlags(fs)
		groupName := fs.String("group", "", "Group to play (default: ask when the file has several)")
		count := fs.Int("count", 0, "Number of questions (0 = all in range)")
		rangeText := fs.String("range", "", "Zero-based question range start:end (end exclusive)")
		shuffle := fs.Bool("shuffle", false, "Shuffle question order")
		shuffleChoices := fs.Bool("shuffle-choices", false, "Shuffle choices within each question")
		seedText := fs.String("seed", "", "Seed for shuffling")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		positional, exit := parseCommand(cmd, fs, args, 1, stdout, stderr)
		if exit != nil {
			return *exit
		}

		var window *session.Range
		if strings.TrimSpace(*rangeText) != "" {
			parsed, err := session.ParseRange(*rangeText)
			if err != nil {
				fmt.Fprintf(stderr, "invalid --range: %v\n", err)
				return ExitUsage
			}
			window = parsed
		}

		env, err := loadEnvironment(common)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer env.logger.Sync()

		seed, err := resolveSeed(*seedText, env.cfg.Session.Seed)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --seed: %v\n", err)
			return ExitUsage
		}
		mode := *uiMode
		if strings.TrimSpace(mode) == "" {
			mode = env.cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		c, err := loadCatalog(context.Background(), positional[0], catalogOptions(env.cfg), env.logger)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load %s: %v\n", positional[0], err)
			return ExitError
		}

		reader := bufio.NewReader(playInput)
		group, err := selectGroup(c, *groupName, reader, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}

		var shuffler session.Shuffler
		if seed != nil {
			shuffler = session.NewShuffler(*seed)
		}
		quiz := session.New(shuffler)
		opts := session.Options{
			Count:          *count,
			Range:          window,
			Shuffle:        *shuffle || env.cfg.Session.Shuffle,
			ShuffleChoices: *shuffleChoices || env.cfg.Session.ShuffleChoices,
		}
		if err := quiz.Configure(group.Questions, opts); err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			if errors.Is(err, session.ErrConfiguration) {
				return ExitUsage
			}
			return ExitError
		}
		logger := env.logger.With("session_id", quiz.ID(), "group", group.Name)
		logger.Info("quiz started", "questions", quiz.Len(), "ui", mode)

		if decision.useLive {
			model, err := live.NewModel(quiz, live.Options{Group: group.Name, NoColor: colorDisabled(*noColor, env.cfg.UI.NoColor)})
			if err != nil {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
			// Hand bubbletea the raw stream so it can switch a TTY to raw mode.
			var in io.Reader = reader
			if reader.Buffered() == 0 {
				in = playInput
			}
			if _, err := runLive(model, in, stdout); err != nil {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
		} else if err := runPlainQuiz(reader, stdout, quiz, group.Name); err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		logger.Info("quiz finished", "pass", quiz.Pass(), "state", quiz.State().String())
		return ExitOK
	}
}

// resolveSeed prefers the flag, then the config value; nil means unseeded.
func resolveSeed(flagValue string, configured *uint64) (*uint64, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return configured, nil
	}
	seed, err := strconv.ParseUint(flagValue, 10, 64)
	if err != nil {
		return nil, err
	}
	return &seed, nil
}

// selectGroup resolves the group to play, asking when the choice is ambiguous.
func selectGroup(c *catalog.Catalog, name string, reader *bufio.Reader, out io.Writer) (question.Group, error) {
	if strings.TrimSpace(name) != "" || c.Len() <= 1 {
		return c.Select(name)
	}
	names := c.Names()
	fmt.Fprintln(out, "Groups:")
	for i, n := range names {
		group, _ := c.Group(n)
		fmt.Fprintf(out, "  %d. %s (%d questions)\n", i+1, n, len(group.Questions))
	}
	index, err := promptMenu(reader, out, "Group", names)
	if err != nil {
		return question.Group{}, err
	}
	return c.Select(names[index])
}
