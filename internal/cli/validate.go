package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"quizdeck/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := registerCommonFlags(fs)
		positional, exit := parseCommand(cmd, fs, args, 1, stdout, stderr)
		if exit != nil {
			return *exit
		}

		env, err := loadEnvironment(common)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		defer env.logger.Sync()

		c, err := loadCatalog(context.Background(), positional[0], catalogOptions(env.cfg), env.logger)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		total, invalid := 0, 0
		for _, group := range c.Groups() {
			total += len(group.Questions)
			fmt.Fprintf(stdout, "%s: %d questions\n", group.Name, len(group.Questions))
			for i, q := range group.Questions {
				if err := question.Validate(q); err != nil {
					invalid++
					fmt.Fprintf(stderr, "%s question %d: %v\n", group.Name, i+1, err)
					continue
				}
				if !q.HasKey() {
					fmt.Fprintf(stdout, "  warning: question %d has no correct answer\n", i+1)
				}
			}
		}
		if invalid > 0 {
			fmt.Fprintf(stderr, "Validation failed: %d invalid questions\n", invalid)
			return ExitError
		}
		if total == 0 {
			fmt.Fprintln(stderr, "Validation failed: no questions found")
			return ExitError
		}
		fmt.Fprintf(stdout, "OK: %d groups, %d questions\n", c.Len(), total)
		return ExitOK
	}
}
