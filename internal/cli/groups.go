package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"quizdeck/internal/catalog"
	"quizdeck/internal/question"
)

var loadCatalog = catalog.Load

func runGroups(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer env.logger.Sync()

		c, err := loadCatalog(context.Background(), positional[0], catalogOptions(env.cfg), env.logger)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load %s: %v\n", positional[0], err)
			return ExitError
		}

		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		for _, group := range c.Groups() {
			line := fmt.Sprintf("%s\t%d questions", group.Name, len(group.Questions))
			if missing := countUnkeyed(group.Questions); missing > 0 {
				line += fmt.Sprintf(" (%d without a correct answer)", missing)
			}
			fmt.Fprintln(tw, line)
		}
		_ = tw.Flush()
		return ExitOK
	}
}

func countUnkeyed(questions []question.Question) int {
	count := 0
	for _, q := range questions {
		if !q.HasKey() {
			count++
		}
	}
	return count
}
