package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizdeck/internal/export"
	"quizdeck/internal/question"
)

func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := registerCommonFlags(fs)
		outPath := fs.String("out", "", "Output path")
		formatName := fs.String("format", "", "Output format: csv|yaml|json|duckdb (default: from --out extension)")
		groupName := fs.String("group", "", "Export only this group")
		delimiter := fs.String("delimiter", "", "Separator for choices inside a CSV cell")
		answersName := fs.String("answers", "", "CSV Correct_Answers style: text|index (default: from config)")
		positional, exit := parseCommand(cmd, fs, args, 1, stdout, stderr)
		if exit != nil {
			return *exit
		}
		if strings.TrimSpace(*outPath) == "" {
			fmt.Fprintln(stderr, "--out is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		format, err := resolveExportFormat(*formatName, *outPath)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		flagAnswers, err := export.ParseAnswerStyle(*answersName)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		env, err := loadEnvironment(common)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		defer env.logger.Sync()

		ctx := context.Background()
		c, err := loadCatalog(ctx, positional[0], catalogOptions(env.cfg), env.logger)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load %s: %v\n", positional[0], err)
			return ExitError
		}
		groups := c.Groups()
		if strings.TrimSpace(*groupName) != "" {
			group, err := c.Select(*groupName)
			if err != nil {
				fmt.Fprintf(stderr, "Export failed: %v\n", err)
				return ExitError
			}
			groups = []question.Group{group}
		}

		sep := env.cfg.Export.Delimiter
		if *delimiter != "" {
			sep = *delimiter
		}
		answers := export.AnswerStyle(env.cfg.Export.Answers)
		if *answersName != "" {
			answers = flagAnswers
		}
		summary, err := export.ToFile(ctx, *outPath, groups, export.Options{
			Format:    format,
			Delimiter: sep,
			Answers:   answers,
			Source:    positional[0],
		})
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		env.logger.Info("export written", "path", summary.Path, "format", string(format), "questions", summary.Questions)
		fmt.Fprintf(stdout, "Wrote %d questions in %d groups to %s\n", summary.Questions, summary.Groups, summary.Path)
		if summary.ExportID != "" {
			fmt.Fprintf(stdout, "Export ID: %s\n", summary.ExportID)
		}
		return ExitOK
	}
}

// resolveExportFormat prefers an explicit format, then the output extension.
func resolveExportFormat(name, outPath string) (export.Format, error) {
	if strings.TrimSpace(name) != "" {
		return export.ParseFormat(name)
	}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".csv":
		return export.FormatCSV, nil
	case ".yml", ".yaml":
		return export.FormatYAML, nil
	case ".json":
		return export.FormatJSON, nil
	case ".duckdb", ".db":
		return export.FormatDuckDB, nil
	default:
		return "", fmt.Errorf("cannot infer format from %q; pass --format", outPath)
	}
}
