package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quizdeck/internal/catalog"
	"quizdeck/internal/config"
	"quizdeck/internal/extract"
	"quizdeck/internal/logging"
	"quizdeck/internal/signal"
	"quizdeck/internal/source"
)

// commonFlags are accepted by every command that reads a source file.
type commonFlags struct {
	configPath *string
	logLevel   *string
}

func registerCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", "", "Path to config file (default: search for .quizdeck/config.yml)"),
		logLevel:   fs.String("log-level", "", "Log level override (debug|info|warn|error)"),
	}
}

// environment is the resolved config and logger for one command.
type environment struct {
	cfg        config.Config
	configPath string
	logger     *logging.Logger
}

// loadEnvironment resolves the config file and builds the logger.
func loadEnvironment(flags commonFlags) (environment, error) {
	explicit := strings.TrimSpace(*flags.configPath)
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return environment{}, fmt.Errorf("resolve config path: %w", err)
		}
		explicit = abs
	}
	cfg, path, err := config.Resolve(explicit, "")
	if err != nil {
		return environment{}, err
	}
	level := cfg.Log.Level
	if override := strings.TrimSpace(*flags.logLevel); override != "" {
		level = override
	}
	logger, err := logging.New(cfg.Log.Mode, level)
	if err != nil {
		return environment{}, err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}
	return environment{cfg: cfg, configPath: path, logger: logger}, nil
}

// catalogOptions maps config sections onto the source readers.
func catalogOptions(cfg config.Config) catalog.Options {
	opts := catalog.DefaultOptions()
	if cfg.Spreadsheet.HeaderRows != nil {
		opts.Workbook.HeaderRows = *cfg.Spreadsheet.HeaderRows
	}
	opts.Fill = signal.FillDetector{NoFill: cfg.Spreadsheet.NoFill}
	opts.Markers = extract.Markers{
		Question:        cfg.Heuristic.QuestionMarkers,
		Answer:          cfg.Heuristic.AnswerMarkers,
		Instruction:     cfg.Heuristic.InstructionMarkers,
		JoinPromptLines: cfg.Heuristic.JoinPromptLines,
	}
	opts.PDF = source.PDFOptions{
		Tool:    cfg.PDF.PdftotextPath,
		Timeout: time.Duration(cfg.PDF.TimeoutSeconds) * time.Second,
	}
	return opts
}

// defaultConfigTarget is where init writes when no path is given.
func defaultConfigTarget() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.ConfigPath(wd), nil
}

// parseArgs parses flags that may appear before or after positional arguments.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// parseCommand parses args and requires exactly want positional arguments. A non-nil
// exit code means the command should return it.
func parseCommand(cmd *Command, fs *flag.FlagSet, args []string, want int, stdout, stderr io.Writer) ([]string, *int) {
	positional, err := parseArgs(fs, args)
	if err != nil {
		code := ExitUsage
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			code = ExitOK
			return nil, &code
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return nil, &code
	}
	if len(positional) != want {
		code := ExitUsage
		if len(positional) < want {
			fmt.Fprintln(stderr, "missing source file")
		} else {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(positional[want:], " "))
		}
		printCommandUsage(cmd, stderr)
		return nil, &code
	}
	return positional, nil
}
