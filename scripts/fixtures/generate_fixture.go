package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"quizdeck/internal/duckdb"
	"quizdeck/internal/question"
)

// fixtureConfig defines the JSON config for generating sample source files.
type fixtureConfig struct {
	Name      string `json:"name"`
	Groups    int    `json:"groups"`
	Questions int    `json:"questions"`
	Choices   int    `json:"choices"`
	DuckDB    bool   `json:"duckdb"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outDir := flag.String("out", "", "output directory")
	flag.Parse()
	if *configPath == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <dir>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outDir, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "sample"
	}
	if cfg.Groups < 1 || cfg.Questions < 1 || cfg.Choices < 2 {
		return fixtureConfig{}, fmt.Errorf("groups and questions must be positive and choices at least 2")
	}
	return cfg, nil
}

func generateFixture(ctx context.Context, dir string, cfg fixtureConfig) error {
	groups := fixtureGroups(cfg)
	workbook := filepath.Join(dir, cfg.Name+".xlsx")
	if err := removeIfExists(workbook); err != nil {
		return err
	}
	if err := writeWorkbook(workbook, groups); err != nil {
		return err
	}
	document := filepath.Join(dir, cfg.Name+".docx")
	if err := removeIfExists(document); err != nil {
		return err
	}
	if err := writeDocument(document, groups[0]); err != nil {
		return err
	}
	if !cfg.DuckDB {
		return nil
	}
	dbPath := filepath.Join(dir, cfg.Name+".duckdb")
	if err := removeIfExists(dbPath); err != nil {
		return err
	}
	db, err := duckdb.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = duckdb.InsertDeck(ctx, db, "fixture-"+deterministicID(cfg.Name, 0), groups)
	return err
}

// fixtureGroups builds repeatable groups; question i marks choice i mod n correct.
func fixtureGroups(cfg fixtureConfig) []question.Group {
	groups := make([]question.Group, 0, cfg.Groups)
	for g := 0; g < cfg.Groups; g++ {
		group := question.Group{Name: fmt.Sprintf("Group %d", g+1)}
		for i := 0; i < cfg.Questions; i++ {
			q := question.Question{
				Prompt:         fmt.Sprintf("Group %d question %d?", g+1, i+1),
				CorrectAnswers: []int{i % cfg.Choices},
			}
			for c := 0; c < cfg.Choices; c++ {
				q.Choices = append(q.Choices, fmt.Sprintf("answer %d.%d", i+1, c+1))
			}
			group.Questions = append(group.Questions, q)
		}
		groups = append(groups, group)
	}
	return groups
}

// writeWorkbook lays each group out as a sheet with filled correct choices.
func writeWorkbook(path string, groups []question.Group) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	marked, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
	})
	if err != nil {
		return err
	}
	for gi, group := range groups {
		if gi == 0 {
			if err := f.SetSheetName("Sheet1", group.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(group.Name); err != nil {
			return err
		}
		header := []any{"#", "Question", "Choice"}
		if err := f.SetSheetRow(group.Name, "A1", &header); err != nil {
			return err
		}
		row := 2
		for qi, q := range group.Questions {
			for ci, choice := range q.Choices {
				values := []any{"", "", choice}
				if ci == 0 {
					values = []any{qi + 1, q.Prompt, choice}
				}
				cell, _ := excelize.CoordinatesToCellName(1, row)
				if err := f.SetSheetRow(group.Name, cell, &values); err != nil {
					return err
				}
				if q.IsCorrect(ci) {
					choiceCell, _ := excelize.CoordinatesToCellName(3, row)
					if err := f.SetCellStyle(group.Name, choiceCell, choiceCell, marked); err != nil {
						return err
					}
				}
				row++
			}
		}
	}
	return f.SaveAs(path)
}
