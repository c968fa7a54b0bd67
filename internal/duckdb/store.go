package duckdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"quizdeck/internal/question"
)

// Open opens (or creates) a DuckDB database file and applies the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InsertDeck writes every group of deck under a new export id and returns that id.
// All rows are written in one transaction.
func InsertDeck(ctx context.Context, db *sql.DB, source string, groups []question.Group) (string, error) {
	if ctx == nil {
		return "", errors.New("duckdb: context is nil")
	}
	if db == nil {
		return "", errors.New("duckdb: db is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exportID := uuid.NewString()
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO exports (export_id, source, created_at) VALUES (?, ?, ?)`,
		exportID,
		source,
		time.Now().UTC(),
	); err != nil {
		return "", fmt.Errorf("insert export: %w", err)
	}

	for groupPosition, group := range groups {
		for position, q := range group.Questions {
			if err := insertQuestion(ctx, tx, exportID, group.Name, groupPosition, position, q); err != nil {
				return "", fmt.Errorf("insert question %s[%d]: %w", group.Name, position, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit export: %w", err)
	}
	return exportID, nil
}

func insertQuestion(ctx context.Context, tx *sql.Tx, exportID, group string, groupPosition, position int, q question.Question) error {
	key, err := QuestionKey(q)
	if err != nil {
		return err
	}
	choices, err := CanonicalList(q.Choices)
	if err != nil {
		return err
	}
	correct, err := CanonicalList(q.CorrectAnswers)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO questions (question_id, export_id, question_key, group_name, group_position, position, prompt, choices, correct_answers)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		exportID,
		key,
		group,
		groupPosition,
		position,
		q.Prompt,
		choices,
		correct,
	)
	return err
}

// LoadGroups reads back the groups of one export in their stored order.
func LoadGroups(ctx context.Context, db *sql.DB, exportID string) ([]question.Group, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT group_name, prompt, choices, correct_answers
		 FROM questions
		 WHERE export_id = ?
		 ORDER BY group_position, position`,
		exportID,
	)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var groups []question.Group
	for rows.Next() {
		var (
			name, prompt, choices, correct string
			q                              question.Question
		)
		if err := rows.Scan(&name, &prompt, &choices, &correct); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Prompt = prompt
		if err := json.Unmarshal([]byte(choices), &q.Choices); err != nil {
			return nil, fmt.Errorf("decode choices: %w", err)
		}
		if err := json.Unmarshal([]byte(correct), &q.CorrectAnswers); err != nil {
			return nil, fmt.Errorf("decode correct answers: %w", err)
		}
		if len(q.CorrectAnswers) == 0 {
			q.CorrectAnswers = nil
		}
		if n := len(groups); n == 0 || groups[n-1].Name != name {
			groups = append(groups, question.Group{Name: name})
		}
		last := &groups[len(groups)-1]
		last.Questions = append(last.Questions, q)
	}
	return groups, rows.Err()
}
