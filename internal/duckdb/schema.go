// Package duckdb stores exported question decks in a DuckDB database.
package duckdb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
)

//go:embed schema.sql
var schemaDDL string

// EnsureSchema creates the export tables and views that are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// GroupSummary is one row of v_group_summary.
type GroupSummary struct {
	Group     string
	Questions int
	Unkeyed   int
}

// Summaries reads the per-group counts of one export in group order.
func Summaries(ctx context.Context, db *sql.DB, exportID string) ([]GroupSummary, error) {
	rows, err := db.QueryContext(ctx, `
SELECT group_name, question_count, unkeyed_count
FROM v_group_summary
WHERE export_id = ?
ORDER BY group_position`, exportID)
	if err != nil {
		return nil, fmt.Errorf("query group summary: %w", err)
	}
	defer rows.Close()
	var out []GroupSummary
	for rows.Next() {
		var summary GroupSummary
		if err := rows.Scan(&summary.Group, &summary.Questions, &summary.Unkeyed); err != nil {
			return nil, fmt.Errorf("scan group summary: %w", err)
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}
