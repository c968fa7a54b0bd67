package duckdb_test

import (
	"testing"

	"quizdeck/internal/duckdb"
	"quizdeck/internal/question"
)

func sampleGroups() []question.Group {
	return []question.Group{
		{Name: "Zoology", Questions: []question.Question{
			{Prompt: "Mammal?", Choices: []string{"Shark", "Whale"}, CorrectAnswers: []int{1}},
			{Prompt: "Unkeyed", Choices: []string{"a", "b"}},
		}},
		{Name: "Algebra", Questions: []question.Question{
			{Prompt: "Even?", Choices: []string{"2", "3", "4"}, CorrectAnswers: []int{0, 2}},
		}},
	}
}

// TestSchemaObjectsExist verifies tables and views are created.
func TestSchemaObjectsExist(t *testing.T) {
	db, ctx := openTestDB(t)
	for _, table := range []string{"exports", "questions"} {
		count := queryInt(t, ctx, db, "SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?", table)
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	viewCount := queryInt(t, ctx, db, "SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'v_group_summary' AND table_type = 'VIEW'")
	if viewCount != 1 {
		t.Fatalf("expected view v_group_summary to exist")
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	db, ctx := openTestDB(t)
	if err := duckdb.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("second schema apply: %v", err)
	}
	if err := duckdb.EnsureSchema(ctx, nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}

func TestInsertDeckRoundTrip(t *testing.T) {
	db, ctx := openTestDB(t)
	exportID, err := duckdb.InsertDeck(ctx, db, "quiz.xlsx", sampleGroups())
	if err != nil {
		t.Fatalf("insert deck: %v", err)
	}
	if exportID == "" {
		t.Fatalf("expected export id")
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM questions WHERE export_id = ?", exportID); got != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}
	unkeyed := queryInt(t, ctx, db, "SELECT unkeyed_count FROM v_group_summary WHERE export_id = ? AND group_name = 'Zoology'", exportID)
	if unkeyed != 1 {
		t.Fatalf("expected 1 unkeyed question, got %d", unkeyed)
	}

	groups, err := duckdb.LoadGroups(ctx, db, exportID)
	if err != nil {
		t.Fatalf("load groups: %v", err)
	}
	if len(groups) != 2 || groups[0].Name != "Zoology" || groups[1].Name != "Algebra" {
		t.Fatalf("unexpected group order %+v", groups)
	}
	if groups[0].Questions[1].CorrectAnswers != nil {
		t.Fatalf("expected unkeyed question to load with nil key")
	}
	algebra := groups[1].Questions[0]
	if len(algebra.CorrectAnswers) != 2 || algebra.CorrectAnswers[1] != 2 || algebra.Choices[2] != "4" {
		t.Fatalf("unexpected algebra question %+v", algebra)
	}
}

func TestInsertDeckSeparatesExports(t *testing.T) {
	db, ctx := openTestDB(t)
	first, err := duckdb.InsertDeck(ctx, db, "a.xlsx", sampleGroups())
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := duckdb.InsertDeck(ctx, db, "b.xlsx", sampleGroups()[:1])
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first == second {
		t.Fatalf("export ids should differ")
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM exports"); got != 2 {
		t.Fatalf("expected 2 exports, got %d", got)
	}
	shared := queryInt(t, ctx, db, "SELECT COUNT(DISTINCT question_key) FROM questions")
	if shared != 3 {
		t.Fatalf("expected identical questions to share keys, got %d distinct", shared)
	}
}

func TestQuestionKeyStable(t *testing.T) {
	a := question.Question{Prompt: "p", Choices: []string{"x"}}
	b := question.Question{Prompt: "p", Choices: []string{"x"}, CorrectAnswers: []int{}}
	keyA, err := duckdb.QuestionKey(a)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	keyB, _ := duckdb.QuestionKey(b)
	if keyA != keyB {
		t.Fatalf("nil and empty keys should match")
	}
	c := question.Question{Prompt: "p", Choices: []string{"x"}, CorrectAnswers: []int{0}}
	keyC, _ := duckdb.QuestionKey(c)
	if keyC == keyA {
		t.Fatalf("key should depend on correct answers")
	}
}

func TestCanonicalList(t *testing.T) {
	got, err := duckdb.CanonicalList[int](nil)
	if err != nil || got != "[]" {
		t.Fatalf("unexpected nil encoding %q %v", got, err)
	}
	got, _ = duckdb.CanonicalList([]string{"a", "b"})
	if got != `["a","b"]` {
		t.Fatalf("unexpected encoding %q", got)
	}
}

func TestSummariesFollowGroupOrder(t *testing.T) {
	db, ctx := openTestDB(t)
	exportID, err := duckdb.InsertDeck(ctx, db, "quiz.xlsx", sampleGroups())
	if err != nil {
		t.Fatalf("insert deck: %v", err)
	}
	summaries, err := duckdb.Summaries(ctx, db, exportID)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %+v", summaries)
	}
	if summaries[0] != (duckdb.GroupSummary{Group: "Zoology", Questions: 2, Unkeyed: 1}) {
		t.Fatalf("unexpected first summary %+v", summaries[0])
	}
	if summaries[1] != (duckdb.GroupSummary{Group: "Algebra", Questions: 1, Unkeyed: 0}) {
		t.Fatalf("unexpected second summary %+v", summaries[1])
	}
	if empty, err := duckdb.Summaries(ctx, db, "missing"); err != nil || len(empty) != 0 {
		t.Fatalf("expected no rows for unknown export, got %+v (%v)", empty, err)
	}
}
