package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/humantone/humantone/pkg/humantone/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// TestSQLiteIntegrationBasic tests basic save/get round-trips
func TestSQLiteIntegrationBasic(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	run := store.Run{
		ID:           "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		CreatedAt:    time.Now().UTC(),
		InputWords:   240,
		OutputWords:  251,
		StepsApplied: []string{"cliche-removal", "contractions", "hedging"},
		ElapsedMs:    7,
		ScoreBefore:  58,
		ScoreAfter:   92,
		RiskBefore:   "HIGH",
		RiskAfter:    "LOW",
	}

	if err := st.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, found, err := st.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if !found {
		t.Fatal("Run should be found")
	}

	if got.InputWords != run.InputWords || got.OutputWords != run.OutputWords {
		t.Errorf("Word counts mismatch: got %d/%d, want %d/%d",
			got.InputWords, got.OutputWords, run.InputWords, run.OutputWords)
	}
	if len(got.StepsApplied) != 3 || got.StepsApplied[0] != "cliche-removal" {
		t.Errorf("Steps mismatch: got %v", got.StepsApplied)
	}
	if got.RiskAfter != "LOW" {
		t.Errorf("RiskAfter mismatch: got %q", got.RiskAfter)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, run.CreatedAt)
	}
}

// TestSQLiteIntegrationUpsert tests that re-saving a run replaces it
func TestSQLiteIntegrationUpsert(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	id := "01ARZ3NDEKTSV4RRFFQ69G5FAV"

	first := store.Run{ID: id, CreatedAt: time.Now().UTC(), ScoreAfter: 80}
	if err := st.SaveRun(ctx, first); err != nil {
		t.Fatalf("First SaveRun: %v", err)
	}

	second := first
	second.ScoreAfter = 95
	second.StepsApplied = []string{"hedging"}
	if err := st.SaveRun(ctx, second); err != nil {
		t.Fatalf("Second SaveRun: %v", err)
	}

	got, found, err := st.GetRun(ctx, id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if !found {
		t.Fatal("Run should be found after update")
	}
	if got.ScoreAfter != 95 {
		t.Errorf("ScoreAfter should be updated, got %d", got.ScoreAfter)
	}
	if len(got.StepsApplied) != 1 || got.StepsApplied[0] != "hedging" {
		t.Errorf("Steps should be replaced, got %v", got.StepsApplied)
	}

	runs, err := st.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Upsert should not duplicate rows, got %d", len(runs))
	}
}

// TestSQLiteIntegrationGetMissing tests lookups for absent IDs
func TestSQLiteIntegrationGetMissing(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, found, err := st.GetRun(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if found {
		t.Error("Missing run should not be found")
	}
}

// TestSQLiteIntegrationListOrder tests newest-first ordering and limits
func TestSQLiteIntegrationListOrder(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		run := store.Run{
			ID:        fmt.Sprintf("01ARZ3NDEKTSV4RRFFQ69G5FA%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := st.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun %d: %v", i, err)
		}
	}

	runs, err := st.ListRuns(ctx, 3)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit=3, got %d", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i-1].CreatedAt.Before(runs[i].CreatedAt) {
			t.Error("Runs should be ordered newest first")
		}
	}
	if runs[0].ID != "01ARZ3NDEKTSV4RRFFQ69G5FA4" {
		t.Errorf("Newest run should come first, got %s", runs[0].ID)
	}
}

// TestSQLiteIntegrationRejectsEmptyID tests input validation
func TestSQLiteIntegrationRejectsEmptyID(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	if err := st.SaveRun(ctx, store.Run{}); err == nil {
		t.Error("SaveRun without an ID should fail")
	}
}
