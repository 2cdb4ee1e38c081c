package services

import (
	"context"
	"sync"
	"testing"
	"github.com/langfu/langfu-backend/internal/repos"
)

func newProgress(t *testing.T) *progressService {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	return NewProgressService(db, log, repos.NewProgressRepo(db, log), nil).(*progressService)
}

func TestEnsureProgressIdempotent(t *testing.T) {
	ps := newProgress(t)
	user := seedUser(t, ps.db)
	ctx := context.Background()

	if err := ps.EnsureProgress(ctx, user.ID, "de"); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if _, err := ps.ApplySessionResult(ctx, user.ID, "de", 5, 50); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	// Re-ensuring an existing pair must not reset the totals.
	if err := ps.EnsureProgress(ctx, user.ID, "de"); err != nil {
		t.Fatalf("re-ensure failed: %v", err)
	}
	row, err := ps.progressRepo.GetByUserAndLanguage(ctx, nil, user.ID, "de")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if row.WordsLearned != 5 || row.TotalScore != 50 || row.CurrentStreak != 1 {
		t.Fatalf("ensure clobbered existing totals: %+v", row)
	}
}

func TestApplySessionResultIncrements(t *testing.T) {
	ps := newProgress(t)
	user := seedUser(t, ps.db)
	ctx := context.Background()

	// Two applications with the same deltas must accumulate, not overwrite:
	// the counters move via SQL-side increments.
	if _, err := ps.ApplySessionResult(ctx, user.ID, "de", 5, 10); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	row, err := ps.ApplySessionResult(ctx, user.ID, "de", 5, 10)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if row.WordsLearned != 10 {
		t.Fatalf("words learned = %d, want 10", row.WordsLearned)
	}
	if row.TotalScore != 20 {
		t.Fatalf("total score = %d, want 20", row.TotalScore)
	}
	if row.CurrentStreak != 2 {
		t.Fatalf("streak = %d, want 2 (bumped per session)", row.CurrentStreak)
	}
	if row.LastPractice == nil {
		t.Fatalf("last practice must be set")
	}
}

func TestApplySessionResultSeparateLanguages(t *testing.T) {
	ps := newProgress(t)
	user := seedUser(t, ps.db)
	ctx := context.Background()

	if _, err := ps.ApplySessionResult(ctx, user.ID, "de", 3, 30); err != nil {
		t.Fatalf("apply de failed: %v", err)
	}
	if _, err := ps.ApplySessionResult(ctx, user.ID, "es", 4, 40); err != nil {
		t.Fatalf("apply es failed: %v", err)
	}

	rows, err := ps.GetForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rollups, got %d", len(rows))
	}
	for _, row := range rows {
		switch row.Language {
		case "de":
			if row.WordsLearned != 3 || row.TotalScore != 30 {
				t.Fatalf("de rollup wrong: %+v", row)
			}
		case "es":
			if row.WordsLearned != 4 || row.TotalScore != 40 {
				t.Fatalf("es rollup wrong: %+v", row)
			}
		default:
			t.Fatalf("unexpected language %q", row.Language)
		}
	}
}

func TestApplySessionResultConcurrent(t *testing.T) {
	ps := newProgress(t)
	user := seedUser(t, ps.db)
	ctx := context.Background()

	// Two sessions landing at the same time must both count. The counters
	// move via SQL-side increments, so neither writer can overwrite the
	// other's delta the way a read-modify-write would.
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ps.ApplySessionResult(ctx, user.ID, "de", 5, 10); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent apply failed: %v", err)
	}

	row, err := ps.progressRepo.GetByUserAndLanguage(ctx, nil, user.ID, "de")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if row.WordsLearned != 10 {
		t.Fatalf("words learned = %d, want 10 (one delta was lost)", row.WordsLearned)
	}
	if row.TotalScore != 20 {
		t.Fatalf("total score = %d, want 20 (one delta was lost)", row.TotalScore)
	}
	if row.CurrentStreak != 2 {
		t.Fatalf("streak = %d, want 2", row.CurrentStreak)
	}
}
