package engine

import (
	"context"
	"testing"
	"time"

	"idealab/internal/catalog"
	"idealab/internal/storage"
)

var noon = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// seedPlan creates a plan and forces its stored streak state.
func seedPlan(t *testing.T, svc *Service, st *storage.MemStore, streak int, lastCompleted *string) *storage.Plan {
	t.Helper()
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{
		Name:  "Streaks",
		Type:  "game",
		Tasks: []storage.Task{{TaskID: "t-1", Label: "Build lobby"}},
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if streak != 0 || lastCompleted != nil {
		p, err = st.UpdateByID(ctx, p.ID.Hex(), storage.PlanPatch{
			StreakCount:       &streak,
			LastCompletedDate: lastCompleted,
		})
		if err != nil {
			t.Fatalf("seed streak state: %v", err)
		}
	}
	return p
}

func TestStreakTransitions(t *testing.T) {
	cases := []struct {
		name       string
		last       *string
		prior      int
		wantStreak int
	}{
		{"no prior completion", nil, 0, 1},
		{"already counted today", strptr("2025-06-10"), 4, 4},
		{"consecutive day", strptr("2025-06-09"), 4, 5},
		{"gap over one day", strptr("2025-06-07"), 4, 1},
		{"malformed stored date", strptr("not-a-date"), 4, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := storage.NewMemStore()
			svc := NewService(catalog.NewStore(), st)
			svc.now = func() time.Time { return noon }
			ctx := context.Background()

			p := seedPlan(t, svc, st, c.prior, c.last)

			updated, err := svc.PatchTasks(ctx, p.ID.Hex(), []storage.Task{
				{TaskID: "t-1", Label: "Build lobby", IsDone: true},
			})
			if err != nil {
				t.Fatalf("PatchTasks: %v", err)
			}
			if updated.StreakCount != c.wantStreak {
				t.Fatalf("streak=%d, want %d", updated.StreakCount, c.wantStreak)
			}
			if updated.LastCompletedDate == nil || *updated.LastCompletedDate != "2025-06-10" {
				t.Fatalf("lastCompletedDate=%v, want 2025-06-10", updated.LastCompletedDate)
			}
		})
	}
}

func TestStreakUnchangedWithoutCompletion(t *testing.T) {
	st := storage.NewMemStore()
	svc := NewService(catalog.NewStore(), st)
	svc.now = func() time.Time { return noon }
	ctx := context.Background()

	last := "2025-06-08"
	p := seedPlan(t, svc, st, 3, &last)

	updated, err := svc.PatchTasks(ctx, p.ID.Hex(), []storage.Task{
		{TaskID: "t-1", Label: "Build lobby", IsDone: false},
	})
	if err != nil {
		t.Fatalf("PatchTasks: %v", err)
	}
	if updated.StreakCount != 3 {
		t.Fatalf("streak=%d, want unchanged 3", updated.StreakCount)
	}
	if updated.LastCompletedDate == nil || *updated.LastCompletedDate != last {
		t.Fatalf("lastCompletedDate=%v, want unchanged %q", updated.LastCompletedDate, last)
	}
}

func TestCompletedAtStampedOnce(t *testing.T) {
	st := storage.NewMemStore()
	svc := NewService(catalog.NewStore(), st)
	svc.now = func() time.Time { return noon }
	ctx := context.Background()

	p := seedPlan(t, svc, st, 0, nil)

	first, err := svc.PatchTasks(ctx, p.ID.Hex(), []storage.Task{
		{TaskID: "t-1", Label: "Build lobby", IsDone: true},
	})
	if err != nil {
		t.Fatalf("first patch: %v", err)
	}
	stamp := first.Tasks[0].CompletedAt
	if stamp == nil {
		t.Fatalf("expected completedAt after first completion")
	}

	// Resend the same task later the same day; the stamp must survive.
	svc.now = func() time.Time { return noon.Add(2 * time.Hour) }
	second, err := svc.PatchTasks(ctx, p.ID.Hex(), first.Tasks)
	if err != nil {
		t.Fatalf("second patch: %v", err)
	}
	if second.Tasks[0].CompletedAt == nil || *second.Tasks[0].CompletedAt != *stamp {
		t.Fatalf("completedAt changed: %v -> %v", *stamp, second.Tasks[0].CompletedAt)
	}
	if second.StreakCount != 1 {
		t.Fatalf("streak=%d, want 1 (same day)", second.StreakCount)
	}
}

func TestPatchTasksRecomputesProgress(t *testing.T) {
	st := storage.NewMemStore()
	svc := NewService(catalog.NewStore(), st)
	svc.now = func() time.Time { return noon }
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{Name: "My Game", Type: "game"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if p.ProgressPercent != 0 || p.StreakCount != 0 || len(p.Tasks) != 0 {
		t.Fatalf("fresh plan: %+v", p)
	}

	updated, err := svc.PatchTasks(ctx, p.ID.Hex(), []storage.Task{
		{Label: "Build lobby", IsDone: true},
	})
	if err != nil {
		t.Fatalf("PatchTasks: %v", err)
	}
	if updated.ProgressPercent != 100 {
		t.Fatalf("progress=%d, want 100", updated.ProgressPercent)
	}
	if updated.StreakCount != 1 {
		t.Fatalf("streak=%d, want 1", updated.StreakCount)
	}
	if updated.Tasks[0].TaskID == "" || updated.Tasks[0].CompletedAt == nil {
		t.Fatalf("task not normalized/stamped: %+v", updated.Tasks[0])
	}
}
