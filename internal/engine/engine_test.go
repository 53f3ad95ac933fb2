package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"idealab/internal/catalog"
	"idealab/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(catalog.NewStore(), storage.NewMemStore())
}

func strptr(s string) *string { return &s }

func TestCreatePlanValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePlan(ctx, CreatePlanInput{Name: "  ", Type: "game"})
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Fatalf("expected name validation error, got %v", err)
	}

	_, err = svc.CreatePlan(ctx, CreatePlanInput{Name: "My Game", Type: "speedrun"})
	if !errors.As(err, &verr) || verr.Field != "type" {
		t.Fatalf("expected type validation error, got %v", err)
	}
}

func TestCreatePlanEmptyTasks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{Name: "My Game", Type: "game"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if p.ID.IsZero() {
		t.Fatalf("expected store-assigned id")
	}
	if p.ProgressPercent != 0 || p.StreakCount != 0 {
		t.Fatalf("progress=%d streak=%d, want 0/0", p.ProgressPercent, p.StreakCount)
	}
	if p.Tasks == nil || len(p.Tasks) != 0 {
		t.Fatalf("tasks=%v, want empty non-nil list", p.Tasks)
	}
	if p.LastCompletedDate != nil {
		t.Fatalf("lastCompletedDate=%q, want absent", *p.LastCompletedDate)
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("createdAt=%v updatedAt=%v, want equal non-zero", p.CreatedAt, p.UpdatedAt)
	}
}

func TestCreatePlanIdeaEnrichment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// idea-obby-lava has 5 mechanics, 4 fun hooks, 3 monetization ideas;
	// caps are 3/2/2.
	p, err := svc.CreatePlan(ctx, CreatePlanInput{
		Name:         "Lava Run",
		Type:         "game",
		LinkedIdeaID: strptr("idea-obby-lava"),
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if len(p.Tasks) != 7 {
		t.Fatalf("got %d tasks, want 7", len(p.Tasks))
	}

	wantLabels := []string{
		"Design: Jump timing",
		"Design: Moving platforms",
		"Design: Checkpoints",
		"Design: Daily challenges",
		"Design: Hidden rooms",
		"Plan monetization: Gamepasses: double coins, speed boost",
		"Plan monetization: Dev products: shield, checkpoint skip",
	}
	seen := map[string]bool{}
	for i, task := range p.Tasks {
		if task.Label != wantLabels[i] {
			t.Fatalf("task %d label=%q, want %q", i, task.Label, wantLabels[i])
		}
		if task.IsDone {
			t.Fatalf("task %d is done, want pending", i)
		}
		if task.TaskID == "" {
			t.Fatalf("task %d has empty id", i)
		}
		if seen[task.TaskID] {
			t.Fatalf("duplicate task id %q", task.TaskID)
		}
		seen[task.TaskID] = true
	}

	idea := svc.Catalog().GetIdea("idea-obby-lava")
	if p.Notes != idea.Concept {
		t.Fatalf("notes=%q, want idea concept", p.Notes)
	}
}

func TestCreatePlanPathEnrichment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// path-create-games has 5 checklist items, below the cap of 6.
	p, err := svc.CreatePlan(ctx, CreatePlanInput{
		Name:         "Earn",
		Type:         "earning",
		LinkedPathID: strptr("path-create-games"),
		Notes:        "my own notes",
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if len(p.Tasks) != 5 {
		t.Fatalf("got %d tasks, want 5", len(p.Tasks))
	}
	if p.Tasks[0].Label != "Install Roblox Studio" {
		t.Fatalf("task 0 label=%q", p.Tasks[0].Label)
	}
	if p.Notes != "my own notes" {
		t.Fatalf("notes=%q, caller notes must not be overwritten", p.Notes)
	}
}

func TestCreatePlanUnresolvableLinkSkipsEnrichment(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{
		Name:         "Ghost",
		Type:         "game",
		LinkedIdeaID: strptr("idea-does-not-exist"),
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if len(p.Tasks) != 0 {
		t.Fatalf("got %d tasks, want 0 (no enrichment)", len(p.Tasks))
	}
	if p.Notes != "" {
		t.Fatalf("notes=%q, want empty", p.Notes)
	}
}

func TestCreatePlanKeepsCallerTaskIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{
		Name: "Mixed",
		Type: "challenge",
		Tasks: []storage.Task{
			{TaskID: "custom-1", Label: "Keep my id"},
			{Label: "Assign me one"},
		},
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if p.Tasks[0].TaskID != "custom-1" {
		t.Fatalf("task 0 id=%q, want custom-1", p.Tasks[0].TaskID)
	}
	if p.Tasks[1].TaskID == "" || p.Tasks[1].TaskID == "custom-1" {
		t.Fatalf("task 1 id=%q, want fresh unique id", p.Tasks[1].TaskID)
	}
}

func TestProgressRounding(t *testing.T) {
	cases := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{4, 4, 100},
	}
	for _, c := range cases {
		tasks := make([]storage.Task, c.total)
		for i := 0; i < c.done; i++ {
			tasks[i].IsDone = true
		}
		if got := progressPercent(tasks); got != c.want {
			t.Fatalf("progress(%d/%d)=%d, want %d", c.done, c.total, got, c.want)
		}
	}
}

func TestReplacePlanLeavesDerivedFieldsAlone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{
		Name:  "Before",
		Type:  "game",
		Tasks: []storage.Task{{Label: "a", IsDone: true}, {Label: "b"}},
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	goal := 500
	updated, err := svc.ReplacePlan(ctx, p.ID.Hex(), UpdatePlanInput{
		Name:      strptr("After"),
		RobuxGoal: &goal,
	})
	if err != nil {
		t.Fatalf("ReplacePlan: %v", err)
	}
	if updated.Name != "After" || updated.RobuxGoal == nil || *updated.RobuxGoal != 500 {
		t.Fatalf("replace did not apply fields: %+v", updated)
	}
	if updated.ProgressPercent != p.ProgressPercent || updated.StreakCount != p.StreakCount {
		t.Fatalf("replace must not recompute derived fields")
	}
	if !updated.UpdatedAt.After(p.UpdatedAt) && !updated.UpdatedAt.Equal(p.UpdatedAt) {
		t.Fatalf("updatedAt went backwards")
	}
}

func TestPatchNotes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{Name: "Notes", Type: "game"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	updated, err := svc.PatchNotes(ctx, p.ID.Hex(), "new notes")
	if err != nil {
		t.Fatalf("PatchNotes: %v", err)
	}
	if updated.Notes != "new notes" {
		t.Fatalf("notes=%q", updated.Notes)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePlan(ctx, CreatePlanInput{Name: "Gone", Type: "game"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if err := svc.DeletePlan(ctx, p.ID.Hex()); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	if _, err := svc.GetPlan(ctx, p.ID.Hex()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeletePlan(ctx, p.ID.Hex()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestInvalidIDDistinctFromNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.GetPlan(ctx, "not-a-hex-id"); !errors.Is(err, storage.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	// Well-formed but absent.
	if _, err := svc.GetPlan(ctx, "64b000000000000000000000"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNoStoreConfigured(t *testing.T) {
	svc := NewService(catalog.NewStore(), nil)
	ctx := context.Background()

	if _, err := svc.ListPlans(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := svc.CreatePlan(ctx, CreatePlanInput{Name: "X", Type: "game"}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	// Validation still rejects before reaching the store check.
	var verr ValidationError
	if _, err := svc.CreatePlan(ctx, CreatePlanInput{Name: "X", Type: "bad"}); !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClockIsUTC(t *testing.T) {
	svc := newTestService(t)
	loc := time.FixedZone("UTC+9", 9*3600)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 2, 0, 0, 0, loc) }

	p, err := svc.CreatePlan(context.Background(), CreatePlanInput{Name: "TZ", Type: "game"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if p.CreatedAt.Location() != time.UTC {
		t.Fatalf("createdAt not UTC: %v", p.CreatedAt)
	}
}
