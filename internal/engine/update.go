package engine

import (
	"context"
	"time"

	"idealab/internal/storage"
)

type UpdatePlanInput struct {
	Name         *string
	Type         *string
	LinkedIdeaID *string
	LinkedPathID *string
	RobuxGoal    *int
	Notes        *string
	StreakCount  *int
}

// ReplacePlan overwrites the provided fields plus updatedAt. The task list
// is deliberately not part of the input: task edits go through PatchTasks
// so progress and streak stay consistent.
func (s *Service) ReplacePlan(ctx context.Context, id string, in UpdatePlanInput) (*storage.Plan, error) {
	if in.Name != nil {
		name, err := normalizeName(*in.Name)
		if err != nil {
			return nil, err
		}
		in.Name = &name
	}
	if in.Type != nil && !PlanType(*in.Type).IsValid() {
		return nil, ValidationError{Field: "type", Reason: "must be one of game, earning, challenge"}
	}

	st, err := s.store()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return st.UpdateByID(ctx, id, storage.PlanPatch{
		Name:         in.Name,
		Type:         in.Type,
		LinkedIdeaID: in.LinkedIdeaID,
		LinkedPathID: in.LinkedPathID,
		RobuxGoal:    in.RobuxGoal,
		Notes:        in.Notes,
		StreakCount:  in.StreakCount,
		UpdatedAt:    &now,
	})
}

// PatchTasks replaces the task list, stamps first-time completions, and
// recomputes progress and streak state.
func (s *Service) PatchTasks(ctx context.Context, id string, tasks []storage.Task) (*storage.Plan, error) {
	st, err := s.store()
	if err != nil {
		return nil, err
	}

	plan, err := st.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	tasks = normalizeTasks(tasks)

	// completedAt is written exactly once, on the first transition to done.
	completed := false
	for i := range tasks {
		if tasks[i].IsDone && tasks[i].CompletedAt == nil {
			stamp := now.Format(time.RFC3339)
			tasks[i].CompletedAt = &stamp
			completed = true
		}
	}

	patch := storage.PlanPatch{
		Tasks:     &tasks,
		UpdatedAt: &now,
	}
	progress := progressPercent(tasks)
	patch.ProgressPercent = &progress

	// The streak advances at most once per calendar day, evaluated once per
	// call regardless of how many tasks completed.
	if completed {
		streak, lastDate := applyStreak(plan.StreakCount, plan.LastCompletedDate, now)
		patch.StreakCount = &streak
		patch.LastCompletedDate = &lastDate
	}

	return st.UpdateByID(ctx, id, patch)
}

// PatchNotes overwrites the notes text plus updatedAt.
func (s *Service) PatchNotes(ctx context.Context, id, notes string) (*storage.Plan, error) {
	st, err := s.store()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return st.UpdateByID(ctx, id, storage.PlanPatch{Notes: &notes, UpdatedAt: &now})
}
