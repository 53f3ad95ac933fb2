package engine

import (
	"context"

	"idealab/internal/storage"
)

// Enrichment caps: how many catalog entries turn into synthetic tasks at
// plan creation.
const (
	maxMechanicTasks     = 3
	maxFunHookTasks      = 2
	maxMonetizationTasks = 2
	maxChecklistTasks    = 6
)

type CreatePlanInput struct {
	Name         string
	Type         string
	LinkedIdeaID *string
	LinkedPathID *string
	RobuxGoal    *int
	Notes        string
	Tasks        []storage.Task
}

// CreatePlan validates the request, enriches it from any resolvable linked
// catalog entry, normalizes the task list, and persists the plan. An
// unresolvable linked id skips enrichment silently.
func (s *Service) CreatePlan(ctx context.Context, in CreatePlanInput) (*storage.Plan, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	if !PlanType(in.Type).IsValid() {
		return nil, ValidationError{Field: "type", Reason: "must be one of game, earning, challenge"}
	}

	st, err := s.store()
	if err != nil {
		return nil, err
	}

	notes := in.Notes
	tasks := append([]storage.Task{}, in.Tasks...)

	if in.LinkedIdeaID != nil {
		if idea := s.catalog.GetIdea(*in.LinkedIdeaID); idea != nil {
			if notes == "" {
				notes = idea.Concept
			}
			for _, label := range firstN(idea.CoreMechanics, maxMechanicTasks) {
				tasks = append(tasks, storage.Task{Label: "Design: " + label})
			}
			for _, label := range firstN(idea.FunHooks, maxFunHookTasks) {
				tasks = append(tasks, storage.Task{Label: "Design: " + label})
			}
			for _, label := range firstN(idea.MonetizationIdeas, maxMonetizationTasks) {
				tasks = append(tasks, storage.Task{Label: "Plan monetization: " + label})
			}
		}
	}
	if in.LinkedPathID != nil {
		if path := s.catalog.GetPath(*in.LinkedPathID); path != nil {
			if notes == "" {
				notes = path.Description
			}
			for i, item := range path.Checklist {
				if i == maxChecklistTasks {
					break
				}
				tasks = append(tasks, storage.Task{Label: item.Label})
			}
		}
	}

	tasks = normalizeTasks(tasks)
	now := s.now().UTC()

	plan := &storage.Plan{
		Name:            name,
		Type:            in.Type,
		LinkedIdeaID:    in.LinkedIdeaID,
		LinkedPathID:    in.LinkedPathID,
		RobuxGoal:       in.RobuxGoal,
		Notes:           notes,
		Tasks:           tasks,
		ProgressPercent: progressPercent(tasks),
		StreakCount:     0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return st.Insert(ctx, plan)
}

func firstN(labels []string, n int) []string {
	if len(labels) > n {
		return labels[:n]
	}
	return labels
}
