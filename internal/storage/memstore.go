package storage

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore keeps plans in a mutex-guarded map with the same error
// semantics as PlanRepo, including the malformed-id check.
type MemStore struct {
	mu    sync.RWMutex
	plans map[string]*Plan
}

func NewMemStore() *MemStore {
	return &MemStore{plans: make(map[string]*Plan)}
}

func (s *MemStore) Insert(ctx context.Context, p *Plan) (*Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = primitive.NewObjectID()
	stored := clonePlan(p)
	s.plans[p.ID.Hex()] = stored
	return clonePlan(stored), nil
}

func (s *MemStore) FindByID(ctx context.Context, id string) (*Plan, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePlan(p), nil
}

func (s *MemStore) FindAll(ctx context.Context) ([]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Plan{}
	for _, p := range s.plans {
		out = append(out, *clonePlan(p))
	}
	return out, nil
}

func (s *MemStore) UpdateByID(ctx context.Context, id string, patch PlanPatch) (*Plan, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyPatch(p, patch)
	return clonePlan(p), nil
}

func (s *MemStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := ParseID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[id]; !ok {
		return ErrNotFound
	}
	delete(s.plans, id)
	return nil
}

func applyPatch(p *Plan, patch PlanPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.LinkedIdeaID != nil {
		p.LinkedIdeaID = patch.LinkedIdeaID
	}
	if patch.LinkedPathID != nil {
		p.LinkedPathID = patch.LinkedPathID
	}
	if patch.RobuxGoal != nil {
		p.RobuxGoal = patch.RobuxGoal
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.Tasks != nil {
		p.Tasks = append([]Task{}, (*patch.Tasks)...)
	}
	if patch.ProgressPercent != nil {
		p.ProgressPercent = *patch.ProgressPercent
	}
	if patch.StreakCount != nil {
		p.StreakCount = *patch.StreakCount
	}
	if patch.LastCompletedDate != nil {
		p.LastCompletedDate = patch.LastCompletedDate
	}
	if patch.UpdatedAt != nil {
		p.UpdatedAt = *patch.UpdatedAt
	}
}

func clonePlan(p *Plan) *Plan {
	c := *p
	c.Tasks = append([]Task{}, p.Tasks...)
	return &c
}
