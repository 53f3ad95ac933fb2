package engine

import (
	"context"
	"strings"
	"time"

	"idealab/internal/catalog"
	"idealab/internal/storage"
)

// PlanStore is the document-store contract the engine writes through.
// Implemented by storage.PlanRepo (Mongo) and storage.MemStore.
type PlanStore interface {
	Insert(ctx context.Context, p *storage.Plan) (*storage.Plan, error)
	FindByID(ctx context.Context, id string) (*storage.Plan, error)
	FindAll(ctx context.Context) ([]storage.Plan, error)
	UpdateByID(ctx context.Context, id string, patch storage.PlanPatch) (*storage.Plan, error)
	DeleteByID(ctx context.Context, id string) error
}

type Service struct {
	catalog *catalog.Store
	plans   PlanStore
	now     func() time.Time
}

// NewService builds the plan lifecycle engine. plans may be nil when no
// store is configured; every plan operation then fails with
// ErrStoreUnavailable while catalog reads keep working.
func NewService(cat *catalog.Store, plans PlanStore) *Service {
	return &Service{
		catalog: cat,
		plans:   plans,
		now:     time.Now,
	}
}

func (s *Service) Catalog() *catalog.Store { return s.catalog }

func (s *Service) store() (PlanStore, error) {
	if s.plans == nil {
		return nil, ErrStoreUnavailable
	}
	return s.plans, nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (*storage.Plan, error) {
	st, err := s.store()
	if err != nil {
		return nil, err
	}
	return st.FindByID(ctx, id)
}

func (s *Service) ListPlans(ctx context.Context) ([]storage.Plan, error) {
	st, err := s.store()
	if err != nil {
		return nil, err
	}
	return st.FindAll(ctx)
}

func (s *Service) DeletePlan(ctx context.Context, id string) error {
	st, err := s.store()
	if err != nil {
		return err
	}
	return st.DeleteByID(ctx, id)
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ValidationError{Field: "name", Reason: "name is required"}
	}
	return n, nil
}
