package office

import (
	"context"
	"sync"
	"time"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/pkg/snapshot"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Office, error)
	List(ctx context.Context) ([]*Office, error)
}

type service struct {
	repo Repository

	// Office metadata changes rarely; the list is cached as an explicit
	// snapshot value with a caller-side TTL check.
	mu       sync.Mutex
	cached   snapshot.Value[[]*Office]
	cacheTTL time.Duration
	now      func() time.Time
}

// NewService creates the office Service. cacheTTL bounds how long the office
// list may be served from the snapshot before a refetch.
func NewService(repo Repository, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Office, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Office, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cached.Fresh(now, s.cacheTTL) {
		return s.cached.Data, nil
	}

	offices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cached = snapshot.Capture(offices, now)
	return offices, nil
}
