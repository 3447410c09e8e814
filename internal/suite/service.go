package suite

import (
	"context"

	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/availability"
	"github.com/WORQ-Incompleteness-Theorem-Sdn-Bhd/private-suite-dashboard-sub000/internal/office"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Suite, error)
	List(ctx context.Context, filter Filter) ([]*Suite, int, error)
	// UpdateBase sets a suite's persistent base state label (admin action,
	// e.g. withdrawing a suite from service).
	UpdateBase(ctx context.Context, id string, base string) (*Suite, error)
}

type service struct {
	repo          Repository
	officeService office.Service
}

func NewService(repo Repository, officeService office.Service) Service {
	return &service{repo: repo, officeService: officeService}
}

func (s *service) GetByID(ctx context.Context, id string) (*Suite, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Suite, int, error) {
	if filter.OfficeID != "" {
		// Reject unknown offices up front so an empty page is never
		// mistaken for a valid office with no suites.
		if _, err := s.officeService.GetByID(ctx, filter.OfficeID); err != nil {
			return nil, 0, err
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateBase(ctx context.Context, id string, base string) (*Suite, error) {
	label := availability.BaseStatus(base)
	if !validBaseStatuses[label] {
		return nil, ErrInvalidStatus
	}

	su, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	su.Base = label
	if err := s.repo.UpdateBase(ctx, su); err != nil {
		return nil, err
	}
	return su, nil
}
