package admin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nursemed/homecare/internal/platform/auth"
)

// Service manages the admin-only reference entities.
type Service struct {
	orgs     OrganizationRepository
	programs DayProgramRepository
}

func NewService(orgs OrganizationRepository, programs DayProgramRepository) *Service {
	return &Service{orgs: orgs, programs: programs}
}

func (s *Service) ListOrganizations(ctx context.Context, actor *auth.Identity) ([]*Organization, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.orgs.List(ctx)
}

func (s *Service) CreateOrganization(ctx context.Context, actor *auth.Identity, req OrganizationRequest) (*Organization, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}
	o := &Organization{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.orgs.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) UpdateOrganization(ctx context.Context, actor *auth.Identity, id string, req OrganizationRequest) (*Organization, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.orgs.Update(ctx, id, req)
}

func (s *Service) DeleteOrganization(ctx context.Context, actor *auth.Identity, id string) error {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return ErrForbidden
	}
	return s.orgs.Delete(ctx, id)
}

func (s *Service) ListDayPrograms(ctx context.Context, actor *auth.Identity) ([]*DayProgram, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.programs.List(ctx)
}

func (s *Service) CreateDayProgram(ctx context.Context, actor *auth.Identity, req DayProgramRequest) (*DayProgram, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}
	p := &DayProgram{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Address:       req.Address,
		OfficePhone:   req.OfficePhone,
		ContactPerson: req.ContactPerson,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.programs.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateDayProgram(ctx context.Context, actor *auth.Identity, id string, req DayProgramRequest) (*DayProgram, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.programs.Update(ctx, id, req)
}

func (s *Service) DeleteDayProgram(ctx context.Context, actor *auth.Identity, id string) error {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return ErrForbidden
	}
	return s.programs.Delete(ctx, id)
}
