package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nursemed/homecare/internal/platform/auth"
)

type Service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a nurse account and issues a token. The first account ever
// created is promoted to admin automatically.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (string, *Nurse, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return "", nil, ErrEmptyUpdate
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return "", nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return "", nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return "", nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	nurse := &Nurse{
		ID:                    uuid.New().String(),
		Email:                 req.Email,
		PasswordHash:          hash,
		FullName:              req.FullName,
		Title:                 req.Title,
		LicenseNumber:         req.LicenseNumber,
		IsAdmin:               count == 0,
		AssignedPatients:      []string{},
		AssignedOrganizations: []string{},
		AllowedForms:          []string{},
		CreatedAt:             time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Create(ctx, nurse); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(nurse.ID)
	if err != nil {
		return "", nil, err
	}
	return token, nurse, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password report the same error so neither case leaks account existence.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, *Nurse, error) {
	nurse, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !auth.VerifyPassword(nurse.PasswordHash, req.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(nurse.ID)
	if err != nil {
		return "", nil, err
	}
	return token, nurse, nil
}

// ResolveToken validates a bearer token and loads the nurse it references.
// A verifiable token whose nurse has since been removed is unauthenticated.
func (s *Service) ResolveToken(ctx context.Context, token string) (*auth.Identity, error) {
	nurseID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	nurse, err := s.repo.GetByID(ctx, nurseID)
	if errors.Is(err, ErrNotFound) {
		return nil, auth.ErrNurseNotFound
	}
	if err != nil {
		return nil, err
	}

	return &auth.Identity{
		ID:                    nurse.ID,
		Email:                 nurse.Email,
		FullName:              nurse.FullName,
		Admin:                 nurse.IsAdmin,
		AssignedPatients:      nurse.AssignedPatients,
		AssignedOrganizations: nurse.AssignedOrganizations,
		AllowedForms:          nurse.AllowedForms,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Nurse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListNurses(ctx context.Context, actor *auth.Identity) ([]*Nurse, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *Service) Promote(ctx context.Context, actor *auth.Identity, nurseID string) error {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return ErrForbidden
	}
	return s.repo.SetAdmin(ctx, nurseID, true)
}

func (s *Service) Demote(ctx context.Context, actor *auth.Identity, nurseID string) error {
	d := auth.CanDemote(actor, nurseID)
	if !d.Allowed {
		if d.Code == auth.ReasonSelfDemotion {
			return ErrSelfDemotion
		}
		return ErrForbidden
	}
	return s.repo.SetAdmin(ctx, nurseID, false)
}

func (s *Service) UpdateProfile(ctx context.Context, actor *auth.Identity, nurseID string, update ProfileUpdate) (*Nurse, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrForbidden
	}

	if _, err := s.repo.GetByID(ctx, nurseID); err != nil {
		return nil, err
	}

	patch := map[string]interface{}{}
	if update.FullName != nil {
		patch["full_name"] = *update.FullName
	}
	if update.Title != nil {
		patch["title"] = *update.Title
	}
	if update.LicenseNumber != nil {
		patch["license_number"] = *update.LicenseNumber
	}
	if update.Email != nil {
		patch["email"] = *update.Email
	}
	if len(patch) == 0 {
		return nil, ErrEmptyUpdate
	}

	if err := s.repo.UpdateProfile(ctx, nurseID, patch); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, nurseID)
}

func (s *Service) SetAssignments(ctx context.Context, actor *auth.Identity, nurseID string, update AssignmentUpdate) error {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return ErrForbidden
	}

	if _, err := s.repo.GetByID(ctx, nurseID); err != nil {
		return err
	}

	if update.AssignedPatients == nil {
		update.AssignedPatients = []string{}
	}
	if update.AssignedOrganizations == nil {
		update.AssignedOrganizations = []string{}
	}
	if update.AllowedForms == nil {
		update.AllowedForms = []string{}
	}
	return s.repo.SetAssignments(ctx, nurseID, update)
}
