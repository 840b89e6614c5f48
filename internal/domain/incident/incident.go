// Package incident stores incident reports as schemaless documents. The
// report form is still churning, so the backend passes the payload through
// untouched and only stamps identity and timestamp fields.
package incident

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nursemed/homecare/internal/platform/auth"
	"github.com/nursemed/homecare/pkg/pagination"
)

// Report is an arbitrary client-submitted document plus the server-stamped
// id, nurse_id, and created_at fields.
type Report map[string]interface{}

type Repository interface {
	Create(ctx context.Context, r Report) error

	// List returns reports ordered by created_at descending. An empty
	// nurseID returns every report; a zero page returns all of them.
	List(ctx context.Context, nurseID string, page pagination.Params) ([]Report, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stamps and stores a report. Any authenticated nurse may file one.
func (s *Service) Create(ctx context.Context, actor *auth.Identity, payload Report) (string, error) {
	report := Report{}
	for k, v := range payload {
		report[k] = v
	}
	id := uuid.New().String()
	report["id"] = id
	report["nurse_id"] = actor.ID
	report["created_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Create(ctx, report); err != nil {
		return "", err
	}
	return id, nil
}

// List returns reports newest first. Admins see every report; staff see
// only their own.
func (s *Service) List(ctx context.Context, actor *auth.Identity, page pagination.Params) ([]Report, error) {
	if actor.Admin {
		return s.repo.List(ctx, "", page)
	}
	return s.repo.List(ctx, actor.ID, page)
}
