package identity

import "context"

type Repository interface {
	Create(ctx context.Context, n *Nurse) error
	GetByID(ctx context.Context, id string) (*Nurse, error)
	GetByEmail(ctx context.Context, email string) (*Nurse, error)
	List(ctx context.Context) ([]*Nurse, error)
	Count(ctx context.Context) (int64, error)
	SetAdmin(ctx context.Context, id string, admin bool) error
	UpdateProfile(ctx context.Context, id string, patch map[string]interface{}) error
	SetAssignments(ctx context.Context, id string, update AssignmentUpdate) error
}
