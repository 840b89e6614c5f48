package contact

import "context"

type Repository interface {
	Create(ctx context.Context, r *UnableToContact) error
	GetByID(ctx context.Context, id string) (*UnableToContact, error)

	// ListByPatient returns records ordered by attempt_date descending.
	ListByPatient(ctx context.Context, patientID string) ([]*UnableToContact, error)

	// LastByPatient returns the most recent record ordered by created_at
	// descending. Insertion order, not attempt date; the newest entry wins
	// even when backdated.
	LastByPatient(ctx context.Context, patientID string) (*UnableToContact, error)

	Delete(ctx context.Context, id string) error
	DeleteByPatient(ctx context.Context, patientID string) error
}
