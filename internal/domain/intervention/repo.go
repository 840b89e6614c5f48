package intervention

import "context"

type Repository interface {
	Create(ctx context.Context, i *Intervention) error
	GetByID(ctx context.Context, id string) (*Intervention, error)

	// ListByPatient returns interventions ordered by intervention_date
	// descending.
	ListByPatient(ctx context.Context, patientID string) ([]*Intervention, error)

	Update(ctx context.Context, i *Intervention) error
	Delete(ctx context.Context, id string) error
	DeleteByPatient(ctx context.Context, patientID string) error
}
