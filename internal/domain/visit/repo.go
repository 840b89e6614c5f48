package visit

import "context"

// ReportFilter narrows the report listing. Zero-valued fields are ignored.
type ReportFilter struct {
	NurseID   string
	StartDate string
	EndDate   string
	PatientID string
	Organization string
	VisitType string
}

type Repository interface {
	Create(ctx context.Context, v *Visit) error
	GetByID(ctx context.Context, id string) (*Visit, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Visit, error)
	Update(ctx context.Context, v *Visit) error
	Delete(ctx context.Context, id string) error
	DeleteByPatient(ctx context.Context, patientID string) error

	// LastCompleted returns the most recent completed visit of any type,
	// or ErrNotFound.
	LastCompleted(ctx context.Context, patientID string) (*Visit, error)

	// LastCompletedClinical returns the most recent completed visit that is
	// not a daily note, ordered by visit_date descending, or ErrNotFound.
	LastCompletedClinical(ctx context.Context, patientID string) (*Visit, error)

	// LastVitalsBearing returns the most recent nurse_visit or vitals_only
	// visit regardless of status, ordered by visit_date descending, or
	// ErrNotFound. The caller decides whether its vitals payload counts.
	LastVitalsBearing(ctx context.Context, patientID string) (*Visit, error)

	// ListForReport returns visits matching the filter in ascending
	// visit_date order.
	ListForReport(ctx context.Context, filter ReportFilter) ([]*Visit, error)
}
