package patient

import (
	"context"

	"github.com/nursemed/homecare/internal/domain/visit"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	SetAssignedNurses(ctx context.Context, id string, nurseIDs []string) error

	// SetLastVitals writes the advisory vitals cache. Last writer wins;
	// there is no compare-and-swap.
	SetLastVitals(ctx context.Context, id string, vitals *visit.VitalSigns, updatedAt string) error
}
