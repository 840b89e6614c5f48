package patient

import (
	"context"
	"errors"

	"github.com/nursemed/homecare/internal/domain/contact"
	"github.com/nursemed/homecare/internal/domain/intervention"
	"github.com/nursemed/homecare/internal/domain/visit"
)

// Directory adapts the patient repository to the narrow patient-lookup
// interfaces the record packages declare, so those packages never import
// this one.
type Directory struct {
	repo Repository
}

func NewDirectory(repo Repository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) lookup(ctx context.Context, id string) (*Patient, error) {
	return d.repo.GetByID(ctx, id)
}

// Lookup implements visit.PatientDirectory.
func (d *Directory) Lookup(ctx context.Context, id string) (*visit.PatientInfo, error) {
	p, err := d.lookup(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, visit.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &visit.PatientInfo{
		ID:             p.ID,
		FullName:       p.FullName,
		Organization:   p.PermanentInfo.Organization,
		AssignedNurses: p.AssignedNurses,
	}, nil
}

// RecordVitals implements visit.PatientDirectory.
func (d *Directory) RecordVitals(ctx context.Context, patientID string, vitals *visit.VitalSigns, updatedAt string) error {
	return d.repo.SetLastVitals(ctx, patientID, vitals, updatedAt)
}

// ContactDirectory adapts the patient repository for the contact package.
type ContactDirectory struct {
	repo Repository
}

func NewContactDirectory(repo Repository) *ContactDirectory {
	return &ContactDirectory{repo: repo}
}

func (d *ContactDirectory) Lookup(ctx context.Context, id string) (*contact.PatientInfo, error) {
	p, err := d.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, contact.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact.PatientInfo{
		ID:             p.ID,
		FullName:       p.FullName,
		Organization:   p.PermanentInfo.Organization,
		AssignedNurses: p.AssignedNurses,
	}, nil
}

// InterventionDirectory adapts the patient repository for the intervention
// package.
type InterventionDirectory struct {
	repo Repository
}

func NewInterventionDirectory(repo Repository) *InterventionDirectory {
	return &InterventionDirectory{repo: repo}
}

func (d *InterventionDirectory) Lookup(ctx context.Context, id string) (*intervention.PatientInfo, error) {
	p, err := d.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, intervention.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &intervention.PatientInfo{
		ID:             p.ID,
		FullName:       p.FullName,
		DateOfBirth:    p.PermanentInfo.DateOfBirth,
		AssignedNurses: p.AssignedNurses,
	}, nil
}

// Names returns full names for a set of patient ids, for report enrichment.
// Unknown ids are simply absent from the result.
func (d *Directory) Names(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		p, err := d.repo.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		names[id] = p.FullName
	}
	return names, nil
}
