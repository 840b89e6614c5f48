package contact

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nursemed/homecare/internal/platform/auth"
)

// PatientInfo is the slice of patient state contact operations need.
type PatientInfo struct {
	ID             string
	FullName       string
	Organization   string
	AssignedNurses []string
}

// PatientDirectory resolves patients. Lookup returns ErrPatientNotFound when
// the patient is missing.
type PatientDirectory interface {
	Lookup(ctx context.Context, id string) (*PatientInfo, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

// Create records a failed contact attempt. Admin or assigned nurses only.
func (s *Service) Create(ctx context.Context, actor *auth.Identity, req CreateRequest) (*UnableToContact, error) {
	patient, err := s.patients.Lookup(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: patient.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}

	rec := &UnableToContact{
		ID:                      uuid.New().String(),
		PatientID:               req.PatientID,
		NurseID:                 actor.ID,
		VisitType:               req.VisitType,
		AttemptDate:             req.AttemptDate,
		AttemptTime:             req.AttemptTime,
		AttemptReason:           req.AttemptReason,
		AttemptLocation:         req.AttemptLocation,
		AttemptLocationOther:    req.AttemptLocationOther,
		SpokeWithAnyone:         req.SpokeWithAnyone,
		SpokeWithWhom:           req.SpokeWithWhom,
		IndividualLocation:      req.IndividualLocation,
		IndividualLocationOther: req.IndividualLocationOther,
		MovedTemporarilyWhere:   req.MovedTemporarilyWhere,
		DeceasedDate:            req.DeceasedDate,
		FacilityName:            req.FacilityName,
		FacilityCity:            req.FacilityCity,
		FacilityState:           req.FacilityState,
		AdmissionDate:           req.AdmissionDate,
		AdmissionReason:         req.AdmissionReason,
		ExpectedReturnDate:      req.ExpectedReturnDate,
		AdditionalInfo:          req.AdditionalInfo,
		CreatedAt:               time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	rec.PatientName = patient.FullName
	return rec, nil
}

// ListByPatient returns a patient's failed-contact records, newest attempt
// first. Admin or assigned nurses only.
func (s *Service) ListByPatient(ctx context.Context, actor *auth.Identity, patientID string) ([]*UnableToContact, error) {
	patient, err := s.patients.Lookup(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: patient.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}

	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		rec.PatientName = patient.FullName
	}
	return records, nil
}

// Get returns a single record. Reads follow the broader patient-access rule:
// organization membership is enough here, unlike create/list.
func (s *Service) Get(ctx context.Context, actor *auth.Identity, recordID string) (*UnableToContact, error) {
	rec, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.Lookup(ctx, rec.PatientID)
	if err != nil {
		return nil, err
	}
	scope := auth.PatientScope{AssignedNurses: patient.AssignedNurses, Organization: patient.Organization}
	if d := auth.CanReadPatient(actor, scope); !d.Allowed {
		return nil, ErrForbidden
	}

	rec.PatientName = patient.FullName
	return rec, nil
}

// Delete removes a record. Authoring nurse only, no admin override.
func (s *Service) Delete(ctx context.Context, actor *auth.Identity, recordID string) error {
	rec, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return err
	}
	if d := auth.CanMutateOwnRecord(actor, rec.NurseID); !d.Allowed {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, recordID)
}
