package intervention

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nursemed/homecare/internal/platform/auth"
)

// PatientInfo is the slice of patient state intervention operations need.
type PatientInfo struct {
	ID             string
	FullName       string
	DateOfBirth    string
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

// Create records an intervention. Admin or assigned nurses only.
func (s *Service) Create(ctx context.Context, actor *auth.Identity, req CreateRequest) (*Intervention, error) {
	patient, err := s.patients.Lookup(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: patient.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}

	i := build(req, actor.ID)
	i.ID = uuid.New().String()
	i.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	i.PatientName = patient.FullName
	i.PatientDOB = patient.DateOfBirth
	return i, nil
}

func build(req CreateRequest, nurseID string) *Intervention {
	return &Intervention{
		PatientID:        req.PatientID,
		NurseID:          nurseID,
		InterventionDate: req.InterventionDate,
		InterventionTime: req.InterventionTime,
		Location:         req.Location,
		BodyTemperature:  req.BodyTemperature,
		MoodScale:        req.MoodScale,
		InterventionType: req.InterventionType,
		InjectionDetails: req.InjectionDetails,
		TestDetails:      req.TestDetails,
		TreatmentDetails: req.TreatmentDetails,
		ProcedureDetails: req.ProcedureDetails,

		VerifiedPatientIdentity: req.VerifiedPatientIdentity,
		DonnedProperPPE:         req.DonnedProperPPE,

		PostNoSevereSymptoms:        req.PostNoSevereSymptoms,
		PostToleratedWell:           req.PostToleratedWell,
		PostInformedSideEffects:     req.PostInformedSideEffects,
		PostAdvisedResultsTimeframe: req.PostAdvisedResultsTimeframe,
		PostEducatedSeekCare:        req.PostEducatedSeekCare,

		CompletionStatus:       req.CompletionStatus,
		NextVisitInterval:      req.NextVisitInterval,
		NextVisitIntervalOther: req.NextVisitIntervalOther,
		PresentPersonType:      req.PresentPersonType,
		PresentPersonTypeOther: req.PresentPersonTypeOther,
		PresentPersonName:      req.PresentPersonName,
		AdditionalComments:     req.AdditionalComments,
		Notes:                  req.Notes,
	}
}

// ListByPatient returns a patient's interventions, newest first, enriched
// with the patient's name and date of birth. Admin or assigned nurses only.
func (s *Service) ListByPatient(ctx context.Context, actor *auth.Identity, patientID string) ([]*Intervention, error) {
	patient, err := s.patients.Lookup(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: patient.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}

	interventions, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	for _, i := range interventions {
		i.PatientName = patient.FullName
		i.PatientDOB = patient.DateOfBirth
	}
	return interventions, nil
}

// Get returns one intervention. Author-scoped: an intervention authored by
// another nurse reads as missing rather than forbidden.
func (s *Service) Get(ctx context.Context, actor *auth.Identity, id string) (*Intervention, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := auth.CanMutateOwnRecord(actor, i.NurseID); !d.Allowed {
		return nil, ErrNotFound
	}
	s.enrich(ctx, i)
	return i, nil
}

// Update replaces an intervention's payload. Authoring nurse only.
func (s *Service) Update(ctx context.Context, actor *auth.Identity, id string, req CreateRequest) (*Intervention, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := auth.CanMutateOwnRecord(actor, existing.NurseID); !d.Allowed {
		return nil, ErrNotFound
	}

	replacement := build(req, existing.NurseID)
	replacement.ID = existing.ID
	replacement.PatientID = existing.PatientID
	replacement.CreatedAt = existing.CreatedAt
	replacement.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Update(ctx, replacement); err != nil {
		return nil, err
	}
	s.enrich(ctx, replacement)
	return replacement, nil
}

// Delete removes an intervention. Authoring nurse only.
func (s *Service) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d := auth.CanMutateOwnRecord(actor, existing.NurseID); !d.Allowed {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// enrich fills patient display fields; a missing patient leaves them blank.
func (s *Service) enrich(ctx context.Context, i *Intervention) {
	patient, err := s.patients.Lookup(ctx, i.PatientID)
	if err != nil {
		i.PatientName = "Unknown"
		return
	}
	i.PatientName = patient.FullName
	i.PatientDOB = patient.DateOfBirth
}
