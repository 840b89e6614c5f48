package visit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nursemed/homecare/internal/platform/auth"
)

// PatientInfo is the slice of patient state visit operations need.
type PatientInfo struct {
	ID             string
	FullName       string
	Organization   string
	AssignedNurses []string
}

// PatientDirectory resolves patients and receives the denormalized vitals
// write-back. Lookup returns ErrPatientNotFound when the patient is missing.
type PatientDirectory interface {
	Lookup(ctx context.Context, id string) (*PatientInfo, error)
	RecordVitals(ctx context.Context, patientID string, vitals *VitalSigns, updatedAt string) error
}

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

// Create documents a visit for a patient. The patient must exist (checked
// before authorization) and the nurse must be admin or assigned. The vitals
// payload is also written back onto the patient record as an advisory cache;
// listing always recomputes from visits, so a lost write-back is tolerable.
func (s *Service) Create(ctx context.Context, actor *auth.Identity, patientID string, req CreateRequest) (*Visit, error) {
	patient, err := s.patients.Lookup(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: patient.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}

	now := time.Now().UTC().Format(time.RFC3339)
	v := newVisit(patientID, actor.ID, now, req)

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	if err := s.patients.RecordVitals(ctx, patientID, &v.VitalSigns, now); err != nil {
		log.Warn().Err(err).Str("patient_id", patientID).Msg("vitals write-back failed")
	}
	return v, nil
}

func newVisit(patientID, nurseID, now string, req CreateRequest) *Visit {
	visitDate := req.VisitDate
	if visitDate == "" {
		visitDate = now
	}
	visitType := req.VisitType
	if visitType == "" {
		visitType = TypeNurseVisit
	}
	status := req.Status
	if status == "" {
		status = StatusCompleted
	}
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	return &Visit{
		ID:                   uuid.New().String(),
		PatientID:            patientID,
		NurseID:              nurseID,
		VisitDate:            visitDate,
		VisitType:            visitType,
		NurseVisitType:       req.NurseVisitType,
		NurseVisitTypeOther:  req.NurseVisitTypeOther,
		Organization:         req.Organization,
		VisitLocation:        req.VisitLocation,
		VisitLocationOther:   req.VisitLocationOther,
		VitalSigns:           req.VitalSigns,
		PhysicalAssessment:   req.PhysicalAssessment,
		HeadToToe:            req.HeadToToe,
		Gastrointestinal:     req.Gastrointestinal,
		GenitoUrinary:        req.GenitoUrinary,
		Respiratory:          req.Respiratory,
		Endocrine:            req.Endocrine,
		ChangesSinceLast:     req.ChangesSinceLast,
		HomeVisitLogbook:     req.HomeVisitLogbook,
		OverallHealthStatus:  req.OverallHealthStatus,
		NurseNotes:           req.NurseNotes,
		DailyNoteContent:     req.DailyNoteContent,
		Status:               status,
		Attachments:          attachments,
		ScreeningCompletedBy: req.ScreeningCompletedBy,
		ReviewedAndSignedBy:  req.ReviewedAndSignedBy,
		CreatedAt:            now,
	}
}

// ListByPatient returns all visits for a patient, newest first. Admin or
// assigned nurses only; organization access does not extend to visits.
func (s *Service) ListByPatient(ctx context.Context, actor *auth.Identity, patientID string) ([]*Visit, error) {
	patient, err := s.patients.Lookup(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: patient.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Get(ctx context.Context, actor *auth.Identity, visitID string) (*Visit, error) {
	v, err := s.repo.GetByID(ctx, visitID)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.Lookup(ctx, v.PatientID)
	if err != nil {
		return nil, err
	}
	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: patient.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}
	return v, nil
}

// Update replaces a visit's clinical payload. Only the authoring nurse may
// update; admins get no override.
func (s *Service) Update(ctx context.Context, actor *auth.Identity, visitID string, req CreateRequest) (*Visit, error) {
	existing, err := s.repo.GetByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if d := auth.CanMutateOwnRecord(actor, existing.NurseID); !d.Allowed {
		return nil, ErrNotAuthor
	}

	replacement := newVisit(existing.PatientID, existing.NurseID, existing.CreatedAt, req)
	replacement.ID = existing.ID
	if req.VisitDate == "" {
		replacement.VisitDate = existing.VisitDate
	}

	// The context recorded at creation time survives an update untouched;
	// only the clinical payload is replaced.
	replacement.NurseVisitType = existing.NurseVisitType
	replacement.NurseVisitTypeOther = existing.NurseVisitTypeOther
	replacement.VisitLocation = existing.VisitLocation
	replacement.VisitLocationOther = existing.VisitLocationOther
	replacement.ScreeningCompletedBy = existing.ScreeningCompletedBy
	replacement.ReviewedAndSignedBy = existing.ReviewedAndSignedBy

	if err := s.repo.Update(ctx, replacement); err != nil {
		return nil, err
	}
	return replacement, nil
}

// Delete removes a visit. Authoring nurse only, no admin override.
func (s *Service) Delete(ctx context.Context, actor *auth.Identity, visitID string) error {
	existing, err := s.repo.GetByID(ctx, visitID)
	if err != nil {
		return err
	}
	if d := auth.CanMutateOwnRecord(actor, existing.NurseID); !d.Allowed {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, visitID)
}

// Last returns the most recent completed visit for a patient, used by
// clients to prefill a new visit from the previous one.
func (s *Service) Last(ctx context.Context, patientID string) (*Visit, error) {
	return s.repo.LastCompleted(ctx, patientID)
}
