package patient

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nursemed/homecare/internal/domain/contact"
	"github.com/nursemed/homecare/internal/domain/visit"
	"github.com/nursemed/homecare/internal/platform/auth"
)

// VisitSource is the slice of the visit repository the aggregation engine
// reads. Satisfied by visit.Repository.
type VisitSource interface {
	LastCompletedClinical(ctx context.Context, patientID string) (*visit.Visit, error)
	LastVitalsBearing(ctx context.Context, patientID string) (*visit.Visit, error)
}

// ContactSource is the slice of the unable-to-contact repository the
// aggregation engine reads. Satisfied by contact.Repository.
type ContactSource interface {
	LastByPatient(ctx context.Context, patientID string) (*contact.UnableToContact, error)
}

// RecordPurger deletes all records of one kind belonging to a patient.
// The visit, intervention, and unable-to-contact repositories each satisfy
// this for the cascade on patient deletion.
type RecordPurger interface {
	DeleteByPatient(ctx context.Context, patientID string) error
}

type Service struct {
	repo     Repository
	visits   VisitSource
	contacts ContactSource
	purgers  []RecordPurger
}

func NewService(repo Repository, visits VisitSource, contacts ContactSource, purgers ...RecordPurger) *Service {
	return &Service{repo: repo, visits: visits, contacts: contacts, purgers: purgers}
}

// Create adds a patient. Admin only; organization is mandatory and is
// stored inside permanent_info. The creating admin is auto-assigned.
func (s *Service) Create(ctx context.Context, actor *auth.Identity, req CreateRequest) (*View, error) {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return nil, ErrAdminOnly
	}
	if req.Organization == "" {
		return nil, ErrOrganizationRequired
	}

	info := req.PermanentInfo
	info.Organization = req.Organization

	now := time.Now().UTC().Format(time.RFC3339)
	p := &Patient{
		ID:             uuid.New().String(),
		FullName:       req.FullName,
		PermanentInfo:  info,
		NurseID:        actor.ID,
		AssignedNurses: []string{actor.ID},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &View{Patient: p, IsAssignedToMe: true}, nil
}

// List returns every patient enriched with the derived summary fields. All
// authenticated nurses see all patients; assignment state is surfaced per
// patient instead of filtering the listing.
func (s *Service) List(ctx context.Context, actor *auth.Identity) ([]*View, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*View, 0, len(patients))
	for _, p := range patients {
		view, err := s.summarize(ctx, actor, p)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// summarize computes the derived summary for one patient with independent
// lookups against the visit and unable-to-contact collections.
func (s *Service) summarize(ctx context.Context, actor *auth.Identity, p *Patient) (*View, error) {
	view := &View{
		Patient:        p,
		IsAssignedToMe: auth.IsAssigned(actor, p.AssignedNurses),
	}

	// Most recent completed visit, daily notes excluded.
	lastVisit, err := s.visits.LastCompletedClinical(ctx, p.ID)
	if err != nil && !errors.Is(err, visit.ErrNotFound) {
		return nil, err
	}
	if lastVisit != nil {
		view.LastVisitID = lastVisit.ID
		view.LastVisitDate = lastVisit.VisitDate
	}

	// Most recent vitals-bearing visit, drafts included. If its vitals are
	// all blank the summary stays empty; older readings are not consulted.
	vitalsVisit, err := s.visits.LastVitalsBearing(ctx, p.ID)
	if err != nil && !errors.Is(err, visit.ErrNotFound) {
		return nil, err
	}
	if vitalsVisit != nil && vitalsVisit.VitalSigns.HasData() {
		vitals := vitalsVisit.VitalSigns
		view.LastVitals = &vitals
		view.LastVitalsDate = vitalsVisit.VisitDate

		// A vitals reading at least as recent as the last completed visit
		// becomes the "last seen" reference, and so does any reading when
		// no completed visit exists.
		if view.LastVisitID == "" || view.LastVisitDate == "" || vitalsVisit.VisitDate >= view.LastVisitDate {
			view.LastVisitID = vitalsVisit.ID
		}
	}

	// Most recent contact attempt by insertion order, not attempt date.
	utc, err := s.contacts.LastByPatient(ctx, p.ID)
	if err != nil && !errors.Is(err, contact.ErrNotFound) {
		return nil, err
	}
	if utc != nil {
		view.LastUTC = &UTCSummary{
			ID:     utc.ID,
			Date:   utc.AttemptDate,
			Reason: contact.ReasonLabel(utc.IndividualLocation, utc.IndividualLocationOther),
		}
	}

	return view, nil
}

// Get returns one patient. The summary fields are not recomputed here; the
// stored vitals cache is what the caller sees.
func (s *Service) Get(ctx context.Context, actor *auth.Identity, id string) (*View, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &View{
		Patient:        p,
		LastVitals:     p.LastVitals,
		IsAssignedToMe: auth.IsAssigned(actor, p.AssignedNurses),
	}, nil
}

// Update patches a patient. Admin or assigned nurses; the assigned_nurses
// change is silently dropped for non-admins.
func (s *Service) Update(ctx context.Context, actor *auth.Identity, id string, req UpdateRequest) (*View, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := auth.CanWritePatientRecord(actor, auth.PatientScope{AssignedNurses: p.AssignedNurses}); !d.Allowed {
		return nil, ErrForbidden
	}

	patch := map[string]interface{}{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if req.FullName != nil && *req.FullName != "" {
		patch["full_name"] = *req.FullName
	}
	if req.PermanentInfo != nil {
		patch["permanent_info"] = *req.PermanentInfo
	}
	if req.AssignedNurses != nil && actor.Admin {
		patch["assigned_nurses"] = req.AssignedNurses
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &View{
		Patient:        updated,
		LastVitals:     updated.LastVitals,
		IsAssignedToMe: auth.IsAssigned(actor, updated.AssignedNurses),
	}, nil
}

// Delete removes a patient and cascades to its visits, unable-to-contact
// records, and interventions. Admin only. The patient document goes first;
// a failed child purge leaves orphans rather than resurrecting the patient,
// and the first purge error is returned so the caller knows the cascade was
// incomplete. The remaining purgers still run.
func (s *Service) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return ErrAdminOnly
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	var purgeErr error
	for _, purger := range s.purgers {
		if err := purger.DeleteByPatient(ctx, id); err != nil {
			log.Error().Err(err).Str("patient_id", id).Msg("cascade delete left orphaned records")
			if purgeErr == nil {
				purgeErr = err
			}
		}
	}
	return purgeErr
}

// AssignNurses replaces a patient's assigned nurse set. Admin only.
func (s *Service) AssignNurses(ctx context.Context, actor *auth.Identity, id string, nurseIDs []string) error {
	if d := auth.CanAdminister(actor); !d.Allowed {
		return ErrAdminOnly
	}
	if nurseIDs == nil {
		nurseIDs = []string{}
	}
	return s.repo.SetAssignedNurses(ctx, id, nurseIDs)
}
