package visit

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/nursemed/homecare/internal/platform/auth"
)

type mockRepo struct {
	visits map[string]*Visit
}

func newMockRepo() *mockRepo {
	return &mockRepo{visits: map[string]*Visit{}}
}

func (m *mockRepo) Create(ctx context.Context, v *Visit) error {
	m.visits[v.ID] = v
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*Visit, error) {
	v, ok := m.visits[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *mockRepo) ListByPatient(ctx context.Context, patientID string) ([]*Visit, error) {
	var out []*Visit
	for _, v := range m.visits {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VisitDate > out[j].VisitDate })
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, v *Visit) error {
	if _, ok := m.visits[v.ID]; !ok {
		return ErrNotFound
	}
	m.visits[v.ID] = v
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.visits[id]; !ok {
		return ErrNotFound
	}
	delete(m.visits, id)
	return nil
}

func (m *mockRepo) DeleteByPatient(ctx context.Context, patientID string) error {
	for id, v := range m.visits {
		if v.PatientID == patientID {
			delete(m.visits, id)
		}
	}
	return nil
}

func (m *mockRepo) LastCompleted(ctx context.Context, patientID string) (*Visit, error) {
	return m.last(patientID, func(v *Visit) bool { return v.Status == StatusCompleted })
}

func (m *mockRepo) LastCompletedClinical(ctx context.Context, patientID string) (*Visit, error) {
	return m.last(patientID, func(v *Visit) bool {
		return v.Status == StatusCompleted && v.VisitType != TypeDailyNote
	})
}

func (m *mockRepo) LastVitalsBearing(ctx context.Context, patientID string) (*Visit, error) {
	return m.last(patientID, func(v *Visit) bool {
		return v.VisitType == TypeNurseVisit || v.VisitType == TypeVitalsOnly
	})
}

func (m *mockRepo) last(patientID string, match func(*Visit) bool) (*Visit, error) {
	var best *Visit
	for _, v := range m.visits {
		if v.PatientID != patientID || !match(v) {
			continue
		}
		if best == nil || v.VisitDate > best.VisitDate {
			best = v
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	return best, nil
}

func (m *mockRepo) ListForReport(ctx context.Context, filter ReportFilter) ([]*Visit, error) {
	var out []*Visit
	for _, v := range m.visits {
		if v.NurseID != filter.NurseID {
			continue
		}
		if v.VisitDate < filter.StartDate || v.VisitDate > filter.EndDate {
			continue
		}
		if filter.PatientID != "" && v.PatientID != filter.PatientID {
			continue
		}
		if filter.Organization != "" && v.Organization != filter.Organization {
			continue
		}
		if filter.VisitType != "" && v.VisitType != filter.VisitType {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VisitDate < out[j].VisitDate })
	return out, nil
}

type mockDirectory struct {
	patients map[string]*PatientInfo
	vitals   map[string]*VitalSigns
}

func newMockDirectory(patients ...*PatientInfo) *mockDirectory {
	m := &mockDirectory{patients: map[string]*PatientInfo{}, vitals: map[string]*VitalSigns{}}
	for _, p := range patients {
		m.patients[p.ID] = p
	}
	return m
}

func (m *mockDirectory) Lookup(ctx context.Context, id string) (*PatientInfo, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func (m *mockDirectory) RecordVitals(ctx context.Context, patientID string, vitals *VitalSigns, updatedAt string) error {
	m.vitals[patientID] = vitals
	return nil
}

func adminActor() *auth.Identity  { return &auth.Identity{ID: "admin-1", Admin: true} }
func nurseActor(id string) *auth.Identity { return &auth.Identity{ID: id} }

func TestCreateVisitDefaults(t *testing.T) {
	repo := newMockRepo()
	dir := newMockDirectory(&PatientInfo{ID: "p1", AssignedNurses: []string{"n1"}})
	svc := NewService(repo, dir)

	v, err := svc.Create(context.Background(), nurseActor("n1"), "p1", CreateRequest{
		VitalSigns: VitalSigns{BloodPressureSystolic: "150", BloodPressureDiastolic: "95"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if v.VisitType != TypeNurseVisit || v.Status != StatusCompleted {
		t.Errorf("defaults: type=%s status=%s", v.VisitType, v.Status)
	}
	if v.VisitDate == "" || v.CreatedAt == "" {
		t.Error("visit_date and created_at should default to now")
	}
	if v.Attachments == nil {
		t.Error("attachments should be initialized empty")
	}
	if v.NurseID != "n1" {
		t.Errorf("NurseID = %s", v.NurseID)
	}

	// Write-back landed on the patient record.
	if got := dir.vitals["p1"]; got == nil || got.BloodPressureSystolic != "150" {
		t.Errorf("vitals write-back = %+v", got)
	}
}

func TestCreateVisitAccess(t *testing.T) {
	repo := newMockRepo()
	dir := newMockDirectory(&PatientInfo{ID: "p1", Organization: "org-1", AssignedNurses: []string{"n1"}})
	svc := NewService(repo, dir)

	// Missing patient reports NotFound before any authorization check.
	if _, err := svc.Create(context.Background(), nurseActor("n2"), "ghost", CreateRequest{}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Create() missing patient error = %v, want ErrPatientNotFound", err)
	}

	// Unassigned nurse is rejected even with organization access.
	orgNurse := &auth.Identity{ID: "n2", AssignedOrganizations: []string{"org-1"}}
	if _, err := svc.Create(context.Background(), orgNurse, "p1", CreateRequest{}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Create() unassigned error = %v, want ErrForbidden", err)
	}

	// Admin may document for any patient.
	if _, err := svc.Create(context.Background(), adminActor(), "p1", CreateRequest{}); err != nil {
		t.Errorf("Create() as admin error = %v", err)
	}
}

func TestUpdateVisitAuthorOnly(t *testing.T) {
	repo := newMockRepo()
	repo.visits["v1"] = &Visit{ID: "v1", PatientID: "p1", NurseID: "n1", VisitDate: "2026-08-01T10:00:00Z", CreatedAt: "2026-08-01T10:00:00Z"}
	dir := newMockDirectory(&PatientInfo{ID: "p1", AssignedNurses: []string{"n1"}})
	svc := NewService(repo, dir)

	// Not the author: rejected with no admin override.
	if _, err := svc.Update(context.Background(), adminActor(), "v1", CreateRequest{}); !errors.Is(err, ErrNotAuthor) {
		t.Errorf("Update() as admin error = %v, want ErrNotAuthor", err)
	}

	updated, err := svc.Update(context.Background(), nurseActor("n1"), "v1", CreateRequest{
		NurseNotes: "follow-up scheduled",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.NurseNotes != "follow-up scheduled" {
		t.Errorf("NurseNotes = %q", updated.NurseNotes)
	}
	if updated.VisitDate != "2026-08-01T10:00:00Z" {
		t.Errorf("omitted visit_date should keep existing, got %s", updated.VisitDate)
	}
	if updated.NurseID != "n1" || updated.PatientID != "p1" {
		t.Error("identity fields must survive update")
	}
}

func TestUpdateVisitKeepsCreationContext(t *testing.T) {
	repo := newMockRepo()
	repo.visits["v1"] = &Visit{
		ID:                   "v1",
		PatientID:            "p1",
		NurseID:              "n1",
		VisitDate:            "2026-08-01T10:00:00Z",
		NurseVisitType:       "rn_clinical_oversight",
		VisitLocation:        "day_program",
		ScreeningCompletedBy: "Sarah Johnson RN",
		ReviewedAndSignedBy:  "Sarah Johnson RN",
		CreatedAt:            "2026-08-01T10:00:00Z",
	}
	dir := newMockDirectory(&PatientInfo{ID: "p1", AssignedNurses: []string{"n1"}})
	svc := NewService(repo, dir)

	updated, err := svc.Update(context.Background(), nurseActor("n1"), "v1", CreateRequest{
		NurseNotes:     "wound care reviewed",
		NurseVisitType: "other",
		VisitLocation:  "home",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.NurseNotes != "wound care reviewed" {
		t.Errorf("NurseNotes = %q", updated.NurseNotes)
	}
	// Fields set when the visit was documented stay fixed on update, even
	// when the payload tries to change them.
	if updated.NurseVisitType != "rn_clinical_oversight" || updated.VisitLocation != "day_program" {
		t.Errorf("creation context changed: type=%q location=%q", updated.NurseVisitType, updated.VisitLocation)
	}
	if updated.ScreeningCompletedBy != "Sarah Johnson RN" || updated.ReviewedAndSignedBy != "Sarah Johnson RN" {
		t.Error("sign-off fields must survive update")
	}
	if updated.CreatedAt != "2026-08-01T10:00:00Z" {
		t.Errorf("CreatedAt = %q", updated.CreatedAt)
	}
}

func TestDeleteVisitAuthorOnly(t *testing.T) {
	repo := newMockRepo()
	repo.visits["v1"] = &Visit{ID: "v1", PatientID: "p1", NurseID: "n1"}
	svc := NewService(repo, newMockDirectory())

	if err := svc.Delete(context.Background(), nurseActor("n2"), "v1"); !errors.Is(err, ErrNotAuthor) {
		t.Errorf("Delete() by another nurse error = %v, want ErrNotAuthor", err)
	}
	if err := svc.Delete(context.Background(), nurseActor("n1"), "v1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), nurseActor("n1"), "v1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() again error = %v, want ErrNotFound", err)
	}
}

func TestLastVisit(t *testing.T) {
	repo := newMockRepo()
	repo.visits["v1"] = &Visit{ID: "v1", PatientID: "p1", Status: StatusCompleted, VisitDate: "2026-08-01T10:00:00Z"}
	repo.visits["v2"] = &Visit{ID: "v2", PatientID: "p1", Status: StatusCompleted, VisitDate: "2026-08-10T10:00:00Z"}
	repo.visits["v3"] = &Visit{ID: "v3", PatientID: "p1", Status: StatusDraft, VisitDate: "2026-08-20T10:00:00Z"}
	svc := NewService(repo, newMockDirectory())

	v, err := svc.Last(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Last() error = %v", err)
	}
	if v.ID != "v2" {
		t.Errorf("Last() = %s, want v2 (drafts excluded)", v.ID)
	}

	if _, err := svc.Last(context.Background(), "p2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Last() no visits error = %v, want ErrNotFound", err)
	}
}
