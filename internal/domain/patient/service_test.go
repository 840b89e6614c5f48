package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/nursemed/homecare/internal/domain/contact"
	"github.com/nursemed/homecare/internal/domain/visit"
	"github.com/nursemed/homecare/internal/platform/auth"
)

type mockRepo struct {
	patients map[string]*Patient
}

func newMockRepo(patients ...*Patient) *mockRepo {
	m := &mockRepo{patients: map[string]*Patient{}}
	for _, p := range patients {
		m.patients[p.ID] = p
	}
	return m
}

func (m *mockRepo) Create(ctx context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) List(ctx context.Context) ([]*Patient, error) {
	out := make([]*Patient, 0, len(m.patients))
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	p, ok := m.patients[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := patch["full_name"]; ok {
		p.FullName = v.(string)
	}
	if v, ok := patch["permanent_info"]; ok {
		p.PermanentInfo = v.(PermanentInfo)
	}
	if v, ok := patch["assigned_nurses"]; ok {
		p.AssignedNurses = v.([]string)
	}
	if v, ok := patch["updated_at"]; ok {
		p.UpdatedAt = v.(string)
	}
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.patients[id]; !ok {
		return ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) SetAssignedNurses(ctx context.Context, id string, nurseIDs []string) error {
	p, ok := m.patients[id]
	if !ok {
		return ErrNotFound
	}
	p.AssignedNurses = nurseIDs
	return nil
}

func (m *mockRepo) SetLastVitals(ctx context.Context, id string, vitals *visit.VitalSigns, updatedAt string) error {
	p, ok := m.patients[id]
	if !ok {
		return ErrNotFound
	}
	p.LastVitals = vitals
	p.UpdatedAt = updatedAt
	return nil
}

// mockVisits serves the two recency lookups from an in-memory slice.
type mockVisits struct {
	visits []*visit.Visit
}

func (m *mockVisits) LastCompletedClinical(ctx context.Context, patientID string) (*visit.Visit, error) {
	return m.last(patientID, func(v *visit.Visit) bool {
		return v.Status == visit.StatusCompleted && v.VisitType != visit.TypeDailyNote
	})
}

func (m *mockVisits) LastVitalsBearing(ctx context.Context, patientID string) (*visit.Visit, error) {
	return m.last(patientID, func(v *visit.Visit) bool {
		return v.VisitType == visit.TypeNurseVisit || v.VisitType == visit.TypeVitalsOnly
	})
}

func (m *mockVisits) last(patientID string, match func(*visit.Visit) bool) (*visit.Visit, error) {
	var best *visit.Visit
	for _, v := range m.visits {
		if v.PatientID != patientID || !match(v) {
			continue
		}
		if best == nil || v.VisitDate > best.VisitDate {
			best = v
		}
	}
	if best == nil {
		return nil, visit.ErrNotFound
	}
	return best, nil
}

type mockContacts struct {
	records []*contact.UnableToContact
}

func (m *mockContacts) LastByPatient(ctx context.Context, patientID string) (*contact.UnableToContact, error) {
	var best *contact.UnableToContact
	for _, r := range m.records {
		if r.PatientID != patientID {
			continue
		}
		if best == nil || r.CreatedAt > best.CreatedAt {
			best = r
		}
	}
	if best == nil {
		return nil, contact.ErrNotFound
	}
	return best, nil
}

type countingPurger struct {
	purged []string
	err    error
}

func (p *countingPurger) DeleteByPatient(ctx context.Context, patientID string) error {
	if p.err != nil {
		return p.err
	}
	p.purged = append(p.purged, patientID)
	return nil
}

func admin() *auth.Identity        { return &auth.Identity{ID: "admin-1", Admin: true} }
func nurse(id string) *auth.Identity { return &auth.Identity{ID: id} }

func TestCreatePatient(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &mockVisits{}, &mockContacts{})

	view, err := svc.Create(context.Background(), admin(), CreateRequest{
		FullName:     "Pat One",
		Organization: "POSH Host Homes",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if view.PermanentInfo.Organization != "POSH Host Homes" {
		t.Errorf("organization should land in permanent_info, got %q", view.PermanentInfo.Organization)
	}
	if len(view.AssignedNurses) != 1 || view.AssignedNurses[0] != "admin-1" {
		t.Errorf("creator should be auto-assigned, got %v", view.AssignedNurses)
	}
	if !view.IsAssignedToMe {
		t.Error("creator view should show is_assigned_to_me")
	}

	if _, err := svc.Create(context.Background(), nurse("n1"), CreateRequest{FullName: "X", Organization: "Y"}); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("Create() as staff error = %v, want ErrAdminOnly", err)
	}
	if _, err := svc.Create(context.Background(), admin(), CreateRequest{FullName: "X"}); !errors.Is(err, ErrOrganizationRequired) {
		t.Errorf("Create() without organization error = %v, want ErrOrganizationRequired", err)
	}
}

func TestListSummaryBasic(t *testing.T) {
	repo := newMockRepo(&Patient{ID: "p1", FullName: "Pat One", AssignedNurses: []string{"n1"}})
	visits := &mockVisits{visits: []*visit.Visit{
		{
			ID: "v1", PatientID: "p1",
			VisitType: visit.TypeNurseVisit, Status: visit.StatusCompleted,
			VisitDate: "2026-08-10T09:00:00Z",
			VitalSigns: visit.VitalSigns{
				BloodPressureSystolic:  "150",
				BloodPressureDiastolic: "95",
				BPAbnormal:             true,
			},
		},
	}}
	svc := NewService(repo, visits, &mockContacts{})

	views, err := svc.List(context.Background(), nurse("n1"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len(views) = %d", len(views))
	}
	v := views[0]
	if v.LastVitals == nil || v.LastVitals.BloodPressureSystolic != "150" {
		t.Errorf("last_vitals = %+v", v.LastVitals)
	}
	if v.LastVitalsDate != "2026-08-10T09:00:00Z" {
		t.Errorf("last_vitals_date = %s", v.LastVitalsDate)
	}
	if v.LastVisitID != "v1" || v.LastVisitDate != "2026-08-10T09:00:00Z" {
		t.Errorf("last_visit: id=%s date=%s", v.LastVisitID, v.LastVisitDate)
	}
	if !v.IsAssignedToMe {
		t.Error("assigned nurse should see is_assigned_to_me")
	}

	// An unassigned non-admin sees the same patient without the flag.
	views, _ = svc.List(context.Background(), nurse("n9"))
	if views[0].IsAssignedToMe {
		t.Error("unassigned nurse should not see is_assigned_to_me")
	}
}

func TestListDraftVitalsOverride(t *testing.T) {
	// A draft vitals_only visit newer than the only completed nurse_visit:
	// last_vitals comes from the draft and last_visit_id is re-pointed at
	// it, while last_visit_date stays with the completed visit.
	repo := newMockRepo(&Patient{ID: "p1"})
	visits := &mockVisits{visits: []*visit.Visit{
		{
			ID: "v1", PatientID: "p1",
			VisitType: visit.TypeNurseVisit, Status: visit.StatusCompleted,
			VisitDate:  "2026-08-01T09:00:00Z",
			VitalSigns: visit.VitalSigns{Pulse: "70"},
		},
		{
			ID: "v2", PatientID: "p1",
			VisitType: visit.TypeVitalsOnly, Status: visit.StatusDraft,
			VisitDate:  "2026-08-20T09:00:00Z",
			VitalSigns: visit.VitalSigns{Pulse: "88"},
		},
	}}
	svc := NewService(repo, visits, &mockContacts{})

	views, err := svc.List(context.Background(), admin())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	v := views[0]
	if v.LastVitalsDate != "2026-08-20T09:00:00Z" || v.LastVitals.Pulse != "88" {
		t.Errorf("last_vitals should come from the draft: %+v date=%s", v.LastVitals, v.LastVitalsDate)
	}
	if v.LastVisitID != "v2" {
		t.Errorf("last_visit_id = %s, want v2 (overwritten by newer vitals)", v.LastVisitID)
	}
	if v.LastVisitDate != "2026-08-01T09:00:00Z" {
		t.Errorf("last_visit_date = %s, should stay with the completed visit", v.LastVisitDate)
	}
}

func TestListEmptyVitalsNotCounted(t *testing.T) {
	// The most recent vitals-bearing visit has a blank payload: no vitals
	// are reported at all, even though an older visit had readings.
	repo := newMockRepo(&Patient{ID: "p1"})
	visits := &mockVisits{visits: []*visit.Visit{
		{
			ID: "v1", PatientID: "p1",
			VisitType: visit.TypeNurseVisit, Status: visit.StatusCompleted,
			VisitDate:  "2026-08-01T09:00:00Z",
			VitalSigns: visit.VitalSigns{Pulse: "70"},
		},
		{
			ID: "v2", PatientID: "p1",
			VisitType: visit.TypeVitalsOnly, Status: visit.StatusCompleted,
			VisitDate: "2026-08-20T09:00:00Z",
		},
	}}
	svc := NewService(repo, visits, &mockContacts{})

	views, err := svc.List(context.Background(), admin())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	v := views[0]
	if v.LastVitals != nil || v.LastVitalsDate != "" {
		t.Errorf("blank vitals should yield no summary: %+v date=%s", v.LastVitals, v.LastVitalsDate)
	}
}

func TestListDailyNoteExcluded(t *testing.T) {
	repo := newMockRepo(&Patient{ID: "p1"})
	visits := &mockVisits{visits: []*visit.Visit{
		{
			ID: "v1", PatientID: "p1",
			VisitType: visit.TypeDailyNote, Status: visit.StatusCompleted,
			VisitDate: "2026-08-25T09:00:00Z",
		},
	}}
	svc := NewService(repo, visits, &mockContacts{})

	views, err := svc.List(context.Background(), admin())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if views[0].LastVisitID != "" {
		t.Errorf("daily notes are not visits: last_visit_id = %s", views[0].LastVisitID)
	}
}

func TestListUTCSummary(t *testing.T) {
	repo := newMockRepo(&Patient{ID: "p1"})
	contacts := &mockContacts{records: []*contact.UnableToContact{
		{
			ID: "u1", PatientID: "p1",
			AttemptDate:        "2026-08-20",
			IndividualLocation: contact.LocationAdmitted,
			CreatedAt:          "2026-08-20T10:00:00Z",
		},
		{
			// Backdated attempt entered later: wins by insertion order.
			ID: "u2", PatientID: "p1",
			AttemptDate:             "2026-08-05",
			IndividualLocation:      contact.LocationOther,
			IndividualLocationOther: "staying with cousin",
			CreatedAt:               "2026-08-21T10:00:00Z",
		},
	}}
	svc := NewService(repo, &mockVisits{}, contacts)

	views, err := svc.List(context.Background(), admin())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	utc := views[0].LastUTC
	if utc == nil {
		t.Fatal("last_utc missing")
	}
	if utc.ID != "u2" || utc.Date != "2026-08-05" {
		t.Errorf("last_utc = %+v, want u2 by created_at ordering", utc)
	}
	if utc.Reason != "staying with cousin" {
		t.Errorf("reason = %q, want free-text override", utc.Reason)
	}
}

func TestUpdatePatient(t *testing.T) {
	repo := newMockRepo(&Patient{ID: "p1", FullName: "Old", AssignedNurses: []string{"n1"}})
	svc := NewService(repo, &mockVisits{}, &mockContacts{})

	name := "New Name"
	view, err := svc.Update(context.Background(), nurse("n1"), "p1", UpdateRequest{
		FullName:       &name,
		AssignedNurses: []string{"n1", "n2"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if view.FullName != "New Name" {
		t.Errorf("FullName = %s", view.FullName)
	}
	// Non-admins cannot change assignments; the field is dropped silently.
	if len(view.AssignedNurses) != 1 {
		t.Errorf("assigned_nurses = %v, staff change should be ignored", view.AssignedNurses)
	}

	if _, err := svc.Update(context.Background(), admin(), "p1", UpdateRequest{AssignedNurses: []string{"n1", "n2"}}); err != nil {
		t.Fatalf("Update() as admin error = %v", err)
	}
	if got := repo.patients["p1"].AssignedNurses; len(got) != 2 {
		t.Errorf("admin assignment change should apply, got %v", got)
	}

	if _, err := svc.Update(context.Background(), nurse("n9"), "p1", UpdateRequest{FullName: &name}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Update() unassigned error = %v, want ErrForbidden", err)
	}
	if _, err := svc.Update(context.Background(), admin(), "ghost", UpdateRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() missing error = %v, want ErrNotFound", err)
	}
}

func TestDeletePatientCascade(t *testing.T) {
	repo := newMockRepo(&Patient{ID: "p1"})
	visitPurger := &countingPurger{}
	contactPurger := &countingPurger{}
	interventionPurger := &countingPurger{}
	svc := NewService(repo, &mockVisits{}, &mockContacts{}, visitPurger, contactPurger, interventionPurger)

	if err := svc.Delete(context.Background(), nurse("n1"), "p1"); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("Delete() as staff error = %v, want ErrAdminOnly", err)
	}

	if err := svc.Delete(context.Background(), admin(), "p1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := repo.patients["p1"]; ok {
		t.Error("patient should be deleted")
	}
	for i, p := range []*countingPurger{visitPurger, contactPurger, interventionPurger} {
		if len(p.purged) != 1 || p.purged[0] != "p1" {
			t.Errorf("purger %d purged = %v", i, p.purged)
		}
	}

	if err := svc.Delete(context.Background(), admin(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() missing error = %v, want ErrNotFound", err)
	}
}

func TestDeletePatientCascadePartialFailure(t *testing.T) {
	// A failing purge surfaces its error so the caller knows records were
	// orphaned, but the patient stays gone and later purgers still run.
	repo := newMockRepo(&Patient{ID: "p1"})
	purgeErr := errors.New("store unavailable")
	bad := &countingPurger{err: purgeErr}
	good := &countingPurger{}
	svc := NewService(repo, &mockVisits{}, &mockContacts{}, bad, good)

	if err := svc.Delete(context.Background(), admin(), "p1"); !errors.Is(err, purgeErr) {
		t.Fatalf("Delete() error = %v, want the purge error surfaced", err)
	}
	if _, ok := repo.patients["p1"]; ok {
		t.Error("patient should be deleted despite the failed purge")
	}
	if len(good.purged) != 1 {
		t.Error("remaining purgers should still run")
	}
}

func TestAssignNurses(t *testing.T) {
	repo := newMockRepo(&Patient{ID: "p1"})
	svc := NewService(repo, &mockVisits{}, &mockContacts{})

	if err := svc.AssignNurses(context.Background(), nurse("n1"), "p1", []string{"n1"}); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("AssignNurses() as staff error = %v, want ErrAdminOnly", err)
	}
	if err := svc.AssignNurses(context.Background(), admin(), "p1", []string{"n1", "n2"}); err != nil {
		t.Fatalf("AssignNurses() error = %v", err)
	}
	if got := repo.patients["p1"].AssignedNurses; len(got) != 2 {
		t.Errorf("assigned_nurses = %v", got)
	}
	if err := svc.AssignNurses(context.Background(), admin(), "ghost", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("AssignNurses() missing error = %v, want ErrNotFound", err)
	}
}
