package contact

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/nursemed/homecare/internal/platform/auth"
)

type mockRepo struct {
	records map[string]*UnableToContact
	seq     int
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: map[string]*UnableToContact{}}
}

func (m *mockRepo) Create(ctx context.Context, r *UnableToContact) error {
	m.records[r.ID] = r
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*UnableToContact, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (m *mockRepo) ListByPatient(ctx context.Context, patientID string) ([]*UnableToContact, error) {
	var out []*UnableToContact
	for _, r := range m.records {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttemptDate > out[j].AttemptDate })
	return out, nil
}

func (m *mockRepo) LastByPatient(ctx context.Context, patientID string) (*UnableToContact, error) {
	var best *UnableToContact
	for _, r := range m.records {
		if r.PatientID != patientID {
			continue
		}
		if best == nil || r.CreatedAt > best.CreatedAt {
			best = r
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	return best, nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *mockRepo) DeleteByPatient(ctx context.Context, patientID string) error {
	for id, r := range m.records {
		if r.PatientID == patientID {
			delete(m.records, id)
		}
	}
	return nil
}

type mockDirectory struct {
	patients map[string]*PatientInfo
}

func (m *mockDirectory) Lookup(ctx context.Context, id string) (*PatientInfo, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func fixture() (*Service, *mockRepo) {
	repo := newMockRepo()
	dir := &mockDirectory{patients: map[string]*PatientInfo{
		"p1": {ID: "p1", FullName: "Pat One", Organization: "org-1", AssignedNurses: []string{"n1"}},
	}}
	return NewService(repo, dir), repo
}

func TestCreateRecord(t *testing.T) {
	svc, repo := fixture()

	rec, err := svc.Create(context.Background(), &auth.Identity{ID: "n1"}, CreateRequest{
		PatientID:          "p1",
		AttemptDate:        "2026-08-15",
		AttemptLocation:    "home",
		IndividualLocation: LocationAdmitted,
		FacilityName:       "Harborview",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.NurseID != "n1" || rec.CreatedAt == "" {
		t.Errorf("record = %+v", rec)
	}
	if rec.PatientName != "Pat One" {
		t.Errorf("PatientName = %q", rec.PatientName)
	}
	if len(repo.records) != 1 {
		t.Errorf("stored records = %d", len(repo.records))
	}

	// Organization access is not enough to create.
	orgNurse := &auth.Identity{ID: "n2", AssignedOrganizations: []string{"org-1"}}
	if _, err := svc.Create(context.Background(), orgNurse, CreateRequest{PatientID: "p1"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Create() with org access only error = %v, want ErrForbidden", err)
	}

	if _, err := svc.Create(context.Background(), &auth.Identity{ID: "n1"}, CreateRequest{PatientID: "ghost"}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Create() missing patient error = %v, want ErrPatientNotFound", err)
	}
}

func TestGetRecordOrgAccess(t *testing.T) {
	svc, repo := fixture()
	repo.records["r1"] = &UnableToContact{ID: "r1", PatientID: "p1", NurseID: "n1"}

	// Single-record reads follow the broader access rule: org membership counts.
	orgNurse := &auth.Identity{ID: "n2", AssignedOrganizations: []string{"org-1"}}
	rec, err := svc.Get(context.Background(), orgNurse, "r1")
	if err != nil {
		t.Fatalf("Get() with org access error = %v", err)
	}
	if rec.PatientName != "Pat One" {
		t.Errorf("PatientName = %q", rec.PatientName)
	}

	// But listing for the patient does not.
	if _, err := svc.ListByPatient(context.Background(), orgNurse, "p1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("ListByPatient() with org access error = %v, want ErrForbidden", err)
	}

	stranger := &auth.Identity{ID: "n3"}
	if _, err := svc.Get(context.Background(), stranger, "r1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Get() unrelated nurse error = %v, want ErrForbidden", err)
	}
}

func TestDeleteRecordAuthorOnly(t *testing.T) {
	svc, repo := fixture()
	repo.records["r1"] = &UnableToContact{ID: "r1", PatientID: "p1", NurseID: "n1"}

	admin := &auth.Identity{ID: "admin-1", Admin: true}
	if err := svc.Delete(context.Background(), admin, "r1"); !errors.Is(err, ErrNotAuthor) {
		t.Errorf("Delete() as admin error = %v, want ErrNotAuthor", err)
	}
	if err := svc.Delete(context.Background(), &auth.Identity{ID: "n1"}, "r1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("record should be gone")
	}
}

func TestReasonLabel(t *testing.T) {
	cases := []struct {
		location, other, want string
	}{
		{LocationAdmitted, "", "Hospitalized"},
		{LocationMedicalAppt, "", "Medical Appt"},
		{LocationOvernightFamily, "", "Overnight w/Family"},
		{LocationOuting, "", "Outing"},
		{LocationMovedTemporarily, "", "Temp Move"},
		{LocationMovedPermanently, "", "Perm Move"},
		{LocationDeceased, "", "Deceased"},
		{LocationOther, "at a neighbor's", "at a neighbor's"},
		{LocationOther, "", "Other"},
		{"garbage", "", "Unknown"},
	}
	for _, tc := range cases {
		if got := ReasonLabel(tc.location, tc.other); got != tc.want {
			t.Errorf("ReasonLabel(%q, %q) = %q, want %q", tc.location, tc.other, got, tc.want)
		}
	}
}
