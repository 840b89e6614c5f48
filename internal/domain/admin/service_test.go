package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/nursemed/homecare/internal/platform/auth"
)

type mockOrgRepo struct {
	orgs map[string]*Organization
}

func (m *mockOrgRepo) Create(ctx context.Context, o *Organization) error {
	m.orgs[o.ID] = o
	return nil
}

func (m *mockOrgRepo) List(ctx context.Context) ([]*Organization, error) {
	out := make([]*Organization, 0, len(m.orgs))
	for _, o := range m.orgs {
		out = append(out, o)
	}
	return out, nil
}

func (m *mockOrgRepo) Update(ctx context.Context, id string, req OrganizationRequest) (*Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Name = req.Name
	o.Address = req.Address
	o.ContactPerson = req.ContactPerson
	o.ContactPhone = req.ContactPhone
	return o, nil
}

func (m *mockOrgRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.orgs[id]; !ok {
		return ErrNotFound
	}
	delete(m.orgs, id)
	return nil
}

type mockProgramRepo struct {
	programs map[string]*DayProgram
}

func (m *mockProgramRepo) Create(ctx context.Context, p *DayProgram) error {
	m.programs[p.ID] = p
	return nil
}

func (m *mockProgramRepo) List(ctx context.Context) ([]*DayProgram, error) {
	out := make([]*DayProgram, 0, len(m.programs))
	for _, p := range m.programs {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProgramRepo) Update(ctx context.Context, id string, req DayProgramRequest) (*DayProgram, error) {
	p, ok := m.programs[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Name = req.Name
	p.Address = req.Address
	p.OfficePhone = req.OfficePhone
	p.ContactPerson = req.ContactPerson
	return p, nil
}

func (m *mockProgramRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.programs[id]; !ok {
		return ErrNotFound
	}
	delete(m.programs, id)
	return nil
}

func fixture() (*Service, *mockOrgRepo, *mockProgramRepo) {
	orgs := &mockOrgRepo{orgs: map[string]*Organization{}}
	programs := &mockProgramRepo{programs: map[string]*DayProgram{}}
	return NewService(orgs, programs), orgs, programs
}

func TestOrganizationLifecycle(t *testing.T) {
	svc, repo, _ := fixture()
	admin := &auth.Identity{ID: "a1", Admin: true}
	staff := &auth.Identity{ID: "n1"}

	if _, err := svc.CreateOrganization(context.Background(), staff, OrganizationRequest{Name: "X"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("CreateOrganization() as staff error = %v, want ErrForbidden", err)
	}

	o, err := svc.CreateOrganization(context.Background(), admin, OrganizationRequest{
		Name: "POSH Host Homes", Address: "123 Main St", ContactPerson: "Jane Smith", ContactPhone: "(206) 555-0100",
	})
	if err != nil {
		t.Fatalf("CreateOrganization() error = %v", err)
	}
	if o.ID == "" || o.CreatedAt == "" {
		t.Errorf("organization = %+v", o)
	}

	updated, err := svc.UpdateOrganization(context.Background(), admin, o.ID, OrganizationRequest{Name: "POSH"})
	if err != nil {
		t.Fatalf("UpdateOrganization() error = %v", err)
	}
	if updated.Name != "POSH" {
		t.Errorf("Name = %s", updated.Name)
	}

	if err := svc.DeleteOrganization(context.Background(), admin, o.ID); err != nil {
		t.Fatalf("DeleteOrganization() error = %v", err)
	}
	if len(repo.orgs) != 0 {
		t.Error("organization should be gone")
	}
	if err := svc.DeleteOrganization(context.Background(), admin, o.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteOrganization() again error = %v, want ErrNotFound", err)
	}
}

func TestDayProgramLifecycle(t *testing.T) {
	svc, _, repo := fixture()
	admin := &auth.Identity{ID: "a1", Admin: true}

	p, err := svc.CreateDayProgram(context.Background(), admin, DayProgramRequest{
		Name: "Sunrise Center", OfficePhone: "(206) 555-0400",
	})
	if err != nil {
		t.Fatalf("CreateDayProgram() error = %v", err)
	}
	if _, ok := repo.programs[p.ID]; !ok {
		t.Error("program should be stored")
	}

	if _, err := svc.ListDayPrograms(context.Background(), &auth.Identity{ID: "n1"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("ListDayPrograms() as staff error = %v, want ErrForbidden", err)
	}
	programs, err := svc.ListDayPrograms(context.Background(), admin)
	if err != nil || len(programs) != 1 {
		t.Errorf("ListDayPrograms() = %v, %v", programs, err)
	}
}
