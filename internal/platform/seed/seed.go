// Package seed populates an empty database with demo organizations,
// nurse accounts, and patients for post-deploy smoke testing.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nursemed/homecare/internal/domain/admin"
	"github.com/nursemed/homecare/internal/domain/identity"
	"github.com/nursemed/homecare/internal/domain/patient"
	"github.com/nursemed/homecare/internal/platform/auth"
)

// Result reports what the seeder did. Status is "skipped" when the
// database already holds nurse accounts.
type Result struct {
	Message              string                 `json:"message"`
	Status               string                 `json:"status"`
	NursesCount          int64                  `json:"nurses_count,omitempty"`
	OrganizationsCreated int                    `json:"organizations_created,omitempty"`
	NursesCreated        int                    `json:"nurses_created,omitempty"`
	PatientsCreated      int                    `json:"patients_created,omitempty"`
	LoginCredentials     map[string]interface{} `json:"login_credentials,omitempty"`
}

type Seeder struct {
	nurses   identity.Repository
	orgs     admin.OrganizationRepository
	patients patient.Repository
}

func New(nurses identity.Repository, orgs admin.OrganizationRepository, patients patient.Repository) *Seeder {
	return &Seeder{nurses: nurses, orgs: orgs, patients: patients}
}

// Run inserts the demo fixture set. It is idempotent at the coarse level:
// any existing nurse account makes the whole run a no-op.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	count, err := s.nurses.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &Result{
			Message:     "Demo data already exists",
			Status:      "skipped",
			NursesCount: count,
		}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)

	orgs := []*admin.Organization{
		{
			ID:            uuid.NewString(),
			Name:          "POSH Host Homes",
			Address:       "123 Main St, Seattle, WA 98101",
			ContactPerson: "Jane Smith",
			ContactPhone:  "(206) 555-0100",
			CreatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Ebenezer Private HomeCare",
			Address:       "456 Oak Ave, Seattle, WA 98102",
			ContactPerson: "John Davis",
			ContactPhone:  "(206) 555-0200",
			CreatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Jericho",
			Address:       "789 Pine St, Seattle, WA 98103",
			ContactPerson: "Mary Wilson",
			ContactPhone:  "(206) 555-0300",
			CreatedAt:     now,
		},
	}
	for _, org := range orgs {
		if err := s.orgs.Create(ctx, org); err != nil {
			return nil, err
		}
	}
	allOrgIDs := make([]string, len(orgs))
	for i, org := range orgs {
		allOrgIDs[i] = org.ID
	}

	nurses, err := s.demoNurses(allOrgIDs, now)
	if err != nil {
		return nil, err
	}
	for _, n := range nurses {
		if err := s.nurses.Create(ctx, n); err != nil {
			return nil, err
		}
	}

	patients := demoPatients(orgs, nurses, now)
	for _, p := range patients {
		if err := s.patients.Create(ctx, p); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("organizations", len(orgs)).
		Int("nurses", len(nurses)).
		Int("patients", len(patients)).
		Msg("demo data seeded")

	return &Result{
		Message:              "Demo data created successfully!",
		Status:               "success",
		OrganizationsCreated: len(orgs),
		NursesCreated:        len(nurses),
		PatientsCreated:      len(patients),
		LoginCredentials: map[string]interface{}{
			"admin": "demo@nursemed.com / demo123",
			"nurses": []string{
				"sarah.johnson@nursemed.com / nurse123",
				"michael.chen@nursemed.com / nurse123",
			},
		},
	}, nil
}

func (s *Seeder) demoNurses(allOrgIDs []string, now string) ([]*identity.Nurse, error) {
	adminHash, err := auth.HashPassword("demo123")
	if err != nil {
		return nil, err
	}
	nurseHash, err := auth.HashPassword("nurse123")
	if err != nil {
		return nil, err
	}

	adminLicense := "ADMIN001"
	sarahLicense := "RN123456"
	michaelLicense := "LPN789012"

	return []*identity.Nurse{
		{
			ID:                    uuid.NewString(),
			Email:                 "demo@nursemed.com",
			PasswordHash:          adminHash,
			FullName:              "Demo Admin",
			Title:                 "Administrator",
			LicenseNumber:         &adminLicense,
			IsAdmin:               true,
			AssignedPatients:      []string{},
			AssignedOrganizations: allOrgIDs,
			AllowedForms:          []string{"nurse_visit", "vitals_only", "daily_note"},
			CreatedAt:             now,
		},
		{
			ID:                    uuid.NewString(),
			Email:                 "sarah.johnson@nursemed.com",
			PasswordHash:          nurseHash,
			FullName:              "Sarah Johnson",
			Title:                 "Registered Nurse (RN)",
			LicenseNumber:         &sarahLicense,
			AssignedPatients:      []string{},
			AssignedOrganizations: allOrgIDs[:1],
			AllowedForms:          []string{"nurse_visit", "vitals_only", "daily_note"},
			CreatedAt:             now,
		},
		{
			ID:                    uuid.NewString(),
			Email:                 "michael.chen@nursemed.com",
			PasswordHash:          nurseHash,
			FullName:              "Michael Chen",
			Title:                 "Licensed Practical Nurse (LPN)",
			LicenseNumber:         &michaelLicense,
			AssignedPatients:      []string{},
			AssignedOrganizations: allOrgIDs[1:2],
			AllowedForms:          []string{"vitals_only", "daily_note"},
			CreatedAt:             now,
		},
	}, nil
}

func demoPatients(orgs []*admin.Organization, nurses []*identity.Nurse, now string) []*patient.Patient {
	return []*patient.Patient{
		{
			ID:       uuid.NewString(),
			FullName: "Margaret Williams",
			PermanentInfo: patient.PermanentInfo{
				Organization:         orgs[0].ID,
				Gender:               "Female",
				DateOfBirth:          "1945-03-15",
				LivingSituation:      "host_home",
				HomeAddress:          "1234 Maple Drive, Seattle, WA 98104",
				CaregiverName:        "Betty Williams (Daughter)",
				CaregiverPhone:       "(206) 555-1002",
				Medications:          []string{"Lisinopril 10mg daily", "Metformin 500mg twice daily", "Aspirin 81mg daily"},
				Allergies:            []string{"Penicillin", "Shellfish"},
				MedicalDiagnoses:     []string{"Hypertension", "Type 2 Diabetes", "Osteoarthritis"},
				PsychiatricDiagnoses: []string{},
				VisitFrequency:       "Monthly",
			},
			NurseID:        nurses[1].ID,
			AssignedNurses: []string{nurses[1].ID},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:       uuid.NewString(),
			FullName: "Robert Johnson",
			PermanentInfo: patient.PermanentInfo{
				Organization:         orgs[1].ID,
				Gender:               "Male",
				DateOfBirth:          "1938-07-22",
				LivingSituation:      "private_home",
				HomeAddress:          "5678 Cedar Lane, Seattle, WA 98105",
				CaregiverName:        "Linda Johnson (Wife)",
				CaregiverPhone:       "(206) 555-2002",
				Medications:          []string{"Furosemide 40mg daily", "Carvedilol 25mg twice daily", "Sertraline 50mg daily"},
				Allergies:            []string{"Latex"},
				MedicalDiagnoses:     []string{"CHF", "COPD"},
				PsychiatricDiagnoses: []string{"Depression"},
				VisitFrequency:       "Weekly",
			},
			NurseID:        nurses[2].ID,
			AssignedNurses: []string{nurses[2].ID},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:       uuid.NewString(),
			FullName: "Dorothy Martinez",
			PermanentInfo: patient.PermanentInfo{
				Organization:         orgs[2].ID,
				Gender:               "Female",
				DateOfBirth:          "1952-11-08",
				LivingSituation:      "group_home",
				HomeAddress:          "9012 Birch Avenue, Seattle, WA 98106",
				CaregiverName:        "Carlos Martinez (Son)",
				CaregiverPhone:       "(206) 555-3002",
				Medications:          []string{"Donepezil 10mg daily", "Amlodipine 5mg daily", "Memantine 10mg twice daily"},
				Allergies:            []string{},
				MedicalDiagnoses:     []string{"Hypertension"},
				PsychiatricDiagnoses: []string{"Alzheimer's Disease"},
				VisitFrequency:       "Bi-weekly",
			},
			NurseID:        nurses[0].ID,
			AssignedNurses: []string{nurses[0].ID},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}
