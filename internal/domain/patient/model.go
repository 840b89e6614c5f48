package patient

import "github.com/nursemed/homecare/internal/domain/visit"

// PermanentInfo is the demographic record carried on every patient.
// Organization is the one mandatory field; it is copied from the create
// request's top level into this record.
type PermanentInfo struct {
	Organization string `bson:"organization" json:"organization"`

	Gender      string `bson:"gender" json:"gender"`
	DateOfBirth string `bson:"date_of_birth" json:"date_of_birth"`

	LivingSituation      string `bson:"living_situation" json:"living_situation"`
	LivingSituationOther string `bson:"living_situation_other" json:"living_situation_other"`
	HomeAddress          string `bson:"home_address" json:"home_address"`
	HomeStreetAddress    string `bson:"home_street_address" json:"home_street_address"`
	HomeCityStateZip     string `bson:"home_city_state_zip" json:"home_city_state_zip"`
	HomeAddressType      string `bson:"home_address_type" json:"home_address_type"`

	AttendsAdultDayProgram bool   `bson:"attends_adult_day_program" json:"attends_adult_day_program"`
	AdultDayProgramName    string `bson:"adult_day_program_name" json:"adult_day_program_name"`
	AdultDayProgramAddress string `bson:"adult_day_program_address" json:"adult_day_program_address"`
	AdultDayStreetAddress  string `bson:"adult_day_street_address" json:"adult_day_street_address"`
	AdultDayCityStateZip   string `bson:"adult_day_city_state_zip" json:"adult_day_city_state_zip"`

	Race                  string   `bson:"race" json:"race"`
	Height                string   `bson:"height" json:"height"`
	CaregiverName         string   `bson:"caregiver_name" json:"caregiver_name"`
	CaregiverPhone        string   `bson:"caregiver_phone" json:"caregiver_phone"`
	Medications           []string `bson:"medications" json:"medications"`
	Allergies             []string `bson:"allergies" json:"allergies"`
	MedicalDiagnoses      []string `bson:"medical_diagnoses" json:"medical_diagnoses"`
	PsychiatricDiagnoses  []string `bson:"psychiatric_diagnoses" json:"psychiatric_diagnoses"`
	VisitFrequency        string   `bson:"visit_frequency" json:"visit_frequency"`
	AdditionalInformation string   `bson:"additional_information" json:"additional_information"`
}

// Patient is the stored record. LastVitals is an advisory denormalized cache
// written back on visit creation; listing recomputes summaries fresh from
// the visit collection and never trusts it.
type Patient struct {
	ID             string            `bson:"id" json:"id"`
	FullName       string            `bson:"full_name" json:"full_name"`
	PermanentInfo  PermanentInfo     `bson:"permanent_info" json:"permanent_info"`
	NurseID        string            `bson:"nurse_id" json:"nurse_id"`
	AssignedNurses []string          `bson:"assigned_nurses" json:"assigned_nurses"`
	CreatedAt      string            `bson:"created_at" json:"created_at"`
	UpdatedAt      string            `bson:"updated_at" json:"updated_at"`
	LastVitals     *visit.VitalSigns `bson:"last_vitals" json:"last_vitals"`
}

// UTCSummary is the listing projection of a patient's most recent
// unable-to-contact record.
type UTCSummary struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// View is a patient enriched with request-scoped summary fields. None of
// these are stored.
type View struct {
	*Patient
	LastVitals     *visit.VitalSigns `json:"last_vitals"`
	LastVitalsDate string            `json:"last_vitals_date,omitempty"`
	LastVisitID    string            `json:"last_visit_id,omitempty"`
	LastVisitDate  string            `json:"last_visit_date,omitempty"`
	LastUTC        *UTCSummary       `json:"last_utc,omitempty"`
	IsAssignedToMe bool              `json:"is_assigned_to_me"`
}

type CreateRequest struct {
	FullName      string        `json:"full_name"`
	Organization  string        `json:"organization"`
	PermanentInfo PermanentInfo `json:"permanent_info"`
}

// UpdateRequest patches a patient. Nil fields are left untouched; the
// assigned_nurses change is honored only for admins.
type UpdateRequest struct {
	FullName       *string        `json:"full_name,omitempty"`
	PermanentInfo  *PermanentInfo `json:"permanent_info,omitempty"`
	AssignedNurses []string       `json:"assigned_nurses,omitempty"`
}
