package intervention

// Intervention types. Exactly one detail payload is populated, selected by
// the type.
const (
	TypeInjection = "injection"
	TypeTest      = "test"
	TypeTreatment = "treatment"
	TypeProcedure = "procedure"
)

type InjectionDetails struct {
	IsVaccination      bool   `bson:"is_vaccination" json:"is_vaccination"`
	VaccinationType    string `bson:"vaccination_type" json:"vaccination_type"`
	VaccinationOther   string `bson:"vaccination_other" json:"vaccination_other"`
	NonVaccinationType string `bson:"non_vaccination_type" json:"non_vaccination_type"`
	NonVaccinationOther string `bson:"non_vaccination_other" json:"non_vaccination_other"`
	Dose               string `bson:"dose" json:"dose"`
	Route              string `bson:"route" json:"route"`
	Site               string `bson:"site" json:"site"`

	VerifiedNoAllergicReaction bool `bson:"verified_no_allergic_reaction" json:"verified_no_allergic_reaction"`
	CleanedInjectionSite       bool `bson:"cleaned_injection_site" json:"cleaned_injection_site"`
	Adhered8Rights             bool `bson:"adhered_8_rights" json:"adhered_8_rights"`
}

type TestDetails struct {
	TestType        string `bson:"test_type" json:"test_type"`
	TestOther       string `bson:"test_other" json:"test_other"`
	TBPlacementSite string `bson:"tb_placement_site" json:"tb_placement_site"`
	TBArm           string `bson:"tb_arm" json:"tb_arm"`
	Result          string `bson:"result" json:"result"`
	Notes           string `bson:"notes" json:"notes"`
}

type TreatmentDetails struct {
	TreatmentType  string `bson:"treatment_type" json:"treatment_type"`
	TreatmentOther string `bson:"treatment_other" json:"treatment_other"`
	Notes          string `bson:"notes" json:"notes"`
}

type ProcedureDetails struct {
	ProcedureType  string `bson:"procedure_type" json:"procedure_type"`
	ProcedureOther string `bson:"procedure_other" json:"procedure_other"`
	BodySite       string `bson:"body_site" json:"body_site"`
	SutureCount    int    `bson:"suture_count" json:"suture_count"`
	EarSide        string `bson:"ear_side" json:"ear_side"`
	Notes          string `bson:"notes" json:"notes"`
}

// Intervention is a nursing intervention performed for a patient, with an
// acknowledgement checklist and post-intervention observations.
type Intervention struct {
	ID               string            `bson:"id" json:"id"`
	PatientID        string            `bson:"patient_id" json:"patient_id"`
	NurseID          string            `bson:"nurse_id" json:"nurse_id"`
	InterventionDate string            `bson:"intervention_date" json:"intervention_date"`
	InterventionTime string            `bson:"intervention_time" json:"intervention_time"`
	Location         string            `bson:"location" json:"location"`
	BodyTemperature  string            `bson:"body_temperature" json:"body_temperature"`
	MoodScale        int               `bson:"mood_scale" json:"mood_scale"`
	InterventionType string            `bson:"intervention_type" json:"intervention_type"`
	InjectionDetails *InjectionDetails `bson:"injection_details,omitempty" json:"injection_details,omitempty"`
	TestDetails      *TestDetails      `bson:"test_details,omitempty" json:"test_details,omitempty"`
	TreatmentDetails *TreatmentDetails `bson:"treatment_details,omitempty" json:"treatment_details,omitempty"`
	ProcedureDetails *ProcedureDetails `bson:"procedure_details,omitempty" json:"procedure_details,omitempty"`

	VerifiedPatientIdentity bool `bson:"verified_patient_identity" json:"verified_patient_identity"`
	DonnedProperPPE         bool `bson:"donned_proper_ppe" json:"donned_proper_ppe"`

	PostNoSevereSymptoms       bool `bson:"post_no_severe_symptoms" json:"post_no_severe_symptoms"`
	PostToleratedWell          bool `bson:"post_tolerated_well" json:"post_tolerated_well"`
	PostInformedSideEffects    bool `bson:"post_informed_side_effects" json:"post_informed_side_effects"`
	PostAdvisedResultsTimeframe bool `bson:"post_advised_results_timeframe" json:"post_advised_results_timeframe"`
	PostEducatedSeekCare       bool `bson:"post_educated_seek_care" json:"post_educated_seek_care"`

	CompletionStatus        string `bson:"completion_status" json:"completion_status"`
	NextVisitInterval       string `bson:"next_visit_interval" json:"next_visit_interval"`
	NextVisitIntervalOther  string `bson:"next_visit_interval_other" json:"next_visit_interval_other"`
	PresentPersonType       string `bson:"present_person_type" json:"present_person_type"`
	PresentPersonTypeOther  string `bson:"present_person_type_other" json:"present_person_type_other"`
	PresentPersonName       string `bson:"present_person_name" json:"present_person_name"`
	AdditionalComments      string `bson:"additional_comments" json:"additional_comments"`
	Notes                   string `bson:"notes" json:"notes"`
	CreatedAt               string `bson:"created_at" json:"created_at"`
	UpdatedAt               string `bson:"updated_at,omitempty" json:"updated_at,omitempty"`

	// Patient display fields resolved at read time, never stored.
	PatientName string `bson:"-" json:"patient_name,omitempty"`
	PatientDOB  string `bson:"-" json:"patient_dob,omitempty"`
}

// CreateRequest is the client payload for creating or replacing an
// intervention.
type CreateRequest struct {
	PatientID        string            `json:"patient_id"`
	InterventionDate string            `json:"intervention_date"`
	InterventionTime string            `json:"intervention_time"`
	Location         string            `json:"location"`
	BodyTemperature  string            `json:"body_temperature"`
	MoodScale        int               `json:"mood_scale"`
	InterventionType string            `json:"intervention_type"`
	InjectionDetails *InjectionDetails `json:"injection_details,omitempty"`
	TestDetails      *TestDetails      `json:"test_details,omitempty"`
	TreatmentDetails *TreatmentDetails `json:"treatment_details,omitempty"`
	ProcedureDetails *ProcedureDetails `json:"procedure_details,omitempty"`

	VerifiedPatientIdentity bool `json:"verified_patient_identity"`
	DonnedProperPPE         bool `json:"donned_proper_ppe"`

	PostNoSevereSymptoms        bool `json:"post_no_severe_symptoms"`
	PostToleratedWell           bool `json:"post_tolerated_well"`
	PostInformedSideEffects     bool `json:"post_informed_side_effects"`
	PostAdvisedResultsTimeframe bool `json:"post_advised_results_timeframe"`
	PostEducatedSeekCare        bool `json:"post_educated_seek_care"`

	CompletionStatus       string `json:"completion_status"`
	NextVisitInterval      string `json:"next_visit_interval"`
	NextVisitIntervalOther string `json:"next_visit_interval_other"`
	PresentPersonType      string `json:"present_person_type"`
	PresentPersonTypeOther string `json:"present_person_type_other"`
	PresentPersonName      string `json:"present_person_name"`
	AdditionalComments     string `json:"additional_comments"`
	Notes                  string `json:"notes"`
}
