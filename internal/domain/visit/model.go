package visit

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Visit types.
const (
	TypeNurseVisit = "nurse_visit"
	TypeVitalsOnly = "vitals_only"
	TypeDailyNote  = "daily_note"
)

// Visit statuses.
const (
	StatusDraft     = "draft"
	StatusCompleted = "completed"
)

// VitalSigns stores measurements as free-text strings so partial or
// annotated readings survive round trips. The bp_abnormal flag is computed
// by the caller (systolic >=140 or <90, diastolic >=90 or <60) and stored
// as supplied.
type VitalSigns struct {
	Height                       string `bson:"height" json:"height"`
	Weight                       string `bson:"weight" json:"weight"`
	BodyTemperature              string `bson:"body_temperature" json:"body_temperature"`
	BloodPressureSystolic        string `bson:"blood_pressure_systolic" json:"blood_pressure_systolic"`
	BloodPressureDiastolic       string `bson:"blood_pressure_diastolic" json:"blood_pressure_diastolic"`
	PulseOximeter                string `bson:"pulse_oximeter" json:"pulse_oximeter"`
	Pulse                        string `bson:"pulse" json:"pulse"`
	Respirations                 string `bson:"respirations" json:"respirations"`
	RepeatBloodPressureSystolic  string `bson:"repeat_blood_pressure_systolic" json:"repeat_blood_pressure_systolic"`
	RepeatBloodPressureDiastolic string `bson:"repeat_blood_pressure_diastolic" json:"repeat_blood_pressure_diastolic"`
	BPAbnormal                   bool   `bson:"bp_abnormal" json:"bp_abnormal"`
}

// HasData reports whether at least one measurement was recorded. A visit
// whose vitals are all blank does not count as a vitals reading.
func (v *VitalSigns) HasData() bool {
	if v == nil {
		return false
	}
	for _, s := range []string{
		v.Height, v.Weight, v.BodyTemperature,
		v.BloodPressureSystolic, v.BloodPressureDiastolic,
		v.PulseOximeter, v.Pulse, v.Respirations,
		v.RepeatBloodPressureSystolic, v.RepeatBloodPressureDiastolic,
	} {
		if s != "" {
			return true
		}
	}
	return v.BPAbnormal
}

type SkinAssessment struct {
	SkinTurgor            string `bson:"skin_turgor" json:"skin_turgor"`
	IntegrityWNL          bool   `bson:"integrity_wnl" json:"integrity_wnl"`
	IntegrityRash         bool   `bson:"integrity_rash" json:"integrity_rash"`
	IntegrityDiscolored   bool   `bson:"integrity_discolored" json:"integrity_discolored"`
	IntegrityBruised      bool   `bson:"integrity_bruised" json:"integrity_bruised"`
	IntegrityBurns        bool   `bson:"integrity_burns" json:"integrity_burns"`
	IntegrityOpenAreas    bool   `bson:"integrity_open_areas" json:"integrity_open_areas"`
	IntegrityLacerations  bool   `bson:"integrity_lacerations" json:"integrity_lacerations"`
	IntegrityThick        bool   `bson:"integrity_thick" json:"integrity_thick"`
	IntegrityThin         bool   `bson:"integrity_thin" json:"integrity_thin"`
	IntegrityLesionsFlat  bool   `bson:"integrity_lesions_flat" json:"integrity_lesions_flat"`
	IntegrityLesionsRaise bool   `bson:"integrity_lesions_raised" json:"integrity_lesions_raised"`
	OtherNotes            string `bson:"other_notes" json:"other_notes"`
}

type PhysicalAssessment struct {
	GeneralAppearance         string          `bson:"general_appearance" json:"general_appearance"`
	GeneralAppearanceFromLast bool            `bson:"general_appearance_from_last" json:"general_appearance_from_last"`
	SkinAssessment            *SkinAssessment `bson:"skin_assessment,omitempty" json:"skin_assessment,omitempty"`
	SkinAssessmentFromLast    bool            `bson:"skin_assessment_from_last" json:"skin_assessment_from_last"`
	MobilityLevel             string          `bson:"mobility_level" json:"mobility_level"`
	MobilityLevelFromLast     bool            `bson:"mobility_level_from_last" json:"mobility_level_from_last"`
	SpeechLevel               string          `bson:"speech_level" json:"speech_level"`
	SpeechLevelFromLast       bool            `bson:"speech_level_from_last" json:"speech_level_from_last"`
	AlertOrientedLevel        string          `bson:"alert_oriented_level" json:"alert_oriented_level"`
	AlertOrientedLevelFromLast bool           `bson:"alert_oriented_level_from_last" json:"alert_oriented_level_from_last"`
	GaitStatus                string          `bson:"gait_status" json:"gait_status"`
	FallIncidenceSinceLastVisit string        `bson:"fall_incidence_since_last_visit" json:"fall_incidence_since_last_visit"`
}

type HeadNeckAssessment struct {
	WithinNormalLimits bool   `bson:"within_normal_limits" json:"within_normal_limits"`
	Wounds             bool   `bson:"wounds" json:"wounds"`
	Masses             bool   `bson:"masses" json:"masses"`
	Alopecia           bool   `bson:"alopecia" json:"alopecia"`
	Other              bool   `bson:"other" json:"other"`
	OtherNotes         string `bson:"other_notes" json:"other_notes"`
}

type EyesVisionAssessment struct {
	PupilsPERRLA    string `bson:"pupils_perrla" json:"pupils_perrla"`
	NoIssues        bool   `bson:"no_issues" json:"no_issues"`
	Glasses         bool   `bson:"glasses" json:"glasses"`
	Contacts        bool   `bson:"contacts" json:"contacts"`
	BlurredVision   bool   `bson:"blurred_vision" json:"blurred_vision"`
	Glaucoma        bool   `bson:"glaucoma" json:"glaucoma"`
	Prosthesis      bool   `bson:"prosthesis" json:"prosthesis"`
	BlindEyes       bool   `bson:"blind_eyes" json:"blind_eyes"`
	BlindWhich      string `bson:"blind_which" json:"blind_which"`
	CataractSurgery bool   `bson:"cataract_surgery" json:"cataract_surgery"`
	Infections      bool   `bson:"infections" json:"infections"`
	Other           bool   `bson:"other" json:"other"`
	OtherNotes      string `bson:"other_notes" json:"other_notes"`
}

type EarsHearingAssessment struct {
	NoIssues      bool   `bson:"no_issues" json:"no_issues"`
	Deaf          bool   `bson:"deaf" json:"deaf"`
	DeafWhich     string `bson:"deaf_which" json:"deaf_which"`
	HardOfHearing bool   `bson:"hard_of_hearing" json:"hard_of_hearing"`
	HearingAid    bool   `bson:"hearing_aid" json:"hearing_aid"`
	Vertigo       bool   `bson:"vertigo" json:"vertigo"`
	Tinnitus      bool   `bson:"tinnitus" json:"tinnitus"`
	Infections    bool   `bson:"infections" json:"infections"`
	Other         bool   `bson:"other" json:"other"`
	OtherNotes    string `bson:"other_notes" json:"other_notes"`
}

type MouthOralAssessment struct {
	NoIssues      bool   `bson:"no_issues" json:"no_issues"`
	Dentures      bool   `bson:"dentures" json:"dentures"`
	DenturesType  string `bson:"dentures_type" json:"dentures_type"`
	PoorDentition bool   `bson:"poor_dentition" json:"poor_dentition"`
	MouthSores    bool   `bson:"mouth_sores" json:"mouth_sores"`
	DryMouth      bool   `bson:"dry_mouth" json:"dry_mouth"`
	Thrush        bool   `bson:"thrush" json:"thrush"`
	Other         bool   `bson:"other" json:"other"`
	OtherNotes    string `bson:"other_notes" json:"other_notes"`
}

type NasalFindings struct {
	WNL            bool `bson:"wnl" json:"wnl"`
	Congestion     bool `bson:"congestion" json:"congestion"`
	Discharge      bool `bson:"discharge" json:"discharge"`
	Bleeding       bool `bson:"bleeding" json:"bleeding"`
	DeviatedSeptum bool `bson:"deviated_septum" json:"deviated_septum"`
	Polyps         bool `bson:"polyps" json:"polyps"`
}

// NoseNasalCavity accepts either a free-text note or a structured findings
// object on the wire. Older clients submit a plain string; newer ones submit
// the checkbox object. Whichever form came in is preserved on the way out.
type NoseNasalCavity struct {
	Text     string
	Findings *NasalFindings
}

func (n NoseNasalCavity) MarshalJSON() ([]byte, error) {
	if n.Findings != nil {
		return json.Marshal(n.Findings)
	}
	return json.Marshal(n.Text)
}

func (n *NoseNasalCavity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n.Text = s
		n.Findings = nil
		return nil
	}
	var f NasalFindings
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	n.Text = ""
	n.Findings = &f
	return nil
}

func (n NoseNasalCavity) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if n.Findings != nil {
		return bson.MarshalValue(n.Findings)
	}
	return bson.MarshalValue(n.Text)
}

func (n *NoseNasalCavity) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	if t == bsontype.String {
		n.Text = raw.StringValue()
		n.Findings = nil
		return nil
	}
	var f NasalFindings
	if err := raw.Unmarshal(&f); err != nil {
		return err
	}
	n.Text = ""
	n.Findings = &f
	return nil
}

type HeadToToeAssessment struct {
	HeadNeck                     *HeadNeckAssessment    `bson:"head_neck,omitempty" json:"head_neck,omitempty"`
	HeadNeckFromLast             bool                   `bson:"head_neck_from_last" json:"head_neck_from_last"`
	EyesVision                   *EyesVisionAssessment  `bson:"eyes_vision,omitempty" json:"eyes_vision,omitempty"`
	EyesVisionFromLast           bool                   `bson:"eyes_vision_from_last" json:"eyes_vision_from_last"`
	EarsHearing                  *EarsHearingAssessment `bson:"ears_hearing,omitempty" json:"ears_hearing,omitempty"`
	EarsHearingFromLast          bool                   `bson:"ears_hearing_from_last" json:"ears_hearing_from_last"`
	NoseNasalCavity              NoseNasalCavity        `bson:"nose_nasal_cavity" json:"nose_nasal_cavity"`
	NoseNasalCavityFromLast      bool                   `bson:"nose_nasal_cavity_from_last" json:"nose_nasal_cavity_from_last"`
	MouthTeethOralCavity         *MouthOralAssessment   `bson:"mouth_teeth_oral_cavity,omitempty" json:"mouth_teeth_oral_cavity,omitempty"`
	MouthTeethOralCavityFromLast bool                   `bson:"mouth_teeth_oral_cavity_from_last" json:"mouth_teeth_oral_cavity_from_last"`
}

type GastrointestinalAssessment struct {
	LastBowelMovement string `bson:"last_bowel_movement" json:"last_bowel_movement"`
	BowelSounds       string `bson:"bowel_sounds" json:"bowel_sounds"`
	NutritionalDiet   string `bson:"nutritional_diet" json:"nutritional_diet"`
}

type GenitoUrinaryAssessment struct {
	ToiletingLevel string `bson:"toileting_level" json:"toileting_level"`
}

type RespiratoryAssessment struct {
	LungSounds string `bson:"lung_sounds" json:"lung_sounds"`
	OxygenType string `bson:"oxygen_type" json:"oxygen_type"`
}

type EndocrineAssessment struct {
	IsDiabetic         bool   `bson:"is_diabetic" json:"is_diabetic"`
	DiabeticNotes      string `bson:"diabetic_notes" json:"diabetic_notes"`
	BloodSugar         string `bson:"blood_sugar" json:"blood_sugar"`
	BloodSugarDate     string `bson:"blood_sugar_date" json:"blood_sugar_date"`
	BloodSugarTimeOfDay string `bson:"blood_sugar_time_of_day" json:"blood_sugar_time_of_day"`
}

type ChangesSinceLastVisit struct {
	MedicationChanges    string `bson:"medication_changes" json:"medication_changes"`
	DiagnosisChanges     string `bson:"diagnosis_changes" json:"diagnosis_changes"`
	ERUrgentCareVisits   string `bson:"er_urgent_care_visits" json:"er_urgent_care_visits"`
	UpcomingAppointments string `bson:"upcoming_appointments" json:"upcoming_appointments"`
}

type LogbookItem struct {
	Reviewed      bool `bson:"reviewed" json:"reviewed"`
	Unavailable   bool `bson:"unavailable" json:"unavailable"`
	NotApplicable bool `bson:"not_applicable" json:"not_applicable"`
}

type HomeVisitLogbook struct {
	LockedMeds       LogbookItem `bson:"locked_meds" json:"locked_meds"`
	MAR              LogbookItem `bson:"mar" json:"mar"`
	BloodGlucose     LogbookItem `bson:"blood_glucose" json:"blood_glucose"`
	BowelMovement    LogbookItem `bson:"bowel_movement" json:"bowel_movement"`
	VitalSigns       LogbookItem `bson:"vital_signs" json:"vital_signs"`
	Seizure          LogbookItem `bson:"seizure" json:"seizure"`
	Other            LogbookItem `bson:"other" json:"other"`
	OtherDescription string      `bson:"other_description" json:"other_description"`
	Notes            string      `bson:"notes" json:"notes"`

	// Legacy checkbox fields kept for older documents.
	LockedMedsChecked       bool `bson:"locked_meds_checked" json:"locked_meds_checked"`
	MARReviewed             bool `bson:"mar_reviewed" json:"mar_reviewed"`
	BMLogChecked            bool `bson:"bm_log_checked" json:"bm_log_checked"`
	CommunicationLogChecked bool `bson:"communication_log_checked" json:"communication_log_checked"`
	SeizureLogChecked       bool `bson:"seizure_log_checked" json:"seizure_log_checked"`
}

// Visit is one documentation entry for a patient, authored by one nurse.
// The clinical payload is replaced wholesale on update; there is no partial
// patching of assessment sections.
type Visit struct {
	ID                  string                     `bson:"id" json:"id"`
	PatientID           string                     `bson:"patient_id" json:"patient_id"`
	NurseID             string                     `bson:"nurse_id" json:"nurse_id"`
	VisitDate           string                     `bson:"visit_date" json:"visit_date"`
	VisitType           string                     `bson:"visit_type" json:"visit_type"`
	NurseVisitType      string                     `bson:"nurse_visit_type" json:"nurse_visit_type"`
	NurseVisitTypeOther string                     `bson:"nurse_visit_type_other" json:"nurse_visit_type_other"`
	Organization        string                     `bson:"organization" json:"organization"`
	VisitLocation       string                     `bson:"visit_location" json:"visit_location"`
	VisitLocationOther  string                     `bson:"visit_location_other" json:"visit_location_other"`
	VitalSigns          VitalSigns                 `bson:"vital_signs" json:"vital_signs"`
	PhysicalAssessment  PhysicalAssessment         `bson:"physical_assessment" json:"physical_assessment"`
	HeadToToe           HeadToToeAssessment        `bson:"head_to_toe" json:"head_to_toe"`
	Gastrointestinal    GastrointestinalAssessment `bson:"gastrointestinal" json:"gastrointestinal"`
	GenitoUrinary       GenitoUrinaryAssessment    `bson:"genito_urinary" json:"genito_urinary"`
	Respiratory         RespiratoryAssessment      `bson:"respiratory" json:"respiratory"`
	Endocrine           EndocrineAssessment        `bson:"endocrine" json:"endocrine"`
	ChangesSinceLast    ChangesSinceLastVisit      `bson:"changes_since_last" json:"changes_since_last"`
	HomeVisitLogbook    HomeVisitLogbook           `bson:"home_visit_logbook" json:"home_visit_logbook"`
	OverallHealthStatus string                     `bson:"overall_health_status" json:"overall_health_status"`
	NurseNotes          string                     `bson:"nurse_notes" json:"nurse_notes"`
	DailyNoteContent    string                     `bson:"daily_note_content" json:"daily_note_content"`
	Status              string                     `bson:"status" json:"status"`
	Attachments         []string                   `bson:"attachments" json:"attachments"`
	ScreeningCompletedBy string                    `bson:"screening_completed_by" json:"screening_completed_by"`
	ReviewedAndSignedBy string                     `bson:"reviewed_and_signed_by" json:"reviewed_and_signed_by"`
	CreatedAt           string                     `bson:"created_at" json:"created_at"`

	// PatientName is filled in by the reporting aggregator, never stored.
	PatientName string `bson:"-" json:"patient_name,omitempty"`
}

// CreateRequest is the client payload for creating or replacing a visit.
type CreateRequest struct {
	VisitDate           string                     `json:"visit_date"`
	VisitType           string                     `json:"visit_type"`
	NurseVisitType      string                     `json:"nurse_visit_type"`
	NurseVisitTypeOther string                     `json:"nurse_visit_type_other"`
	Organization        string                     `json:"organization"`
	VisitLocation       string                     `json:"visit_location"`
	VisitLocationOther  string                     `json:"visit_location_other"`
	VitalSigns          VitalSigns                 `json:"vital_signs"`
	PhysicalAssessment  PhysicalAssessment         `json:"physical_assessment"`
	HeadToToe           HeadToToeAssessment        `json:"head_to_toe"`
	Gastrointestinal    GastrointestinalAssessment `json:"gastrointestinal"`
	GenitoUrinary       GenitoUrinaryAssessment    `json:"genito_urinary"`
	Respiratory         RespiratoryAssessment      `json:"respiratory"`
	Endocrine           EndocrineAssessment        `json:"endocrine"`
	ChangesSinceLast    ChangesSinceLastVisit      `json:"changes_since_last"`
	HomeVisitLogbook    HomeVisitLogbook           `json:"home_visit_logbook"`
	OverallHealthStatus string                     `json:"overall_health_status"`
	NurseNotes          string                     `json:"nurse_notes"`
	DailyNoteContent    string                     `json:"daily_note_content"`
	Status              string                     `json:"status"`
	Attachments         []string                   `json:"attachments"`
	ScreeningCompletedBy string                    `json:"screening_completed_by"`
	ReviewedAndSignedBy string                     `json:"reviewed_and_signed_by"`
}
