package contact

// Individual-location outcome codes for a failed contact attempt.
const (
	LocationAdmitted         = "admitted"
	LocationMedicalAppt      = "medical_appointment"
	LocationOvernightFamily  = "overnight_family"
	LocationOuting           = "outing"
	LocationMovedTemporarily = "moved_temporarily"
	LocationMovedPermanently = "moved_permanently"
	LocationDeceased         = "deceased"
	LocationOther            = "other"
)

var reasonLabels = map[string]string{
	LocationAdmitted:         "Hospitalized",
	LocationMedicalAppt:      "Medical Appt",
	LocationOvernightFamily:  "Overnight w/Family",
	LocationOuting:           "Outing",
	LocationMovedTemporarily: "Temp Move",
	LocationMovedPermanently: "Perm Move",
	LocationDeceased:         "Deceased",
}

// ReasonLabel maps an outcome code to its display label. The "other" code
// falls through to the free-text override; unrecognized codes read "Unknown".
func ReasonLabel(location, otherText string) string {
	if location == LocationOther {
		if otherText == "" {
			return "Other"
		}
		return otherText
	}
	if label, ok := reasonLabels[location]; ok {
		return label
	}
	return "Unknown"
}

// UnableToContact records one failed attempt to reach a patient, with
// conditional detail fields depending on where the patient turned out to be.
type UnableToContact struct {
	ID                      string `bson:"id" json:"id"`
	PatientID               string `bson:"patient_id" json:"patient_id"`
	NurseID                 string `bson:"nurse_id" json:"nurse_id"`
	VisitType               string `bson:"visit_type" json:"visit_type"`
	AttemptDate             string `bson:"attempt_date" json:"attempt_date"`
	AttemptTime             string `bson:"attempt_time" json:"attempt_time"`
	AttemptReason           string `bson:"attempt_reason" json:"attempt_reason"`
	AttemptLocation         string `bson:"attempt_location" json:"attempt_location"`
	AttemptLocationOther    string `bson:"attempt_location_other" json:"attempt_location_other"`
	SpokeWithAnyone         bool   `bson:"spoke_with_anyone" json:"spoke_with_anyone"`
	SpokeWithWhom           string `bson:"spoke_with_whom" json:"spoke_with_whom"`
	IndividualLocation      string `bson:"individual_location" json:"individual_location"`
	IndividualLocationOther string `bson:"individual_location_other" json:"individual_location_other"`
	MovedTemporarilyWhere   string `bson:"moved_temporarily_where" json:"moved_temporarily_where"`
	DeceasedDate            string `bson:"deceased_date" json:"deceased_date"`
	FacilityName            string `bson:"facility_name" json:"facility_name"`
	FacilityCity            string `bson:"facility_city" json:"facility_city"`
	FacilityState           string `bson:"facility_state" json:"facility_state"`
	AdmissionDate           string `bson:"admission_date" json:"admission_date"`
	AdmissionReason         string `bson:"admission_reason" json:"admission_reason"`
	ExpectedReturnDate      string `bson:"expected_return_date" json:"expected_return_date"`
	AdditionalInfo          string `bson:"additional_info" json:"additional_info"`
	CreatedAt               string `bson:"created_at" json:"created_at"`

	// PatientName is resolved at read time, never stored.
	PatientName string `bson:"-" json:"patient_name,omitempty"`
}

// CreateRequest is the client payload for recording a failed contact attempt.
type CreateRequest struct {
	PatientID               string `json:"patient_id"`
	VisitType               string `json:"visit_type"`
	AttemptDate             string `json:"attempt_date"`
	AttemptTime             string `json:"attempt_time"`
	AttemptReason           string `json:"attempt_reason"`
	AttemptLocation         string `json:"attempt_location"`
	AttemptLocationOther    string `json:"attempt_location_other"`
	SpokeWithAnyone         bool   `json:"spoke_with_anyone"`
	SpokeWithWhom           string `json:"spoke_with_whom"`
	IndividualLocation      string `json:"individual_location"`
	IndividualLocationOther string `json:"individual_location_other"`
	MovedTemporarilyWhere   string `json:"moved_temporarily_where"`
	DeceasedDate            string `json:"deceased_date"`
	FacilityName            string `json:"facility_name"`
	FacilityCity            string `json:"facility_city"`
	FacilityState           string `json:"facility_state"`
	AdmissionDate           string `json:"admission_date"`
	AdmissionReason         string `json:"admission_reason"`
	ExpectedReturnDate      string `json:"expected_return_date"`
	AdditionalInfo          string `json:"additional_info"`
}
