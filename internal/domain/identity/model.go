package identity

// Nurse is a clinician account. The first nurse ever registered becomes admin;
// every later registration defaults to staff. Email is unique across nurses.
type Nurse struct {
	ID                    string   `bson:"id" json:"id"`
	Email                 string   `bson:"email" json:"email"`
	PasswordHash          string   `bson:"password_hash" json:"-"`
	FullName              string   `bson:"full_name" json:"full_name"`
	Title                 string   `bson:"title" json:"title"`
	LicenseNumber         *string  `bson:"license_number,omitempty" json:"license_number,omitempty"`
	IsAdmin               bool     `bson:"is_admin" json:"is_admin"`
	AssignedPatients      []string `bson:"assigned_patients" json:"assigned_patients"`
	AssignedOrganizations []string `bson:"assigned_organizations" json:"assigned_organizations"`
	AllowedForms          []string `bson:"allowed_forms" json:"allowed_forms"`
	CreatedAt             string   `bson:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	FullName      string  `json:"full_name"`
	Title         string  `json:"title"`
	LicenseNumber *string `json:"license_number,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
	Nurse *Nurse `json:"nurse"`
}

// ProfileUpdate carries the admin-editable account fields. Nil fields are
// left untouched; an all-nil patch is rejected.
type ProfileUpdate struct {
	FullName      *string `json:"full_name,omitempty"`
	Title         *string `json:"title,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// AssignmentUpdate replaces a nurse's assignment sets wholesale.
type AssignmentUpdate struct {
	AssignedPatients      []string `json:"assigned_patients"`
	AssignedOrganizations []string `json:"assigned_organizations"`
	AllowedForms          []string `json:"allowed_forms"`
}
