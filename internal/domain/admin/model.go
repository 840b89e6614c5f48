package admin

// Organization is a flat reference entity patients and nurses point at.
type Organization struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Address       string `bson:"address" json:"address"`
	ContactPerson string `bson:"contact_person" json:"contact_person"`
	ContactPhone  string `bson:"contact_phone" json:"contact_phone"`
	CreatedAt     string `bson:"created_at" json:"created_at"`
}

type OrganizationRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
}

// DayProgram is an adult day program patients may attend.
type DayProgram struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Address       string `bson:"address" json:"address"`
	OfficePhone   string `bson:"office_phone" json:"office_phone"`
	ContactPerson string `bson:"contact_person" json:"contact_person"`
	CreatedAt     string `bson:"created_at" json:"created_at"`
}

type DayProgramRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	OfficePhone   string `json:"office_phone"`
	ContactPerson string `json:"contact_person"`
}
