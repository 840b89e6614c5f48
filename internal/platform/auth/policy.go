package auth

// Centralized authorization policy. Every handler consults these decision
// functions instead of doing inline role checks, so the access rules stay in
// one auditable place.
//
// The read and write rules are deliberately asymmetric: organization
// membership grants read access to a patient but never write access. Record
// mutation (visits, interventions, unable-to-contact) is restricted to the
// authoring nurse with no admin override, preserving audit integrity.

// ReasonCode classifies a denial for callers that branch on it. The Reason
// string is for humans and is never matched on.
type ReasonCode int

const (
	ReasonNone ReasonCode = iota
	ReasonNotAssigned
	ReasonNotAuthor
	ReasonNotAdmin
	ReasonSelfDemotion
)

// Decision is the result of a policy check.
type Decision struct {
	Allowed bool
	Code    ReasonCode
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(code ReasonCode, reason string) Decision {
	return Decision{Allowed: false, Code: code, Reason: reason}
}

// PatientScope is the slice of patient state the policy needs.
type PatientScope struct {
	CreatorID      string
	AssignedNurses []string
	Organization   string
}

// CanReadPatient: admin, assigned nurse, or organization-level access.
func CanReadPatient(id *Identity, scope PatientScope) Decision {
	if id.Admin {
		return Allow()
	}
	if contains(scope.AssignedNurses, id.ID) {
		return Allow()
	}
	if scope.Organization != "" && contains(id.AssignedOrganizations, scope.Organization) {
		return Allow()
	}
	return Deny(ReasonNotAssigned, "not assigned to this patient")
}

// CanWritePatientRecord: admin or assigned nurse. Organization membership
// alone does not grant write access.
func CanWritePatientRecord(id *Identity, scope PatientScope) Decision {
	if id.Admin {
		return Allow()
	}
	if contains(scope.AssignedNurses, id.ID) {
		return Allow()
	}
	return Deny(ReasonNotAssigned, "not assigned to this patient")
}

// CanMutateOwnRecord: only the authoring nurse may update or delete a
// patient-scoped record. No admin override.
func CanMutateOwnRecord(id *Identity, authorID string) Decision {
	if id.ID == authorID {
		return Allow()
	}
	return Deny(ReasonNotAuthor, "record belongs to another nurse")
}

// CanAdminister gates admin-only operations: patient create/delete,
// organization and day-program CRUD, promote/demote, assignment edits.
func CanAdminister(id *Identity) Decision {
	if id.Admin {
		return Allow()
	}
	return Deny(ReasonNotAdmin, "admin access required")
}

// CanDemote: admin-only, and self-demotion is rejected outright.
func CanDemote(id *Identity, targetID string) Decision {
	if !id.Admin {
		return Deny(ReasonNotAdmin, "admin access required")
	}
	if id.ID == targetID {
		return Deny(ReasonSelfDemotion, "cannot demote yourself")
	}
	return Allow()
}

// IsAssigned reports whether the nurse counts as assigned to the patient for
// display purposes. Admins are always considered assigned.
func IsAssigned(id *Identity, assignedNurses []string) bool {
	return id.Admin || contains(assignedNurses, id.ID)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
