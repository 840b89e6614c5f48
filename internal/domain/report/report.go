// Package report builds the monthly visit summary. The report is scoped to
// the requesting nurse's own authored visits; admins get no wider view here.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/nursemed/homecare/internal/domain/visit"
	"github.com/nursemed/homecare/internal/platform/auth"
)

// Request selects a month plus optional filters.
type Request struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	PatientID    string `json:"patient_id,omitempty"`
	Organization string `json:"organization,omitempty"`
	VisitType    string `json:"visit_type,omitempty"`
}

// Summary is the per-month tally.
type Summary struct {
	Period         string         `json:"period"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	TotalVisits    int            `json:"total_visits"`
	NurseVisits    int            `json:"nurse_visits"`
	VitalsOnly     int            `json:"vitals_only"`
	DailyNotes     int            `json:"daily_notes"`
	UniquePatients int            `json:"unique_patients"`
	ByOrganization map[string]int `json:"by_organization"`
}

// Result carries the summary, the raw visits, and the visits grouped by
// type. Unrecognized visit types fold into the nurse_visit bucket.
type Result struct {
	Summary      Summary                   `json:"summary"`
	Visits       []*visit.Visit            `json:"visits"`
	VisitsByType map[string][]*visit.Visit `json:"visits_by_type"`
}

// VisitSource is the slice of the visit repository the aggregator reads.
// Satisfied by visit.Repository.
type VisitSource interface {
	ListForReport(ctx context.Context, filter visit.ReportFilter) ([]*visit.Visit, error)
}

// PatientNameSource resolves patient ids to display names for enrichment.
type PatientNameSource interface {
	Names(ctx context.Context, ids []string) (map[string]string, error)
}

type Service struct {
	visits   VisitSource
	patients PatientNameSource
	now      func() time.Time
}

func NewService(visits VisitSource, patients PatientNameSource) *Service {
	return &Service{visits: visits, patients: patients, now: time.Now}
}

var (
	ErrInvalidMonth = fmt.Errorf("month must be between 1 and 12")
)

// Monthly builds the report for one calendar month of the requesting
// nurse's visits. The range runs from the first to the last day of the
// month, clipped to today when the month is the current one.
func (s *Service) Monthly(ctx context.Context, actor *auth.Identity, req Request) (*Result, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, ErrInvalidMonth
	}

	startDate := fmt.Sprintf("%04d-%02d-01", req.Year, req.Month)
	endDate := fmt.Sprintf("%04d-%02d-%02d", req.Year, req.Month, lastDayOfMonth(req.Year, req.Month))

	today := s.now().UTC()
	if req.Year == today.Year() && time.Month(req.Month) == today.Month() {
		endDate = today.Format("2006-01-02")
	}

	visits, err := s.visits.ListForReport(ctx, visit.ReportFilter{
		NurseID:      actor.ID,
		StartDate:    startDate,
		EndDate:      endDate + "T23:59:59",
		PatientID:    req.PatientID,
		Organization: req.Organization,
		VisitType:    req.VisitType,
	})
	if err != nil {
		return nil, err
	}

	patientIDs := uniquePatientIDs(visits)
	names, err := s.patients.Names(ctx, patientIDs)
	if err != nil {
		return nil, err
	}

	byType := map[string][]*visit.Visit{
		visit.TypeNurseVisit: {},
		visit.TypeVitalsOnly: {},
		visit.TypeDailyNote:  {},
	}
	byOrg := map[string]int{}

	for _, v := range visits {
		name, ok := names[v.PatientID]
		if !ok {
			name = "Unknown"
		}
		v.PatientName = name

		bucket := v.VisitType
		if _, known := byType[bucket]; !known {
			bucket = visit.TypeNurseVisit
		}
		byType[bucket] = append(byType[bucket], v)

		org := v.Organization
		if org == "" {
			org = "Unspecified"
		}
		byOrg[org]++
	}

	return &Result{
		Summary: Summary{
			Period:         fmt.Sprintf("%04d-%02d", req.Year, req.Month),
			StartDate:      startDate,
			EndDate:        endDate,
			TotalVisits:    len(visits),
			NurseVisits:    len(byType[visit.TypeNurseVisit]),
			VitalsOnly:     len(byType[visit.TypeVitalsOnly]),
			DailyNotes:     len(byType[visit.TypeDailyNote]),
			UniquePatients: len(patientIDs),
			ByOrganization: byOrg,
		},
		Visits:       visits,
		VisitsByType: byType,
	}, nil
}

func lastDayOfMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func uniquePatientIDs(visits []*visit.Visit) []string {
	seen := map[string]bool{}
	var ids []string
	for _, v := range visits {
		if !seen[v.PatientID] {
			seen[v.PatientID] = true
			ids = append(ids, v.PatientID)
		}
	}
	return ids
}
