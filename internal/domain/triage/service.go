package triage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cardiowell/cardiowell/internal/domain/labresults"
	"github.com/cardiowell/cardiowell/internal/domain/symptoms"
)

// Thresholds for the rule table. Like the risk scoring constants, these are
// a behavioral contract.
const (
	bpDangerSystolic  = 180
	bpWarningSystolic = 140
	bpWindow          = 3

	cholesterolWarning = 240
	hba1cWarning       = 8

	chestPainDanger         = 7
	shortnessOfBreathDanger = 8
)

// Service evaluates triage rules against the latest raw readings. Stateless:
// every call recomputes from the stores, and repeated calls against
// unchanged data re-emit the same alerts.
type Service struct {
	labs labresults.Repository
	syms symptoms.Repository
	now  func() time.Time
}

func NewService(labs labresults.Repository, syms symptoms.Repository) *Service {
	return &Service{labs: labs, syms: syms, now: time.Now}
}

// CheckForAlerts runs every rule independently and appends all hits to one
// list; multiple alerts may fire simultaneously.
func (s *Service) CheckForAlerts(ctx context.Context, userID string) ([]Alert, error) {
	now := s.now()
	var alerts []Alert

	bp, err := s.labs.ListRecentByType(ctx, userID, labresults.TypeBloodPressure, bpWindow)
	if err != nil {
		return nil, err
	}
	for _, r := range bp {
		if r.Systolic == nil || r.Diastolic == nil {
			continue
		}
		switch {
		case *r.Systolic >= bpDangerSystolic:
			alerts = append(alerts, Alert{
				Type:           SeverityDanger,
				Message:        fmt.Sprintf("High blood pressure detected: %d/%d mmHg", *r.Systolic, *r.Diastolic),
				Recommendation: RecommendationDanger,
				TriggeredAt:    now,
			})
		case *r.Systolic >= bpWarningSystolic:
			alerts = append(alerts, Alert{
				Type:           SeverityWarning,
				Message:        fmt.Sprintf("Elevated blood pressure detected: %d/%d mmHg", *r.Systolic, *r.Diastolic),
				Recommendation: RecommendationWarning,
				TriggeredAt:    now,
			})
		}
	}

	chol, err := s.labs.ListRecentByType(ctx, userID, labresults.TypeCholesterol, 1)
	if err != nil {
		return nil, err
	}
	if len(chol) > 0 && chol[0].TotalCholesterol != nil && *chol[0].TotalCholesterol >= cholesterolWarning {
		alerts = append(alerts, Alert{
			Type:           SeverityWarning,
			Message:        fmt.Sprintf("High cholesterol detected: %s mg/dL", trimFloat(*chol[0].TotalCholesterol)),
			Recommendation: RecommendationWarning,
			TriggeredAt:    now,
		})
	}

	hba1c, err := s.labs.ListRecentByType(ctx, userID, labresults.TypeHbA1c, 1)
	if err != nil {
		return nil, err
	}
	if len(hba1c) > 0 && hba1c[0].HbA1c != nil && *hba1c[0].HbA1c >= hba1cWarning {
		alerts = append(alerts, Alert{
			Type:           SeverityWarning,
			Message:        fmt.Sprintf("High HbA1c detected: %s%%", trimFloat(*hba1c[0].HbA1c)),
			Recommendation: RecommendationWarning,
			TriggeredAt:    now,
		})
	}

	chestPain, err := s.syms.ListRecentByType(ctx, userID, symptoms.TypeChestPain, 1)
	if err != nil {
		return nil, err
	}
	if len(chestPain) > 0 && chestPain[0].Severity != nil && *chestPain[0].Severity >= chestPainDanger {
		alerts = append(alerts, Alert{
			Type:           SeverityDanger,
			Message:        "Severe chest pain reported",
			Recommendation: RecommendationDanger,
			TriggeredAt:    now,
		})
	}

	breath, err := s.syms.ListRecentByType(ctx, userID, symptoms.TypeShortnessOfBreath, 1)
	if err != nil {
		return nil, err
	}
	if len(breath) > 0 && breath[0].Severity != nil && *breath[0].Severity >= shortnessOfBreathDanger {
		alerts = append(alerts, Alert{
			Type:           SeverityDanger,
			Message:        "Severe shortness of breath reported",
			Recommendation: RecommendationDanger,
			TriggeredAt:    now,
		})
	}

	return alerts, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
