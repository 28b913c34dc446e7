package trends

import (
	"context"
	"time"

	"github.com/cardiowell/cardiowell/internal/domain/labresults"
	"github.com/cardiowell/cardiowell/internal/domain/symptoms"
)

// Service builds trend views straight from the lab result and symptom
// stores. Trends are derived fresh on every read and never cached.
type Service struct {
	labs labresults.Repository
	syms symptoms.Repository
	now  func() time.Time
}

func NewService(labs labresults.Repository, syms symptoms.Repository) *Service {
	return &Service{labs: labs, syms: syms, now: time.Now}
}

// GetLabTrends partitions the user's lab results by type and emits one
// ascending series per non-empty partition.
func (s *Service) GetLabTrends(ctx context.Context, userID string) ([]Trend, error) {
	results, err := s.labs.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	byType := make(map[string][]Point)
	for _, lr := range results {
		byType[lr.Type] = append(byType[lr.Type], labPoint(lr))
	}

	var out []Trend
	for _, typ := range labresults.Types {
		if vals := byType[typ]; len(vals) > 0 {
			out = append(out, Trend{Type: typ, Values: vals})
		}
	}
	return out, nil
}

// GetSymptomTrends partitions the user's symptom entries by type, keeping
// types in order of first occurrence.
func (s *Service) GetSymptomTrends(ctx context.Context, userID string) ([]Trend, error) {
	entries, err := s.syms.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	byType := make(map[string][]Point)
	var order []string
	for _, sym := range entries {
		if _, ok := byType[sym.Type]; !ok {
			order = append(order, sym.Type)
		}
		byType[sym.Type] = append(byType[sym.Type], symptomPoint(sym))
	}

	var out []Trend
	for _, typ := range order {
		out = append(out, Trend{Type: typ, Values: byType[typ]})
	}
	return out, nil
}

// GetHealthTrends assembles both trend sets, applies the requested filters,
// and derives the composite risk series from the filtered result.
func (s *Service) GetHealthTrends(ctx context.Context, userID string, opts FilterOptions) (*Overview, error) {
	lab, err := s.GetLabTrends(ctx, userID)
	if err != nil {
		return nil, err
	}
	sym, err := s.GetSymptomTrends(ctx, userID)
	if err != nil {
		return nil, err
	}

	lab = FilterByDate(lab, opts.StartDate, opts.EndDate)
	sym = FilterByDate(sym, opts.StartDate, opts.EndDate)

	now := s.now()
	windowStart, err := ResolveTimeRange(opts.TimeRange, now)
	if err != nil {
		return nil, err
	}
	if windowStart != nil {
		lab = FilterByDate(lab, windowStart, &now)
		sym = FilterByDate(sym, windowStart, &now)
	}

	lab = FilterByMetrics(lab, opts.Metrics)
	sym = FilterByMetrics(sym, opts.Metrics)
	if lab == nil {
		lab = []Trend{}
	}
	if sym == nil {
		sym = []Trend{}
	}

	return &Overview{
		LabTrends:     lab,
		SymptomTrends: sym,
		CompositeRisk: CalculateCompositeRiskTrend(lab, sym),
	}, nil
}

// GetComparative returns the latest stored value per metric alongside the
// static reference ranges.
func (s *Service) GetComparative(ctx context.Context, userID string) (*Comparative, error) {
	current := make(map[string]float64)

	for _, typ := range labresults.Types {
		latest, err := s.labs.ListRecentByType(ctx, userID, typ, 1)
		if err != nil {
			return nil, err
		}
		if len(latest) == 0 {
			continue
		}
		lr := latest[0]
		switch typ {
		case labresults.TypeBloodPressure:
			if lr.Systolic != nil {
				current["systolic"] = float64(*lr.Systolic)
			}
			if lr.Diastolic != nil {
				current["diastolic"] = float64(*lr.Diastolic)
			}
		case labresults.TypeCholesterol:
			if lr.TotalCholesterol != nil {
				current["totalCholesterol"] = *lr.TotalCholesterol
			}
			if lr.LDL != nil {
				current["ldl"] = *lr.LDL
			}
			if lr.HDL != nil {
				current["hdl"] = *lr.HDL
			}
		case labresults.TypeHbA1c:
			if lr.HbA1c != nil {
				current["hba1c"] = *lr.HbA1c
			}
		}
	}

	return &Comparative{Current: current, Ranges: HealthMetricRanges()}, nil
}

func labPoint(lr *labresults.LabResult) Point {
	p := Point{
		Date:             lr.Date,
		Systolic:         lr.Systolic,
		Diastolic:        lr.Diastolic,
		TotalCholesterol: lr.TotalCholesterol,
		LDL:              lr.LDL,
		HDL:              lr.HDL,
		Triglycerides:    lr.Triglycerides,
		HbA1c:            lr.HbA1c,
	}
	switch lr.Type {
	case labresults.TypeBloodPressure:
		if lr.Systolic != nil {
			v := float64(*lr.Systolic)
			p.Value = &v
		}
	case labresults.TypeCholesterol:
		p.Value = lr.TotalCholesterol
	case labresults.TypeHbA1c:
		p.Value = lr.HbA1c
	}
	return p
}

func symptomPoint(sym *symptoms.Symptom) Point {
	p := Point{
		Date:     sym.Timestamp,
		Severity: sym.Severity,
		Duration: sym.Duration,
	}
	if sym.Severity != nil {
		v := float64(*sym.Severity)
		p.Value = &v
	}
	return p
}
