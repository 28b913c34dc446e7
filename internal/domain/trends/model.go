package trends

import "time"

// Point is one sample in a derived trend. Value carries the representative
// scalar for single-axis charting (systolic for blood pressure, total
// cholesterol, the hba1c value, or symptom severity); the metric-specific
// fields stay available for richer rendering.
type Point struct {
	Date             time.Time `json:"date"`
	Value            *float64  `json:"value,omitempty"`
	Systolic         *int      `json:"systolic,omitempty"`
	Diastolic        *int      `json:"diastolic,omitempty"`
	TotalCholesterol *float64  `json:"totalCholesterol,omitempty"`
	LDL              *float64  `json:"ldl,omitempty"`
	HDL              *float64  `json:"hdl,omitempty"`
	Triglycerides    *float64  `json:"triglycerides,omitempty"`
	HbA1c            *float64  `json:"hba1c,omitempty"`
	Severity         *int      `json:"severity,omitempty"`
	Duration         *string   `json:"duration,omitempty"`
}

// Trend is a derived, non-persisted time-ordered view of one metric type.
// Values are sorted ascending by date; a type with zero records never
// produces a trend.
type Trend struct {
	Type   string  `json:"type"`
	Values []Point `json:"values"`
}

// ContributingFactor names a partial score explaining part of a composite
// risk value on a given date.
type ContributingFactor struct {
	Factor       string  `json:"factor"`
	Contribution float64 `json:"contribution"`
}

// RiskPoint is one entry of the composite risk series.
type RiskPoint struct {
	Date                time.Time            `json:"date"`
	RiskScore           float64              `json:"riskScore"`
	ContributingFactors []ContributingFactor `json:"contributingFactors"`
}

// FilterOptions describes one trend query. All fields are optional; filters
// compose, producing their intersection.
type FilterOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	Metrics   []string
	TimeRange string
}

// Overview is the combined trends response.
type Overview struct {
	LabTrends     []Trend     `json:"labTrends"`
	SymptomTrends []Trend     `json:"symptomTrends"`
	CompositeRisk []RiskPoint `json:"compositeRisk,omitempty"`
}

// Comparative pairs the latest stored value per metric with the static
// reference ranges for client-side comparison.
type Comparative struct {
	Current map[string]float64      `json:"current"`
	Ranges  map[string]MetricRanges `json:"ranges"`
}
