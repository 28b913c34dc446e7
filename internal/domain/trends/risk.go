package trends

import (
	"sort"
	"time"
)

// Scoring constants. These thresholds, multipliers, and caps are a behavioral
// contract with existing clients and must not be tuned casually.
const (
	bpSystolicThreshold  = 140
	bpDiastolicThreshold = 90
	bpSystolicWeight     = 0.5
	bpDiastolicWeight    = 1.0
	bpCap                = 30

	cholesterolThreshold = 200
	cholesterolWeight    = 0.2
	cholesterolCap       = 20

	severityWeight = 1.5
	severityCap    = 15

	riskFloor   = 0
	riskCeiling = 100
)

// SameInstant reports whether two sample dates refer to the same reading
// time. The composite risk join matches on exact stored-timestamp equality;
// keeping the comparison behind one function lets the join strategy change
// (say, to day-level bucketing) without touching the scoring rules.
func SameInstant(a, b time.Time) bool {
	return a.Equal(b)
}

// CalculateCompositeRiskTrend fuses lab and symptom trends into one
// time-aligned risk series. The output has one entry per distinct date seen
// in either input, even when no rule fires on that date. Returns nil when
// the inputs hold no values at all.
func CalculateCompositeRiskTrend(labTrends, symptomTrends []Trend) []RiskPoint {
	dates := unionDates(labTrends, symptomTrends)
	if len(dates) == 0 {
		return nil
	}

	out := make([]RiskPoint, 0, len(dates))
	for _, d := range dates {
		score := 0.0
		factors := []ContributingFactor{}

		if p := pointAt(labTrends, "bloodPressure", d); p != nil && p.Systolic != nil && p.Diastolic != nil {
			sys, dia := float64(*p.Systolic), float64(*p.Diastolic)
			if sys > bpSystolicThreshold || dia > bpDiastolicThreshold {
				// The raw sum is deliberately not clamped per term; a reading
				// that trips only one threshold can contribute less than its
				// triggering term alone. Matching historical scoring output
				// takes precedence here.
				raw := (sys-bpSystolicThreshold)*bpSystolicWeight + (dia-bpDiastolicThreshold)*bpDiastolicWeight
				c := min(bpCap, raw)
				score += c
				factors = append(factors, ContributingFactor{Factor: "High Blood Pressure", Contribution: c})
			}
		}

		if p := pointAt(labTrends, "cholesterol", d); p != nil && p.TotalCholesterol != nil {
			if *p.TotalCholesterol > cholesterolThreshold {
				c := min(cholesterolCap, (*p.TotalCholesterol-cholesterolThreshold)*cholesterolWeight)
				score += c
				factors = append(factors, ContributingFactor{Factor: "High Cholesterol", Contribution: c})
			}
		}

		for _, t := range symptomTrends {
			for _, p := range t.Values {
				if SameInstant(p.Date, d) && p.Severity != nil {
					c := min(severityCap, float64(*p.Severity)*severityWeight)
					score += c
					factors = append(factors, ContributingFactor{Factor: "Severe " + t.Type, Contribution: c})
					break
				}
			}
		}

		if score < riskFloor {
			score = riskFloor
		}
		if score > riskCeiling {
			score = riskCeiling
		}
		out = append(out, RiskPoint{Date: d, RiskScore: score, ContributingFactors: factors})
	}
	return out
}

// unionDates collects every distinct sample date across both trend sets,
// deduplicated by exact timestamp equality and sorted ascending.
func unionDates(labTrends, symptomTrends []Trend) []time.Time {
	seen := make(map[int64]bool)
	var dates []time.Time
	add := func(d time.Time) {
		key := d.UnixNano()
		if seen[key] {
			return
		}
		seen[key] = true
		dates = append(dates, d)
	}
	for _, t := range labTrends {
		for _, p := range t.Values {
			add(p.Date)
		}
	}
	for _, t := range symptomTrends {
		for _, p := range t.Values {
			add(p.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// pointAt finds the value at exactly date d in the trend of the given type.
func pointAt(ts []Trend, typ string, d time.Time) *Point {
	for _, t := range ts {
		if t.Type != typ {
			continue
		}
		for i := range t.Values {
			if SameInstant(t.Values[i].Date, d) {
				return &t.Values[i]
			}
		}
	}
	return nil
}
