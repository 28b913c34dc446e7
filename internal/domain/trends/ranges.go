package trends

// Band is one reference interval. A nil bound is open-ended.
type Band struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// MetricRanges groups the reference bands for one metric.
type MetricRanges struct {
	Optimal  Band   `json:"optimal"`
	Normal   Band   `json:"normal"`
	HighRisk Band   `json:"highRisk"`
	Unit     string `json:"unit"`
}

func f(v float64) *float64 { return &v }

// HealthMetricRanges returns the static clinical reference ranges. The
// boundary values are a published contract and must not drift.
func HealthMetricRanges() map[string]MetricRanges {
	return map[string]MetricRanges{
		"systolic": {
			Optimal:  Band{Max: f(120)},
			Normal:   Band{Min: f(120), Max: f(139)},
			HighRisk: Band{Min: f(140)},
			Unit:     "mmHg",
		},
		"diastolic": {
			Optimal:  Band{Max: f(80)},
			Normal:   Band{Min: f(80), Max: f(89)},
			HighRisk: Band{Min: f(90)},
			Unit:     "mmHg",
		},
		"totalCholesterol": {
			Optimal:  Band{Max: f(200)},
			Normal:   Band{Min: f(200), Max: f(239)},
			HighRisk: Band{Min: f(240)},
			Unit:     "mg/dL",
		},
		"ldl": {
			Optimal:  Band{Max: f(100)},
			Normal:   Band{Min: f(100), Max: f(129)},
			HighRisk: Band{Min: f(130)},
			Unit:     "mg/dL",
		},
		"hdl": {
			Optimal:  Band{Min: f(60)},
			Normal:   Band{Min: f(40), Max: f(59)},
			HighRisk: Band{Max: f(40)},
			Unit:     "mg/dL",
		},
		"hba1c": {
			Optimal:  Band{Max: f(5.7)},
			Normal:   Band{Min: f(5.7), Max: f(6.4)},
			HighRisk: Band{Min: f(6.5)},
			Unit:     "%",
		},
	}
}
