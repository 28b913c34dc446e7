package trends

import (
	"fmt"
	"time"
)

// ResolveTimeRange converts a relative window shorthand into a concrete
// start bound against now; the window always ends at now, so callers pass
// now as the end bound alongside. "all" and the empty string mean no bound.
func ResolveTimeRange(timeRange string, now time.Time) (*time.Time, error) {
	switch timeRange {
	case "", "all":
		return nil, nil
	case "7d":
		t := now.AddDate(0, 0, -7)
		return &t, nil
	case "30d":
		t := now.AddDate(0, 0, -30)
		return &t, nil
	case "90d":
		t := now.AddDate(0, 0, -90)
		return &t, nil
	case "1y":
		t := now.AddDate(-1, 0, 0)
		return &t, nil
	default:
		return nil, fmt.Errorf("unknown time range %q", timeRange)
	}
}

// FilterByDate keeps only values whose date falls within [start, end], both
// bounds optional and inclusive. A trend whose values all fall outside the
// window is dropped entirely.
func FilterByDate(ts []Trend, start, end *time.Time) []Trend {
	var out []Trend
	for _, t := range ts {
		var kept []Point
		for _, p := range t.Values {
			if start != nil && p.Date.Before(*start) {
				continue
			}
			if end != nil && p.Date.After(*end) {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) > 0 {
			out = append(out, Trend{Type: t.Type, Values: kept})
		}
	}
	return out
}

// FilterByMetrics keeps only trends whose type is in the allowlist. An empty
// allowlist keeps everything.
func FilterByMetrics(ts []Trend, metrics []string) []Trend {
	if len(metrics) == 0 {
		return ts
	}
	allowed := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		allowed[m] = true
	}
	var out []Trend
	for _, t := range ts {
		if allowed[t.Type] {
			out = append(out, t)
		}
	}
	return out
}
