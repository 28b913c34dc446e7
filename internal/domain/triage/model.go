package triage

import "time"

// Alert severities.
const (
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// Fixed recommendation strings, keyed by severity.
const (
	RecommendationDanger  = "Seek immediate medical attention"
	RecommendationWarning = "Contact your healthcare provider"
)

// Alert is an immediate, ungated notice computed from the most recent raw
// readings. Alerts are never persisted; TriggeredAt marks when the alert was
// surfaced, not when the underlying condition occurred.
type Alert struct {
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Recommendation string    `json:"recommendation"`
	TriggeredAt    time.Time `json:"triggeredAt"`
}
