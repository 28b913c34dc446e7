package symptoms

import (
	"time"

	"github.com/google/uuid"
)

// Symptom types the triage rules recognize. Entries are free-form strings;
// these constants only name the ones with special handling downstream.
const (
	TypeChestPain         = "chest_pain"
	TypeShortnessOfBreath = "shortness_of_breath"
	TypePalpitations      = "palpitations"
	TypeDizziness         = "dizziness"
	TypeFatigue           = "fatigue"
)

// Symptom maps to the symptom table. Timestamp is when the symptom occurred,
// distinct from CreatedAt.
type Symptom struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	Severity  *int      `db:"severity" json:"severity,omitempty"`
	Duration  *string   `db:"duration" json:"duration,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	Timestamp time.Time `db:"occurred_at" json:"timestamp"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Type      *string    `json:"type,omitempty"`
	Severity  *int       `json:"severity,omitempty"`
	Duration  *string    `json:"duration,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
