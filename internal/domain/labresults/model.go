package labresults

import (
	"time"

	"github.com/google/uuid"
)

// Lab result types. The type discriminates which measurement fields are
// populated; all other measurement fields stay null.
const (
	TypeBloodPressure = "bloodPressure"
	TypeCholesterol   = "cholesterol"
	TypeHbA1c         = "hba1c"
)

// Types lists all supported lab result types.
var Types = []string{TypeBloodPressure, TypeCholesterol, TypeHbA1c}

// LabResult maps to the lab_result table. Date is the measurement event time,
// distinct from CreatedAt.
type LabResult struct {
	ID               uuid.UUID `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	Type             string    `db:"type" json:"type"`
	Systolic         *int      `db:"systolic" json:"systolic,omitempty"`
	Diastolic        *int      `db:"diastolic" json:"diastolic,omitempty"`
	TotalCholesterol *float64  `db:"total_cholesterol" json:"total_cholesterol,omitempty"`
	LDL              *float64  `db:"ldl" json:"ldl,omitempty"`
	HDL              *float64  `db:"hdl" json:"hdl,omitempty"`
	Triglycerides    *float64  `db:"triglycerides" json:"triglycerides,omitempty"`
	HbA1c            *float64  `db:"hba1c" json:"hba1c,omitempty"`
	Date             time.Time `db:"recorded_at" json:"date"`
	Notes            *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// UpdateInput is a partial update. Nil fields are left unchanged; the merged
// record is re-validated whenever the type or any measurement field changes.
type UpdateInput struct {
	Type             *string    `json:"type,omitempty"`
	Systolic         *int       `json:"systolic,omitempty"`
	Diastolic        *int       `json:"diastolic,omitempty"`
	TotalCholesterol *float64   `json:"total_cholesterol,omitempty"`
	LDL              *float64   `json:"ldl,omitempty"`
	HDL              *float64   `json:"hdl,omitempty"`
	Triglycerides    *float64   `json:"triglycerides,omitempty"`
	HbA1c            *float64   `json:"hba1c,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
}

// touchesMeasurements reports whether the input changes the type or any
// measurement value, which requires re-validating the merged record.
func (in UpdateInput) touchesMeasurements() bool {
	return in.Type != nil || in.Systolic != nil || in.Diastolic != nil ||
		in.TotalCholesterol != nil || in.LDL != nil || in.HDL != nil ||
		in.Triglycerides != nil || in.HbA1c != nil
}
