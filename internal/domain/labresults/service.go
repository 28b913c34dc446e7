package labresults

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates and persists a new lab result owned by userID. Validation
// runs before any write.
func (s *Service) Add(ctx context.Context, userID string, lr *LabResult) error {
	lr.UserID = userID
	if lr.Date.IsZero() {
		lr.Date = time.Now()
	}
	clearIrrelevant(lr)
	if err := validate(lr); err != nil {
		return err
	}
	return s.repo.Create(ctx, lr)
}

func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*LabResult, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]*LabResult, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *Service) ListByType(ctx context.Context, userID, typ string, limit, offset int) ([]*LabResult, int, error) {
	if !validType(typ) {
		return nil, 0, fmt.Errorf("%w: unknown type %q", ErrValidation, typ)
	}
	return s.repo.ListByType(ctx, userID, typ, limit, offset)
}

// Update applies a partial update. The existing row is loaded first, which
// enforces ownership before any mutation; the merged record is re-validated
// when the type or a measurement field changes.
func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, in UpdateInput) (*LabResult, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	applyUpdate(&merged, in)

	if in.touchesMeasurements() {
		if in.Type != nil && *in.Type != existing.Type {
			clearIrrelevant(&merged)
		}
		if err := validate(&merged); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the result if it exists and belongs to userID. The ownership
// check runs before the delete; false means nothing was removed.
func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.repo.Delete(ctx, userID, id)
}

func applyUpdate(lr *LabResult, in UpdateInput) {
	if in.Type != nil {
		lr.Type = *in.Type
	}
	if in.Systolic != nil {
		lr.Systolic = in.Systolic
	}
	if in.Diastolic != nil {
		lr.Diastolic = in.Diastolic
	}
	if in.TotalCholesterol != nil {
		lr.TotalCholesterol = in.TotalCholesterol
	}
	if in.LDL != nil {
		lr.LDL = in.LDL
	}
	if in.HDL != nil {
		lr.HDL = in.HDL
	}
	if in.Triglycerides != nil {
		lr.Triglycerides = in.Triglycerides
	}
	if in.HbA1c != nil {
		lr.HbA1c = in.HbA1c
	}
	if in.Date != nil {
		lr.Date = *in.Date
	}
	if in.Notes != nil {
		lr.Notes = in.Notes
	}
}

// clearIrrelevant nulls measurement fields that do not belong to the record's
// type, keeping exactly the relevant fields populated.
func clearIrrelevant(lr *LabResult) {
	if lr.Type != TypeBloodPressure {
		lr.Systolic = nil
		lr.Diastolic = nil
	}
	if lr.Type != TypeCholesterol {
		lr.TotalCholesterol = nil
		lr.LDL = nil
		lr.HDL = nil
		lr.Triglycerides = nil
	}
	if lr.Type != TypeHbA1c {
		lr.HbA1c = nil
	}
}

func validType(typ string) bool {
	for _, t := range Types {
		if t == typ {
			return true
		}
	}
	return false
}

// Physiological bounds enforced at write time.
func validate(lr *LabResult) error {
	switch lr.Type {
	case TypeBloodPressure:
		if lr.Systolic == nil || lr.Diastolic == nil {
			return fmt.Errorf("%w: blood pressure requires systolic and diastolic", ErrValidation)
		}
		if *lr.Systolic < 50 || *lr.Systolic > 300 {
			return fmt.Errorf("%w: systolic must be between 50 and 300", ErrValidation)
		}
		if *lr.Diastolic < 30 || *lr.Diastolic > 150 {
			return fmt.Errorf("%w: diastolic must be between 30 and 150", ErrValidation)
		}
	case TypeCholesterol:
		if lr.TotalCholesterol == nil {
			return fmt.Errorf("%w: cholesterol requires total_cholesterol", ErrValidation)
		}
		if *lr.TotalCholesterol < 100 || *lr.TotalCholesterol > 500 {
			return fmt.Errorf("%w: total_cholesterol must be between 100 and 500", ErrValidation)
		}
		if lr.LDL != nil && (*lr.LDL < 50 || *lr.LDL > 400) {
			return fmt.Errorf("%w: ldl must be between 50 and 400", ErrValidation)
		}
		if lr.HDL != nil && (*lr.HDL < 10 || *lr.HDL > 100) {
			return fmt.Errorf("%w: hdl must be between 10 and 100", ErrValidation)
		}
		if lr.Triglycerides != nil && (*lr.Triglycerides < 50 || *lr.Triglycerides > 500) {
			return fmt.Errorf("%w: triglycerides must be between 50 and 500", ErrValidation)
		}
	case TypeHbA1c:
		if lr.HbA1c == nil {
			return fmt.Errorf("%w: hba1c requires a value", ErrValidation)
		}
		if *lr.HbA1c < 4 || *lr.HbA1c > 15 {
			return fmt.Errorf("%w: hba1c must be between 4 and 15", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrValidation, lr.Type)
	}
	return nil
}
