package symptoms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates and persists a new symptom entry owned by userID.
func (s *Service) Add(ctx context.Context, userID string, sym *Symptom) error {
	sym.UserID = userID
	if sym.Timestamp.IsZero() {
		sym.Timestamp = time.Now()
	}
	if err := validate(sym); err != nil {
		return err
	}
	return s.repo.Create(ctx, sym)
}

func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*Symptom, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]*Symptom, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *Service) ListByType(ctx context.Context, userID, typ string, limit, offset int) ([]*Symptom, int, error) {
	return s.repo.ListByType(ctx, userID, typ, limit, offset)
}

// Update applies a partial update. Loading the existing row first enforces
// ownership before any mutation.
func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, in UpdateInput) (*Symptom, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if in.Type != nil {
		merged.Type = *in.Type
	}
	if in.Severity != nil {
		merged.Severity = in.Severity
	}
	if in.Duration != nil {
		merged.Duration = in.Duration
	}
	if in.Notes != nil {
		merged.Notes = in.Notes
	}
	if in.Timestamp != nil {
		merged.Timestamp = *in.Timestamp
	}

	if err := validate(&merged); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.repo.Delete(ctx, userID, id)
}

func validate(sym *Symptom) error {
	if strings.TrimSpace(sym.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	if sym.Severity != nil && (*sym.Severity < 1 || *sym.Severity > 10) {
		return fmt.Errorf("%w: severity must be between 1 and 10", ErrValidation)
	}
	return nil
}
