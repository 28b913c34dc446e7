package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, userID string, m *Medication) error {
	m.UserID = userID
	if err := validate(m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*Medication, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]*Medication, int, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

func (s *Service) ListActive(ctx context.Context, userID string) ([]*Medication, error) {
	return s.repo.ListActive(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID string, id uuid.UUID, in UpdateInput) (*Medication, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Dosage != nil {
		merged.Dosage = in.Dosage
	}
	if in.Frequency != nil {
		merged.Frequency = in.Frequency
	}
	if in.StartDate != nil {
		merged.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		merged.EndDate = in.EndDate
	}
	if in.Notes != nil {
		merged.Notes = in.Notes
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

func validate(m *Medication) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if m.StartDate != nil && m.EndDate != nil && m.EndDate.Before(*m.StartDate) {
		return fmt.Errorf("%w: end_date must not precede start_date", ErrValidation)
	}
	return nil
}
