package medications

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists medications, always scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*Medication, error)
	List(ctx context.Context, userID string, limit, offset int) ([]*Medication, int, error)
	// ListActive returns medications with no end date or an end date in the future.
	ListActive(ctx context.Context, userID string) ([]*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error)
}
