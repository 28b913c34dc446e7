package symptoms

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists symptom entries, always scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, s *Symptom) error
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*Symptom, error)
	List(ctx context.Context, userID string, limit, offset int) ([]*Symptom, int, error)
	ListByType(ctx context.Context, userID, typ string, limit, offset int) ([]*Symptom, int, error)
	// ListAll returns every entry for the user ordered ascending by occurrence time.
	ListAll(ctx context.Context, userID string) ([]*Symptom, error)
	// ListRecentByType returns up to limit entries of one type, newest first.
	ListRecentByType(ctx context.Context, userID, typ string, limit int) ([]*Symptom, error)
	Update(ctx context.Context, s *Symptom) error
	Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error)
}
