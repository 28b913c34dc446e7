package labresults

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists lab results. Every read and mutation is scoped to the
// owning user; a row owned by another user behaves as if it did not exist.
type Repository interface {
	Create(ctx context.Context, lr *LabResult) error
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*LabResult, error)
	List(ctx context.Context, userID string, limit, offset int) ([]*LabResult, int, error)
	ListByType(ctx context.Context, userID, typ string, limit, offset int) ([]*LabResult, int, error)
	// ListAll returns every result for the user ordered ascending by event date.
	ListAll(ctx context.Context, userID string) ([]*LabResult, error)
	// ListRecentByType returns up to limit results of one type, newest first.
	ListRecentByType(ctx context.Context, userID, typ string, limit int) ([]*LabResult, error)
	Update(ctx context.Context, lr *LabResult) error
	Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error)
}
