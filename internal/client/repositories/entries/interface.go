package entries

import (
	"context"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
)

// Repository persists the offline mirror of entries.
type Repository interface {
	// ReplaceAll atomically swaps the mirrored set for entries.
	ReplaceAll(ctx context.Context, entries []models.Entry) error

	// Upsert inserts an entry or updates the one with the same id.
	Upsert(ctx context.Context, entry models.Entry) error

	// DeleteByID removes an entry. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id string) error

	// GetAll returns all mirrored entries, newest first.
	GetAll(ctx context.Context) ([]models.Entry, error)
}
