package repository

import (
	"context"

	"github.com/Tellwe/obedir-qr-codes/internal/model"

	"github.com/google/uuid"
)

// IndexRepository defines data access for the local passport index.
type IndexRepository interface {
	// Upsert inserts the entry or refreshes its name, SKU and category.
	// Status, scan count and creation time of an existing entry are kept.
	// The stored row is written back into entry.
	Upsert(ctx context.Context, entry *model.IndexEntry) error

	// GetByID retrieves one entry. It returns nil, nil when the entry does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.IndexEntry, error)

	// GetByIDs retrieves the entries that exist among ids.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.IndexEntry, error)

	// SetStatus changes the status of an entry.
	// Returns model.ErrPassportNotFound if the entry does not exist.
	SetStatus(ctx context.Context, id uuid.UUID, status model.PassportStatus) error

	// IncrementScans adds one public view to the entry, if it exists.
	IncrementScans(ctx context.Context, id uuid.UUID) error

	// Delete removes an entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
