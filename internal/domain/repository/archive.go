package repository

import (
	"context"

	"seatsync/internal/domain/entity"
)

// ArchiveRepository defines the interface for per-account reservation
// archive persistence.
type ArchiveRepository interface {
	// Load reads the archive for the account. A missing or undecodable file
	// is not an error: it yields (nil, nil), meaning "no data".
	Load(ctx context.Context, username string) (*entity.ReservationArchive, error)
	// Save writes the archive for the account atomically.
	Save(ctx context.Context, username string, archive *entity.ReservationArchive) error
	// Delete removes the account's archive. A missing file is not an error.
	Delete(ctx context.Context, username string) error
}
