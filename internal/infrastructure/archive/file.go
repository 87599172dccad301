package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seatsync/internal/domain/entity"
	"seatsync/internal/domain/repository"
	appErrors "seatsync/internal/pkg/errors"
	"seatsync/internal/pkg/logger"
)

const (
	filePrefix    = "SeatReservation-"
	fileExtension = ".archive"
)

type fileRepository struct {
	dir string
	log logger.Logger
}

// NewFileRepository creates an ArchiveRepository storing one JSON file per
// account under dir. The directory is created if it does not exist.
func NewFileRepository(dir string, log logger.Logger) (repository.ArchiveRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating archive dir %s: %v", appErrors.ErrPersistence, dir, err)
	}
	return &fileRepository{dir: dir, log: log}, nil
}

func (r *fileRepository) path(username string) string {
	return filepath.Join(r.dir, filePrefix+username+fileExtension)
}

// Load reads the archive for the account. Missing and undecodable files both
// degrade to "no data" rather than failing the caller.
func (r *fileRepository) Load(ctx context.Context, username string) (*entity.ReservationArchive, error) {
	data, err := os.ReadFile(r.path(username))
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn(fmt.Sprintf("Failed to read archive for %s, treating as empty: %v", username, err))
		}
		return nil, nil
	}
	var archive entity.ReservationArchive
	if err := json.Unmarshal(data, &archive); err != nil {
		r.log.Warn(fmt.Sprintf("Corrupt archive for %s, treating as empty: %v", username, err))
		return nil, nil
	}
	return &archive, nil
}

// Save writes the archive atomically: encode to a temp file in the same
// directory, then rename over the target.
func (r *fileRepository) Save(ctx context.Context, username string, archive *entity.ReservationArchive) error {
	data, err := json.Marshal(archive)
	if err != nil {
		return fmt.Errorf("%w: encoding archive for %s: %v", appErrors.ErrPersistence, username, err)
	}
	target := r.path(username)
	tmp, err := os.CreateTemp(r.dir, filePrefix+"*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp archive for %s: %v", appErrors.ErrPersistence, username, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing archive for %s: %v", appErrors.ErrPersistence, username, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing archive for %s: %v", appErrors.ErrPersistence, username, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing archive for %s: %v", appErrors.ErrPersistence, username, err)
	}
	r.log.Debug(fmt.Sprintf("Saved archive for %s to %s", username, target))
	return nil
}

// Delete removes the account's archive file. A missing file is not an error.
func (r *fileRepository) Delete(ctx context.Context, username string) error {
	if err := os.Remove(r.path(username)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: deleting archive for %s: %v", appErrors.ErrPersistence, username, err)
	}
	return nil
}
