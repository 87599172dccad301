package sqlite

import (
	"context"
	"errors"
	"fmt"

	"seatsync/internal/domain/entity"
	"seatsync/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new instance of PreferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// Find retrieves the preferences for an account. A missing row yields the
// defaults instead of an error.
func (r *preferenceRepository) Find(ctx context.Context, username string) (*entity.NotificationPreferences, error) {
	var prefs entity.NotificationPreferences
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.DefaultPreferences(username), nil
		}
		return nil, fmt.Errorf("failed to find preferences for %s: %w", username, err)
	}
	return &prefs, nil
}

// Save upserts the preferences for an account.
func (r *preferenceRepository) Save(ctx context.Context, prefs *entity.NotificationPreferences) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(prefs).Error; err != nil {
		return fmt.Errorf("failed to save preferences for %s: %w", prefs.Username, err)
	}
	return nil
}

// Delete removes the preferences row for an account.
func (r *preferenceRepository) Delete(ctx context.Context, username string) error {
	if err := r.db.WithContext(ctx).Where("username = ?", username).Delete(&entity.NotificationPreferences{}).Error; err != nil {
		return fmt.Errorf("failed to delete preferences for %s: %w", username, err)
	}
	return nil
}
