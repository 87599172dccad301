package repository

import (
	"context"

	"seatsync/internal/domain/entity"
)

// AccountRepository defines the interface for account session persistence.
type AccountRepository interface {
	// FindActive retrieves the currently logged-in account, or nil when no
	// account is active.
	FindActive(ctx context.Context) (*entity.UserAccount, error)
	// Save upserts an account row.
	Save(ctx context.Context, account *entity.UserAccount) error
	// Delete removes an account row by username.
	Delete(ctx context.Context, username string) error
}

// PreferenceRepository defines the interface for notification preference
// persistence.
type PreferenceRepository interface {
	// Find retrieves the preferences for an account. A missing row yields
	// the defaults (everything enabled).
	Find(ctx context.Context, username string) (*entity.NotificationPreferences, error)
	// Save upserts the preferences for an account.
	Save(ctx context.Context, prefs *entity.NotificationPreferences) error
	// Delete removes the preferences row for an account.
	Delete(ctx context.Context, username string) error
}
