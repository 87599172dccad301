package service

import (
	"context"

	"seatsync/internal/domain/entity"
)

// CompanionTransfer receives the latest reservation snapshot once per store
// mutation (a watch-companion surface in the original product).
type CompanionTransfer interface {
	Transfer(reservation *entity.SeatReservation)
}

// EventService wires external triggers to the store and the notification
// service in the required order.
type EventService interface {
	// AccountLogin authenticates against the seat service, makes the account
	// active and loads its archive. The alert set is recomputed through the
	// store mutation.
	AccountLogin(ctx context.Context, username, password string) (*entity.UserAccount, error)
	// AccountLogout deletes the active account's persisted archive and
	// session, then clears in-memory state. The archive delete completes
	// before any subsequent login can load a different account.
	AccountLogout(ctx context.Context) error
	// PreferencesChanged persists the new preferences and recomputes the
	// alert set. Globally disabled preferences cancel every pending alert.
	PreferencesChanged(ctx context.Context, prefs *entity.NotificationPreferences) error
	// Preferences returns the active account's preferences.
	Preferences(ctx context.Context) (*entity.NotificationPreferences, error)
}
