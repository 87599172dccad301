package service

import (
	"context"

	"seatsync/internal/domain/constant"
	"seatsync/internal/domain/entity"
)

// AlertSink is the consumed notification backend. Scheduling under an
// identifier that already has a pending alert replaces the prior one, which
// makes recomputation idempotent.
type AlertSink interface {
	Schedule(alert *entity.ScheduledAlert) error
	Cancel(ids ...constant.AlertID)
	CancelAll()
}

// NotificationService maps reservation state and preferences onto the
// pending-alert set. RecomputeAll is the single entry point after any
// relevant state change; it is idempotent.
type NotificationService interface {
	// RecomputeAll reconciles the whole pending-alert set: the daily
	// reserve-open alert plus every reservation-scoped alert. A globally
	// disabled preference set cancels everything.
	RecomputeAll(ctx context.Context, reservation *entity.SeatReservation, prefs *entity.NotificationPreferences)
	// Schedule reconciles only the reservation-scoped alerts (upcoming, end,
	// away expiry). The global enable flag is the caller's concern.
	Schedule(ctx context.Context, reservation *entity.SeatReservation, prefs *entity.NotificationPreferences)
	// CancelAll removes every pending alert without touching preferences.
	CancelAll()
}
