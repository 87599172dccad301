package service

import (
	"context"

	"seatsync/internal/domain/entity"
)

// SeatService is the injected transport to the remote seat service. Errors
// it returns follow the pkg/errors taxonomy: ErrSeatAPI for transport or
// decode failures, ErrRequireLogin for an expired session, *FailedError for
// server-reported business errors.
type SeatService interface {
	// Login establishes a session and returns its token.
	Login(ctx context.Context, username, password string) (string, error)
	// SetToken installs a previously established session token.
	SetToken(token string)
	// FetchHistory fetches one page of reservation history in server order.
	// Pages start at 1.
	FetchHistory(ctx context.Context, page int) ([]*entity.SeatReservation, error)
	// Cancel requests cancellation of a reservation by ID.
	Cancel(ctx context.Context, reservationID int) error
}

// SyncService reconciles the store with the remote seat service. It never
// retries: retry policy belongs to the caller.
type SyncService interface {
	// Refresh fetches page 1 of the history, replaces the cached history, and
	// selects the current reservation as the first entry in fetch order that
	// is not history (nil when none qualifies). The result is persisted.
	Refresh(ctx context.Context) (*entity.SeatReservation, error)
	// Cancel cancels the current reservation remotely, then clears it and its
	// persisted record. With no current reservation it succeeds without a
	// network call. On a remote failure the state is left untouched.
	Cancel(ctx context.Context) error
	// FetchPage fetches one page of history. Page 1 re-runs the same
	// current-reservation selection as Refresh; later pages leave the cache
	// alone.
	FetchPage(ctx context.Context, page int) ([]*entity.SeatReservation, error)
}
