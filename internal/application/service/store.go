package service

import (
	"context"

	"seatsync/internal/domain/entity"
)

// StoreService owns the single current reservation and the ordered history
// list for the active account. Every mutation runs under one lock, and every
// replacement of the current reservation invokes the change handler exactly
// once, synchronously.
type StoreService interface {
	// Account returns the active account, nil when logged out.
	Account() *entity.UserAccount
	// Current returns the current reservation, nil when none.
	Current() *entity.SeatReservation
	// History returns the cached history list in server order.
	History() []*entity.SeatReservation
	// SetReservation replaces the current reservation and fires the change
	// handler once.
	SetReservation(ctx context.Context, reservation *entity.SeatReservation)
	// Replace swaps both the history cache and the current reservation in one
	// mutation, firing the change handler once.
	Replace(ctx context.Context, reservation *entity.SeatReservation, history []*entity.SeatReservation)
	// Load restores the active account's archive from disk, replacing the
	// in-memory state. Missing or unreadable data loads as empty.
	Load(ctx context.Context)
	// Save persists the in-memory state to the active account's archive. When
	// no current reservation exists the archive is deleted instead.
	Save(ctx context.Context) error
	// Delete removes the persisted archive for the given account.
	Delete(ctx context.Context, username string) error
	// SwitchAccount makes account the active one: in-memory state is cleared
	// and the new account's archive is loaded. A nil account just clears.
	SwitchAccount(ctx context.Context, account *entity.UserAccount)
	// SetChangeHandler installs the hook invoked after each mutation of the
	// current reservation. Must be called during wiring, before use.
	SetChangeHandler(handler func(ctx context.Context, reservation *entity.SeatReservation))
}
