package service

import (
	"context"
	"fmt"

	"seatsync/internal/domain/entity"
	"seatsync/internal/domain/repository"
	appErrors "seatsync/internal/pkg/errors"
	"seatsync/internal/pkg/logger"
)

type eventService struct {
	seat        SeatService
	store       StoreService
	notifier    NotificationService
	accountRepo repository.AccountRepository
	prefRepo    repository.PreferenceRepository
	companion   CompanionTransfer
	log         logger.Logger
}

// NewEventService creates a new instance of EventService implementation and
// installs itself as the store's change handler, so every reservation
// mutation recomputes the alert set and hands the snapshot to the companion
// transfer, in that order.
func NewEventService(
	seat SeatService,
	store StoreService,
	notifier NotificationService,
	accountRepo repository.AccountRepository,
	prefRepo repository.PreferenceRepository,
	companion CompanionTransfer,
	log logger.Logger,
) EventService {
	e := &eventService{
		seat:        seat,
		store:       store,
		notifier:    notifier,
		accountRepo: accountRepo,
		prefRepo:    prefRepo,
		companion:   companion,
		log:         log,
	}
	store.SetChangeHandler(e.handleReservationChanged)
	return e
}

// handleReservationChanged runs synchronously on every store mutation:
// recompute first, companion transfer second.
func (e *eventService) handleReservationChanged(ctx context.Context, reservation *entity.SeatReservation) {
	prefs, err := e.Preferences(ctx)
	if err != nil {
		// Leave the pending set untouched rather than recompute on bad input.
		e.log.Error("Failed to load preferences on reservation change", err)
	} else {
		e.notifier.RecomputeAll(ctx, reservation, prefs)
	}
	if e.companion != nil {
		e.companion.Transfer(reservation)
	}
}

// Preferences returns the active account's preferences. With no active
// account the defaults apply, so the reserve-open alert keeps working.
func (e *eventService) Preferences(ctx context.Context) (*entity.NotificationPreferences, error) {
	account := e.store.Account()
	if account == nil {
		return entity.DefaultPreferences(""), nil
	}
	return e.prefRepo.Find(ctx, account.Username)
}

// AccountLogin authenticates, activates the account and loads its archive.
func (e *eventService) AccountLogin(ctx context.Context, username, password string) (*entity.UserAccount, error) {
	token, err := e.seat.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	account := &entity.UserAccount{
		Username: username,
		Token:    token,
		Active:   true,
	}
	if err := e.accountRepo.Save(ctx, account); err != nil {
		// Session storage is soft; the login itself succeeded.
		e.log.Error(fmt.Sprintf("Failed to persist account %s", username), err)
	}
	e.store.SwitchAccount(ctx, account)
	e.log.Info(fmt.Sprintf("Account %s logged in", username))
	return account, nil
}

// AccountLogout deletes the persisted archive and session of the active
// account, then clears in-memory state.
func (e *eventService) AccountLogout(ctx context.Context) error {
	account := e.store.Account()
	if account == nil {
		return appErrors.ErrNoAccount
	}
	// The archive delete must complete before a subsequent login can load a
	// different account's data.
	if err := e.store.Delete(ctx, account.Username); err != nil {
		e.log.Warn(fmt.Sprintf("Failed to delete archive on logout: %v", err))
	}
	if err := e.accountRepo.Delete(ctx, account.Username); err != nil {
		e.log.Warn(fmt.Sprintf("Failed to delete account row on logout: %v", err))
	}
	e.seat.SetToken("")
	e.store.SwitchAccount(ctx, nil)
	e.log.Info(fmt.Sprintf("Account %s logged out", account.Username))
	return nil
}

// PreferencesChanged persists the new preferences and recomputes the alert
// set from current store state.
func (e *eventService) PreferencesChanged(ctx context.Context, prefs *entity.NotificationPreferences) error {
	account := e.store.Account()
	if account == nil {
		return appErrors.ErrNoAccount
	}
	prefs.Username = account.Username
	if err := e.prefRepo.Save(ctx, prefs); err != nil {
		return err
	}
	e.notifier.RecomputeAll(ctx, e.store.Current(), prefs)
	return nil
}
