package service

import (
	"context"
	"fmt"
	"sync"

	"seatsync/internal/domain/entity"
	"seatsync/internal/domain/repository"
	"seatsync/internal/pkg/logger"
)

type storeService struct {
	archiveRepo repository.ArchiveRepository
	log         logger.Logger

	mu          sync.Mutex
	account     *entity.UserAccount
	reservation *entity.SeatReservation
	history     []*entity.SeatReservation

	// Invoked once per mutation of the current reservation, outside the lock.
	onChange func(ctx context.Context, reservation *entity.SeatReservation)
}

// NewStoreService creates a new instance of StoreService implementation.
// Note: the change handler needs to be set during wiring via SetChangeHandler.
func NewStoreService(archiveRepo repository.ArchiveRepository, log logger.Logger) StoreService {
	return &storeService{
		archiveRepo: archiveRepo,
		log:         log,
	}
}

// SetChangeHandler installs the hook invoked after each mutation of the
// current reservation.
func (s *storeService) SetChangeHandler(handler func(ctx context.Context, reservation *entity.SeatReservation)) {
	s.onChange = handler
}

func (s *storeService) Account() *entity.UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

func (s *storeService) Current() *entity.SeatReservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservation
}

func (s *storeService) History() []*entity.SeatReservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.SeatReservation, len(s.history))
	copy(out, s.history)
	return out
}

// fireChange runs the change handler with the value just applied. It runs
// outside the lock so handlers can read back through the store.
func (s *storeService) fireChange(ctx context.Context, reservation *entity.SeatReservation) {
	if s.onChange == nil {
		s.log.Warn("Reservation changed but no change handler is set")
		return
	}
	s.onChange(ctx, reservation)
}

// SetReservation replaces the current reservation and fires the change
// handler once.
func (s *storeService) SetReservation(ctx context.Context, reservation *entity.SeatReservation) {
	s.mu.Lock()
	s.reservation = reservation
	s.mu.Unlock()
	s.fireChange(ctx, reservation)
}

// Replace swaps both the history cache and the current reservation in one
// mutation.
func (s *storeService) Replace(ctx context.Context, reservation *entity.SeatReservation, history []*entity.SeatReservation) {
	s.mu.Lock()
	s.reservation = reservation
	s.history = history
	s.mu.Unlock()
	s.fireChange(ctx, reservation)
}

// Load restores the active account's archive, replacing in-memory state.
func (s *storeService) Load(ctx context.Context) {
	s.mu.Lock()
	account := s.account
	s.mu.Unlock()
	if account == nil {
		s.Replace(ctx, nil, nil)
		return
	}
	archive, err := s.archiveRepo.Load(ctx, account.Username)
	if err != nil || archive == nil {
		if err != nil {
			s.log.Warn(fmt.Sprintf("Failed to load archive for %s: %v", account.Username, err))
		}
		s.Replace(ctx, nil, nil)
		return
	}
	s.Replace(ctx, archive.Reservation, archive.History)
}

// Save persists the current state. No current reservation routes to delete.
func (s *storeService) Save(ctx context.Context) error {
	s.mu.Lock()
	account := s.account
	reservation := s.reservation
	history := make([]*entity.SeatReservation, len(s.history))
	copy(history, s.history)
	s.mu.Unlock()

	if account == nil {
		return nil
	}
	if reservation == nil {
		return s.Delete(ctx, account.Username)
	}
	archive := &entity.ReservationArchive{Reservation: reservation, History: history}
	if err := s.archiveRepo.Save(ctx, account.Username, archive); err != nil {
		// Soft failure: in-memory state stands, the write is only logged.
		s.log.Error(fmt.Sprintf("Failed to save archive for %s", account.Username), err)
		return err
	}
	return nil
}

// Delete removes the persisted archive for the given account.
func (s *storeService) Delete(ctx context.Context, username string) error {
	if err := s.archiveRepo.Delete(ctx, username); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete archive for %s", username), err)
		return err
	}
	return nil
}

// SwitchAccount clears in-memory state and loads the new account's archive.
// The old account's data never leaks into the new one: the clear applies
// before the load starts.
func (s *storeService) SwitchAccount(ctx context.Context, account *entity.UserAccount) {
	s.mu.Lock()
	s.account = account
	s.reservation = nil
	s.history = nil
	s.mu.Unlock()
	s.fireChange(ctx, nil)
	if account != nil {
		s.Load(ctx)
	}
}
