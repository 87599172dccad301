package service

import (
	"context"
	"fmt"

	"seatsync/internal/domain/entity"
	"seatsync/internal/pkg/clock"
	"seatsync/internal/pkg/logger"
)

type syncService struct {
	seat  SeatService
	store StoreService
	clock clock.Clock
	log   logger.Logger
}

// NewSyncService creates a new instance of SyncService implementation.
func NewSyncService(seat SeatService, store StoreService, clk clock.Clock, log logger.Logger) SyncService {
	return &syncService{
		seat:  seat,
		store: store,
		clock: clk,
		log:   log,
	}
}

// selectCurrent picks the first entry in fetch order that is not history.
func (s *syncService) selectCurrent(reservations []*entity.SeatReservation) *entity.SeatReservation {
	now := s.clock.Now()
	for _, reservation := range reservations {
		if !reservation.IsHistory(now) {
			return reservation
		}
	}
	return nil
}

// Refresh fetches page 1, replaces the cache, selects the current
// reservation and persists the result.
func (s *syncService) Refresh(ctx context.Context) (*entity.SeatReservation, error) {
	reservations, err := s.seat.FetchHistory(ctx, 1)
	if err != nil {
		return nil, err
	}
	current := s.selectCurrent(reservations)
	s.store.Replace(ctx, current, reservations)
	if err := s.store.Save(ctx); err != nil {
		// Persistence is soft: the refreshed state stays in memory.
		s.log.Warn(fmt.Sprintf("Refresh succeeded but archive save failed: %v", err))
	}
	if current != nil {
		s.log.Info(fmt.Sprintf("Refreshed reservation %d at %s", current.ID, current.RawLocation))
	} else {
		s.log.Info("Refreshed: no current reservation")
	}
	return current, nil
}

// Cancel cancels the current reservation remotely, then clears local state.
func (s *syncService) Cancel(ctx context.Context) error {
	current := s.store.Current()
	if current == nil {
		// Nothing to cancel, succeed without a network call.
		return nil
	}
	if err := s.seat.Cancel(ctx, current.ID); err != nil {
		return err
	}
	// Save with no current reservation routes to delete.
	s.store.SetReservation(ctx, nil)
	if err := s.store.Save(ctx); err != nil {
		s.log.Warn(fmt.Sprintf("Cancel succeeded but archive delete failed: %v", err))
	}
	s.log.Info(fmt.Sprintf("Cancelled reservation %d", current.ID))
	return nil
}

// FetchPage fetches one page of history. Only page 1 updates the cache and
// re-selects the current reservation; the result of later pages is returned
// without touching store state.
func (s *syncService) FetchPage(ctx context.Context, page int) ([]*entity.SeatReservation, error) {
	reservations, err := s.seat.FetchHistory(ctx, page)
	if err != nil {
		return nil, err
	}
	if page == 1 {
		s.store.Replace(ctx, s.selectCurrent(reservations), reservations)
	}
	return reservations, nil
}
