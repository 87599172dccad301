package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seatsync/internal/domain/constant"
	"seatsync/internal/domain/entity"
	"seatsync/internal/pkg/clock"
	"seatsync/internal/pkg/logger"
)

const (
	// Lead time for the upcoming alert before the reservation starts.
	upcomingLead = 10 * time.Minute

	// Away-time budget before a temporary leave counts as a violation. The
	// alert fires when the budget runs out, which is 10 minutes before the
	// library's 30-minute limit (60 minutes during meal hours).
	awayBudget     = 20 * time.Minute
	awayBudgetPeak = 50 * time.Minute
)

// peakHour reports whether hour falls in the meal hours the library extends
// the away limit for.
func peakHour(hour int) bool {
	switch hour {
	case 11, 12, 17, 18:
		return true
	}
	return false
}

type notificationService struct {
	sink       AlertSink
	clock      clock.Clock
	openHour   int // Time of day next-day reservation opens
	openMinute int
	log        logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
// implementation. openHour/openMinute configure the daily reserve-open alert.
func NewNotificationService(sink AlertSink, clk clock.Clock, openHour, openMinute int, log logger.Logger) NotificationService {
	return &notificationService{
		sink:       sink,
		clock:      clk,
		openHour:   openHour,
		openMinute: openMinute,
		log:        log,
	}
}

// RecomputeAll reconciles the whole pending-alert set.
func (s *notificationService) RecomputeAll(ctx context.Context, reservation *entity.SeatReservation, prefs *entity.NotificationPreferences) {
	if prefs == nil || !prefs.Enabled {
		s.sink.CancelAll()
		return
	}

	if prefs.ReserveOpen {
		s.schedule(&entity.ScheduledAlert{
			ID:    constant.AlertReserveOpen,
			Fire:  entity.DailyAt(s.openHour, s.openMinute),
			Title: "Reserve Reminder",
			Body:  "Seat reservation for the next day is about to open.",
		})
	} else {
		s.sink.Cancel(constant.AlertReserveOpen)
	}

	s.Schedule(ctx, reservation, prefs)
}

// Schedule reconciles the reservation-scoped alerts against one reservation.
func (s *notificationService) Schedule(ctx context.Context, reservation *entity.SeatReservation, prefs *entity.NotificationPreferences) {
	if reservation == nil {
		s.sink.Cancel(constant.ReservationAlertIDs...)
		return
	}
	payload, err := json.Marshal(reservation)
	if err != nil {
		s.log.Error("Failed to encode reservation payload", err)
	}

	now := s.clock.Now()
	if prefs.Upcoming && !reservation.IsStarted(now) {
		body := reservation.RawLocation
		if reservation.Time.Message != "" {
			body += "\n" + reservation.Time.Message
		}
		s.schedule(&entity.ScheduledAlert{
			ID:      constant.AlertUpcoming,
			Fire:    entity.OneShot(reservation.Time.Start.Add(-upcomingLead)),
			Title:   "Upcoming Seat Reservation In 10mins",
			Body:    body,
			Payload: payload,
		})
	} else if !prefs.Upcoming {
		s.sink.Cancel(constant.AlertUpcoming)
	}

	if prefs.End {
		s.schedule(&entity.ScheduledAlert{
			ID:      constant.AlertEnd,
			Fire:    entity.OneShot(reservation.Time.End),
			Title:   "Reservation Complete",
			Body:    "Make sure to take all your belongings before leave.",
			Payload: payload,
		})
	} else {
		s.sink.Cancel(constant.AlertEnd)
	}

	if prefs.TempAway && reservation.State.Kind == entity.StateTempAway && reservation.AwayStart != nil {
		budget := awayBudget
		if peakHour(reservation.AwayStart.Hour()) {
			budget = awayBudgetPeak
		}
		s.schedule(&entity.ScheduledAlert{
			ID:      constant.AlertAwayEnd,
			Fire:    entity.OneShot(reservation.AwayStart.Add(budget)),
			Title:   "Reservation Expire Alert",
			Body:    "Reservation is about to expire in 10mins, back to library or cancel the reservation to avoid violation.",
			Payload: payload,
		})
	} else if !prefs.TempAway {
		s.sink.Cancel(constant.AlertAwayStart, constant.AlertAwayEnd)
	} else {
		// Already back at the seat
		s.sink.Cancel(constant.AlertAwayEnd)
	}
}

// CancelAll removes every pending alert.
func (s *notificationService) CancelAll() {
	s.sink.CancelAll()
}

// schedule hands one alert to the sink. Scheduling is best effort: failures
// are logged, never propagated. A one-shot fire time already in the past
// cannot be scheduled; any stale pending alert under that identifier is
// dropped instead.
func (s *notificationService) schedule(alert *entity.ScheduledAlert) {
	if !alert.Fire.Daily && alert.Fire.At.Before(s.clock.Now()) {
		s.log.Warn(fmt.Sprintf("Alert %s fire time %v is in the past, skipping", alert.ID, alert.Fire.At))
		s.sink.Cancel(alert.ID)
		return
	}
	if err := s.sink.Schedule(alert); err != nil {
		s.log.Error(fmt.Sprintf("Failed to schedule alert %s", alert.ID), err)
	}
}
