package entity

import (
	"time"

	"seatsync/internal/domain/constant"
)

// FiringSpec says when an alert fires: either once at an absolute instant,
// or every day at a fixed time of day.
type FiringSpec struct {
	At     time.Time // One-shot fire time; zero when Daily
	Hour   int       // Daily repeating time of day
	Minute int
	Daily  bool
}

// OneShot builds a FiringSpec for a single absolute fire time.
func OneShot(at time.Time) FiringSpec {
	return FiringSpec{At: at}
}

// DailyAt builds a FiringSpec repeating every day at hour:minute.
func DailyAt(hour, minute int) FiringSpec {
	return FiringSpec{Hour: hour, Minute: minute, Daily: true}
}

// ScheduledAlert is one desired entry in the pending-alert set. Alerts are
// derived by the notification service, never hand-built by callers.
type ScheduledAlert struct {
	ID      constant.AlertID
	Fire    FiringSpec
	Title   string
	Body    string
	Payload []byte // Reservation snapshot carried to the delivery channel
}
