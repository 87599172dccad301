package entity

import "time"

// StateKind enumerates the live states a seat reservation can be in.
type StateKind string

const (
	// StateNormal means the user holds the seat (or has not checked in yet).
	StateNormal StateKind = "normal"
	// StateTempAway means the user has temporarily left the seat.
	StateTempAway StateKind = "tempAway"
	// StateViolated means the reservation expired with a rule violation.
	StateViolated StateKind = "violated"
	// StateCompleted means the reservation finished normally.
	StateCompleted StateKind = "completed"
)

// ReservationState is a tagged union: Kind selects the variant and AwaySince
// carries the payload of the tempAway variant.
type ReservationState struct {
	Kind      StateKind  `json:"kind"`
	AwaySince *time.Time `json:"awaySince,omitempty"`
}

// ReservationTime is the [start, end) window the seat is held for, with an
// optional advisory message from the server (e.g. a grace-period note).
type ReservationTime struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Message string    `json:"message,omitempty"`
}

// SeatReservation is one reservation record as reported by the seat service.
type SeatReservation struct {
	ID          int              `json:"id"`
	Time        ReservationTime  `json:"time"`
	RawLocation string           `json:"rawLocation"`
	State       ReservationState `json:"state"`
	AwayStart   *time.Time       `json:"awayStart,omitempty"`
	Cancelled   bool             `json:"cancelled,omitempty"`
}

// IsStarted reports whether the reservation window has begun at now.
func (r *SeatReservation) IsStarted(now time.Time) bool {
	return !now.Before(r.Time.Start)
}

// IsHistory reports whether the reservation no longer counts as current: its
// window has fully elapsed or it was explicitly cancelled.
func (r *SeatReservation) IsHistory(now time.Time) bool {
	return r.Cancelled || !now.Before(r.Time.End)
}

// ReservationArchive is the persisted envelope for one account: the current
// reservation (nil when none) and the ordered history list.
type ReservationArchive struct {
	Reservation *SeatReservation   `json:"reservation"`
	History     []*SeatReservation `json:"history"`
}
