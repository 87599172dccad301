package dto

import (
	"time"

	"seatsync/internal/domain/entity"
)

// ReservationResponse is the DTO for sending a reservation to the client.
type ReservationResponse struct {
	ID        int        `json:"id"`
	Location  string     `json:"location"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Message   string     `json:"message,omitempty"`
	State     string     `json:"state"`
	AwaySince *time.Time `json:"awaySince,omitempty"`
	IsStarted bool       `json:"isStarted"`
	IsHistory bool       `json:"isHistory"`
}

// ToReservationResponse converts an entity.SeatReservation to a
// ReservationResponse DTO, deriving the booleans against now.
func ToReservationResponse(r *entity.SeatReservation, now time.Time) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		Location:  r.RawLocation,
		Start:     r.Time.Start,
		End:       r.Time.End,
		Message:   r.Time.Message,
		State:     string(r.State.Kind),
		AwaySince: r.State.AwaySince,
		IsStarted: r.IsStarted(now),
		IsHistory: r.IsHistory(now),
	}
}

// ToReservationResponseList converts a slice of entity.SeatReservation to a
// slice of ReservationResponse DTOs.
func ToReservationResponseList(reservations []*entity.SeatReservation, now time.Time) []ReservationResponse {
	list := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		list[i] = ToReservationResponse(r, now)
	}
	return list
}

// StateResponse is the DTO wrapping the current reservation and history.
type StateResponse struct {
	Reservation *ReservationResponse  `json:"reservation"`
	History     []ReservationResponse `json:"history"`
}

// HistoryResponse is the DTO for one fetched history page.
type HistoryResponse struct {
	Page         int                   `json:"page"`
	Reservations []ReservationResponse `json:"reservations"`
}
