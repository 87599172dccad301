package seatapi

import (
	"encoding/json"
	"time"

	"seatsync/internal/domain/entity"
)

// Seat service wire format. Every response shares the envelope; data varies
// per endpoint.

const (
	statusSuccess = "success"

	// Code the server uses for an expired or missing session.
	codeRequireLogin = "1000"

	wireTimeLayout = "2006-01-02 15:04"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type loginData struct {
	Token string `json:"token"`
}

type historyData struct {
	Reservations []wireReservation `json:"reservations"`
}

// wireReservation is one reservation row as the server sends it.
type wireReservation struct {
	ID        int    `json:"id"`
	Location  string `json:"location"`
	Begin     string `json:"begin"`
	End       string `json:"end"`
	AwayBegin string `json:"awayBegin"`
	State     string `json:"state"`
	Message   string `json:"message"`
}

// toEntity maps a wire row onto the domain model. Server states RESERVE and
// CHECK_IN both read as normal; AWAY carries the away-begin instant.
func (w wireReservation) toEntity(loc *time.Location) (*entity.SeatReservation, error) {
	begin, err := time.ParseInLocation(wireTimeLayout, w.Begin, loc)
	if err != nil {
		return nil, err
	}
	end, err := time.ParseInLocation(wireTimeLayout, w.End, loc)
	if err != nil {
		return nil, err
	}
	r := &entity.SeatReservation{
		ID:          w.ID,
		RawLocation: w.Location,
		Time: entity.ReservationTime{
			Start:   begin,
			End:     end,
			Message: w.Message,
		},
		State: entity.ReservationState{Kind: entity.StateNormal},
	}
	switch w.State {
	case "AWAY":
		r.State.Kind = entity.StateTempAway
		if w.AwayBegin != "" {
			away, err := time.ParseInLocation(wireTimeLayout, w.AwayBegin, loc)
			if err != nil {
				return nil, err
			}
			r.State.AwaySince = &away
			r.AwayStart = &away
		}
	case "COMPLETE":
		r.State.Kind = entity.StateCompleted
	case "INCOMPLETE":
		r.State.Kind = entity.StateViolated
	case "CANCEL":
		r.Cancelled = true
	}
	return r, nil
}
