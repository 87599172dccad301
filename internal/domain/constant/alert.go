package constant

// AlertID identifies one slot in the pending-alert set. Scheduling under an
// identifier that already has a pending alert replaces the prior alert.
type AlertID string

const (
	// AlertReserveOpen fires daily when next-day seat reservation opens.
	AlertReserveOpen AlertID = "seat.reserve"
	// AlertUpcoming fires 10 minutes before the reservation starts.
	AlertUpcoming AlertID = "seat.upcoming"
	// AlertEnd fires when the reservation window ends.
	AlertEnd AlertID = "seat.end"
	// AlertAwayStart is reserved for a leave-seat notice. It is never
	// scheduled by this engine but is still cleared alongside AlertAwayEnd.
	AlertAwayStart AlertID = "seat.awayStart"
	// AlertAwayEnd fires when a temporary leave is about to exceed its budget.
	AlertAwayEnd AlertID = "seat.awayEnd"
)

// ReservationAlertIDs are the identifiers scoped to a specific reservation.
// AlertReserveOpen is not among them: it exists independently of any
// reservation.
var ReservationAlertIDs = []AlertID{
	AlertUpcoming,
	AlertEnd,
	AlertAwayStart,
	AlertAwayEnd,
}

func (id AlertID) String() string {
	return string(id)
}
