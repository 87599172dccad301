package companion

import (
	"encoding/json"
	"fmt"

	"seatsync/internal/domain/entity"
	"seatsync/internal/pkg/logger"
)

// LogTransfer is a companion-device transfer surface that records each
// snapshot in the log. The watch companion of the original product is out of
// reach for a server deployment; the interface stays so a real transport can
// replace this.
type LogTransfer struct {
	log logger.Logger
}

// NewLogTransfer creates a log-backed companion transfer.
func NewLogTransfer(log logger.Logger) *LogTransfer {
	return &LogTransfer{log: log}
}

// Transfer hands the latest reservation snapshot to the companion surface.
func (t *LogTransfer) Transfer(reservation *entity.SeatReservation) {
	if reservation == nil {
		t.log.Debug("Companion transfer: reservation cleared")
		return
	}
	data, err := json.Marshal(reservation)
	if err != nil {
		t.log.Error("Companion transfer: failed to encode reservation", err)
		return
	}
	t.log.Debug(fmt.Sprintf("Companion transfer: %s", data))
}
