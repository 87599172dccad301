package scheduler

import (
	"fmt"
	"sync"

	"seatsync/internal/domain/constant"
	"seatsync/internal/domain/entity"
	appErrors "seatsync/internal/pkg/errors"
	"seatsync/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Deliverer is the channel a fired alert is handed to.
type Deliverer interface {
	Deliver(alert *entity.ScheduledAlert) error
}

// LogDeliverer writes fired alerts to the log. Used when no push channel is
// configured.
type LogDeliverer struct {
	Log logger.Logger
}

func (d *LogDeliverer) Deliver(alert *entity.ScheduledAlert) error {
	d.Log.Info(fmt.Sprintf("ALERT [%s] %s: %s", alert.ID, alert.Title, alert.Body))
	return nil
}

// AlertSink keys pending cron jobs by alert identifier. Scheduling under an
// identifier that already has a pending job replaces it; one-shot jobs drop
// out of the pending set after firing.
type AlertSink struct {
	scheduler *Scheduler
	deliverer Deliverer
	log       logger.Logger

	mu       sync.Mutex // Protect jobStore access
	jobStore map[constant.AlertID]cron.EntryID
}

// NewAlertSink creates an AlertSink dispatching fired alerts to deliverer.
func NewAlertSink(scheduler *Scheduler, deliverer Deliverer, log logger.Logger) *AlertSink {
	return &AlertSink{
		scheduler: scheduler,
		deliverer: deliverer,
		log:       log,
		jobStore:  make(map[constant.AlertID]cron.EntryID),
	}
}

// storeJobID records the cron EntryID pending under an alert identifier.
func (s *AlertSink) storeJobID(id constant.AlertID, entryID cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobStore[id] = entryID
}

// removeJobID removes and returns the cron EntryID pending under an alert
// identifier.
func (s *AlertSink) removeJobID(id constant.AlertID) (cron.EntryID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entryID, ok := s.jobStore[id]
	if ok {
		delete(s.jobStore, id)
	}
	return entryID, ok
}

// Schedule registers the alert, replacing any pending alert sharing its
// identifier.
func (s *AlertSink) Schedule(alert *entity.ScheduledAlert) error {
	s.Cancel(alert.ID)

	var spec string
	if alert.Fire.Daily {
		spec = formatDailySpec(alert.Fire.Hour, alert.Fire.Minute)
	} else {
		spec = formatCronSpec(alert.Fire.At)
	}

	fired := *alert
	jobFunc := func() {
		if !fired.Fire.Daily {
			// One-off, drop it from the pending set
			s.removeJobID(fired.ID)
		}
		s.log.Info(fmt.Sprintf("Firing alert %s", fired.ID))
		if err := s.deliverer.Deliver(&fired); err != nil {
			s.log.Error(fmt.Sprintf("Error delivering alert %s", fired.ID), err)
		}
	}

	entryID, err := s.scheduler.AddJob(spec, jobFunc)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.storeJobID(alert.ID, entryID)
	s.log.Info(fmt.Sprintf("Scheduled alert %s (spec %q, job ID %d)", alert.ID, spec, entryID))
	return nil
}

// Cancel removes the pending alerts with the given identifiers. Identifiers
// with nothing pending are ignored.
func (s *AlertSink) Cancel(ids ...constant.AlertID) {
	for _, id := range ids {
		if entryID, ok := s.removeJobID(id); ok {
			s.scheduler.RemoveJob(entryID)
			s.log.Info(fmt.Sprintf("Cancelled alert %s (job ID %d)", id, entryID))
		}
	}
}

// CancelAll removes every pending alert.
func (s *AlertSink) CancelAll() {
	s.mu.Lock()
	ids := make([]constant.AlertID, 0, len(s.jobStore))
	for id := range s.jobStore {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	s.Cancel(ids...)
}

// Pending returns the identifiers with a pending alert. Useful for debugging.
func (s *AlertSink) Pending() []constant.AlertID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]constant.AlertID, 0, len(s.jobStore))
	for id := range s.jobStore {
		ids = append(ids, id)
	}
	return ids
}
