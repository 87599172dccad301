package scheduler

import (
	"fmt"
	"sync"
	"time"

	"seatsync/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex // To protect access to job management
}

// NewScheduler creates and starts a cron scheduler with seconds precision.
func NewScheduler(log logger.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	c.Start()
	log.Info("Cron scheduler started.")
	return &Scheduler{
		cron: c,
		log:  log,
	}
}

// AddJob adds a new job to the scheduler.
// spec follows the cron format (e.g., "0 30 * * * *").
// Returns the EntryID of the added job and an error if any.
func (s *Scheduler) AddJob(spec string, cmd func()) (cron.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(spec, cmd)
	if err != nil {
		s.log.Error("Failed to add cron job", err)
		return 0, fmt.Errorf("failed to add cron job: %w", err)
	}
	s.log.Debug(fmt.Sprintf("Added cron job with ID %d, spec: %s", id, spec))
	return id, nil
}

// RemoveJob removes a job from the scheduler by its EntryID.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Remove(id)
	s.log.Debug(fmt.Sprintf("Removed cron job with ID %d", id))
}

// Stop stops the cron scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.log.Info("Cron scheduler stopped.")
	}
}

// GetEntries returns the list of scheduled entries. Useful for debugging.
func (s *Scheduler) GetEntries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entries()
}

// formatCronSpec generates a cron spec string firing once at a specific time.
func formatCronSpec(t time.Time) string {
	// Seconds Minutes Hours DayOfMonth Month DayOfWeek
	return fmt.Sprintf("%d %d %d %d %d *", t.Second(), t.Minute(), t.Hour(), t.Day(), t.Month())
}

// formatDailySpec generates a cron spec string firing every day at a time of day.
func formatDailySpec(hour, minute int) string {
	return fmt.Sprintf("0 %d %d * * *", minute, hour)
}
