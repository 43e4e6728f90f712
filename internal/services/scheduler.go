package services

import (
	"github.com/darkred-portfolio/backend/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// LogCleanupSpec runs retention daily at 03:00 server time.
const LogCleanupSpec = "0 3 * * *"

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
	logs *SystemLogService
}

func NewScheduler(db *gorm.DB) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		logs: NewSystemLogService(db),
	}
	if _, err := s.cron.AddFunc(LogCleanupSpec, s.logs.RunCleanup); err != nil {
		return nil, err
	}
	return s, nil
}

// Start runs one cleanup immediately, then follows the schedule.
func (s *Scheduler) Start() {
	go s.logs.RunCleanup()
	s.cron.Start()
	logger.Infof("[Scheduler] Started, log cleanup at %q", LogCleanupSpec)
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Infof("[Scheduler] Stopped")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
