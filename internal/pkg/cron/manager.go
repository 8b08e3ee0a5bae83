package cron

import (
	log "log/slog"

	"github.com/adilhusain01/aadil-rasheed-server/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	tempCleanJob *job.TempCleanJob
}

func NewCronManager(tempCleanJob *job.TempCleanJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		tempCleanJob: tempCleanJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.tempCleanJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
