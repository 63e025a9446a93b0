package jobs

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Job is a long-running background task bound to the server lifetime. Start
// must return once the context is done.
type Job interface {
	Start(ctx context.Context)
}

type Manager struct {
	jobs []Job
	log  *zap.Logger
}

func New(log *zap.Logger) *Manager {
	return &Manager{log: log}
}

func (m *Manager) Register(jobs ...Job) {
	m.jobs = append(m.jobs, jobs...)
}

// Start runs every registered job and blocks until the context is done and
// all of them have returned.
func (m *Manager) Start(ctx context.Context) {
	m.log.Info("background jobs starting", zap.Int("count", len(m.jobs)))

	var wg sync.WaitGroup
	for _, job := range m.jobs {
		wg.Add(1)

		go func(j Job) {
			defer wg.Done()
			j.Start(ctx)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
}
