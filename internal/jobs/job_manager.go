package jobs

import (
	"fmt"
)

// Job is a scheduled task that can be started and stopped.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    map[string]Job
	order   []string
	started []string
}

func NewJobManager() *JobManager {
	return &JobManager{jobs: map[string]Job{}}
}

// Register adds a job under name. Registering a name twice replaces the job.
func (jm *JobManager) Register(name string, job Job) {
	if _, ok := jm.jobs[name]; !ok {
		jm.order = append(jm.order, name)
	}
	jm.jobs[name] = job
}

// StartAll starts all scheduled jobs in registration order.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for _, name := range jm.order {
		if err := jm.jobs[name].Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", name, err)
		}
		jm.started = append(jm.started, name)
	}
	return nil
}

// StopAll stops started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.jobs[jm.started[i]].Stop()
	}
	jm.started = nil
}
