package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	rushJob        *RushJob
	stockReportJob *StockReportJob
}

// NewJobManager creates a job manager. The stock report job is optional.
func NewJobManager(rushJob *RushJob, stockReportJob *StockReportJob) *JobManager {
	return &JobManager{
		rushJob:        rushJob,
		stockReportJob: stockReportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.rushJob.Start(); err != nil {
		return fmt.Errorf("failed to start rush job: %w", err)
	}

	if jm.stockReportJob == nil {
		return nil
	}

	if err := jm.stockReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.rushJob.Stop()
		return fmt.Errorf("failed to start stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	if jm.stockReportJob != nil {
		jm.stockReportJob.Stop()
	}
	jm.rushJob.Stop()
}
