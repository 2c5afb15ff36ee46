package entities

import (
	"fmt"
	"time"
)

// JobTimingHeader is the first line of the profiler output.
const JobTimingHeader = "Run_Id;Run_Number;Job_Id;Total_Seconds"

// WorkflowRun is a CI workflow run as listed by the provider.
type WorkflowRun struct {
	ID         int64
	RunNumber  int
	Status     string
	Conclusion string
}

// IsSuccessful reports whether the run completed with a success conclusion.
func (r WorkflowRun) IsSuccessful() bool {
	return r.Status == "completed" && r.Conclusion == "success"
}

// WorkflowJob is a single job of a workflow run.
type WorkflowJob struct {
	ID          int64
	Name        string
	StartedAt   time.Time
	CompletedAt time.Time
}

// JobTiming is one profiler output record.
type JobTiming struct {
	RunID     int64
	RunNumber int
	JobName   string
	Duration  time.Duration
}

// NewJobTiming builds the timing record of job within run.
func NewJobTiming(run WorkflowRun, job WorkflowJob) JobTiming {
	return JobTiming{
		RunID:     run.ID,
		RunNumber: run.RunNumber,
		JobName:   job.Name,
		Duration:  job.CompletedAt.Sub(job.StartedAt),
	}
}

// Record renders the timing as a semicolon separated line.
func (t JobTiming) Record() string {
	return fmt.Sprintf("%d;%d;%s;%.1f", t.RunID, t.RunNumber, t.JobName, t.Duration.Seconds())
}
