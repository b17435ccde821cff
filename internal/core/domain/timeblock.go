package domain

import (
	"fmt"
	"time"
)

// Effectiveness tags how a finished time block felt in retrospect.
type Effectiveness string

const (
	Productive   Effectiveness = "Productive"
	Unproductive Effectiveness = "Unproductive"
)

// TimeBlock is a contiguous stretch of worked time against a job. A block
// with no end time is active and still accruing duration; at most one block
// in the store may be active at any time. JobName is denormalized from the
// static job list at creation time.
type TimeBlock struct {
	TimeBlockID   string         `json:"timeBlockID"`
	JobID         string         `json:"jobID"`
	JobName       string         `json:"jobName"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       *time.Time     `json:"endTime,omitempty"`
	DurationMS    *int64         `json:"durationMS,omitempty"`
	Effectiveness *Effectiveness `json:"effectiveness,omitempty"`
	Description   string         `json:"description,omitempty"`
}

// IsActive reports whether the block is still open.
func (b TimeBlock) IsActive() bool {
	return b.EndTime == nil
}

// Duration is the elapsed time of the block. Active blocks accrue against
// the supplied now.
func (b TimeBlock) Duration(now time.Time) time.Duration {
	end := now
	if b.EndTime != nil {
		end = *b.EndTime
	}
	return end.Sub(b.StartTime)
}

// DurationMillis is Duration expressed in whole milliseconds, the unit the
// store persists.
func (b TimeBlock) DurationMillis(now time.Time) int64 {
	return b.Duration(now).Milliseconds()
}

// Hours is Duration expressed in fractional hours.
func (b TimeBlock) Hours(now time.Time) float64 {
	return b.Duration(now).Hours()
}

// FormattedDuration renders the block duration for display: "45m", "3h",
// "3h 20m".
func (b TimeBlock) FormattedDuration(now time.Time) string {
	hours := b.Hours(now)
	if hours < 1 {
		return fmt.Sprintf("%dm", int(hours*60))
	}
	whole := int(hours)
	minutes := int((hours - float64(whole)) * 60)
	if minutes == 0 {
		return fmt.Sprintf("%dh", whole)
	}
	return fmt.Sprintf("%dh %dm", whole, minutes)
}

// Job is a static reference entry time blocks are tracked against.
type Job struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color int    `json:"color"`
}

// JobSet is an immutable lookup table over the static job list.
type JobSet struct {
	ordered []Job
	byID    map[string]Job
}

// NewJobSet indexes the given jobs by ID, preserving order.
func NewJobSet(jobs []Job) *JobSet {
	byID := make(map[string]Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	return &JobSet{ordered: jobs, byID: byID}
}

// All returns the jobs in declaration order.
func (s *JobSet) All() []Job {
	return s.ordered
}

// ByID looks a job up by its identifier.
func (s *JobSet) ByID(id string) (Job, bool) {
	j, ok := s.byID[id]
	return j, ok
}

// StatusUpdate holds free text a user wrote for a (job, day) pair. Purely
// informational; independent of time blocks.
type StatusUpdate struct {
	StatusUpdateID string    `json:"statusUpdateID"` // composite: jobID_date
	JobID          string    `json:"jobID"`
	JobName        string    `json:"jobName"`
	Date           time.Time `json:"date"`
	StatusText     string    `json:"statusText"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// StatusUpdateID builds the composite identifier for a (job, day) pair.
func StatusUpdateID(jobID string, date time.Time) string {
	return fmt.Sprintf("%s_%s", jobID, date.Format("2006-01-02"))
}
