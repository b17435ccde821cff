package dto

import (
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// UpsertTimeBlockRequest defines the data for a manual time block edit.
// An empty TimeBlockID means insert with a fresh ID.
type UpsertTimeBlockRequest struct {
	TimeBlockID   string     `json:"timeBlockID"`
	JobID         string     `json:"jobID" binding:"required"`
	StartTime     time.Time  `json:"startTime" binding:"required"`
	EndTime       *time.Time `json:"endTime"`
	Effectiveness *string    `json:"effectiveness" binding:"omitempty,oneof=Productive Unproductive"`
	Description   string     `json:"description"`
}

// TimeBlockResponse defines the data returned for a time block.
type TimeBlockResponse struct {
	TimeBlockID   string     `json:"timeBlockID"`
	JobID         string     `json:"jobID"`
	JobName       string     `json:"jobName"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	DurationMS    *int64     `json:"durationMS,omitempty"`
	Effectiveness *string    `json:"effectiveness,omitempty"`
	Description   string     `json:"description,omitempty"`
	Active        bool       `json:"active"`
}

// ToTimeBlockResponse converts a domain.TimeBlock to its DTO.
func ToTimeBlockResponse(b *domain.TimeBlock) TimeBlockResponse {
	var eff *string
	if b.Effectiveness != nil {
		s := string(*b.Effectiveness)
		eff = &s
	}
	return TimeBlockResponse{
		TimeBlockID:   b.TimeBlockID,
		JobID:         b.JobID,
		JobName:       b.JobName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DurationMS:    b.DurationMS,
		Effectiveness: eff,
		Description:   b.Description,
		Active:        b.IsActive(),
	}
}

// ToListTimeBlockResponse converts a slice of time blocks to DTOs.
func ToListTimeBlockResponse(blocks []domain.TimeBlock) []TimeBlockResponse {
	res := make([]TimeBlockResponse, len(blocks))
	for i, b := range blocks {
		res[i] = ToTimeBlockResponse(&b)
	}
	return res
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color int    `json:"color"`
}

// ToListJobResponse converts the static job list to DTOs.
func ToListJobResponse(jobs []domain.Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = JobResponse{ID: j.ID, Name: j.Name, Color: j.Color}
	}
	return res
}
