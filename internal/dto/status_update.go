package dto

import (
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// UpsertStatusUpdateRequest defines the data for writing a (job, day) status.
type UpsertStatusUpdateRequest struct {
	JobID      string    `json:"jobID" binding:"required"`
	Date       time.Time `json:"date" binding:"required" time_format:"2006-01-02"`
	StatusText string    `json:"statusText"`
}

// StatusUpdateResponse defines the data returned for a status update.
type StatusUpdateResponse struct {
	StatusUpdateID string    `json:"statusUpdateID"`
	JobID          string    `json:"jobID"`
	JobName        string    `json:"jobName"`
	Date           string    `json:"date"`
	StatusText     string    `json:"statusText"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// ToStatusUpdateResponse converts a domain.StatusUpdate to its DTO.
func ToStatusUpdateResponse(u *domain.StatusUpdate) StatusUpdateResponse {
	return StatusUpdateResponse{
		StatusUpdateID: u.StatusUpdateID,
		JobID:          u.JobID,
		JobName:        u.JobName,
		Date:           u.Date.Format("2006-01-02"),
		StatusText:     u.StatusText,
		LastUpdated:    u.LastUpdated,
	}
}

// ToListStatusUpdateResponse converts a slice of status updates to DTOs.
func ToListStatusUpdateResponse(updates []domain.StatusUpdate) []StatusUpdateResponse {
	res := make([]StatusUpdateResponse, len(updates))
	for i, u := range updates {
		res[i] = ToStatusUpdateResponse(&u)
	}
	return res
}
