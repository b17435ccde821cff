package services

import (
	"context"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/andriybobchuk/mooney/internal/dto"
)

// TimeTrackingSvcFacade covers the mutation side of time tracking: starting
// and stopping blocks, the cross-midnight repair, manual block edits and
// status updates.
type TimeTrackingSvcFacade interface {
	// StartTracking opens a new active block for the job. Fails with
	// ErrTrackingConflict when a block is already active.
	StartTracking(ctx context.Context, jobID string) (*domain.TimeBlock, error)

	// StopTracking closes the active block, storing its duration. Returns
	// (nil, nil) when nothing is being tracked.
	StopTracking(ctx context.Context) (*domain.TimeBlock, error)

	// GetActiveTimeBlock retrieves the currently active block, nil when none.
	GetActiveTimeBlock(ctx context.Context) (*domain.TimeBlock, error)

	// RepairCrossMidnight splits an active block that started before today
	// at the day boundary: the original ends at 23:59:59 of its start day
	// and a fresh active block starts today at 00:00:00. Run once per
	// app-foreground event; a no-op when the active block already starts
	// today.
	RepairCrossMidnight(ctx context.Context) error

	// UpsertTimeBlock persists a manually edited block.
	UpsertTimeBlock(ctx context.Context, req dto.UpsertTimeBlockRequest) (*domain.TimeBlock, error)

	// DeleteTimeBlock removes a block.
	DeleteTimeBlock(ctx context.Context, timeBlockID string) error

	// ListTimeBlocksByDate retrieves the blocks of one calendar day.
	ListTimeBlocksByDate(ctx context.Context, date time.Time) ([]domain.TimeBlock, error)

	// Jobs returns the static job list.
	Jobs(ctx context.Context) []domain.Job

	// UpsertStatusUpdate writes the free-text status for a (job, day) pair.
	UpsertStatusUpdate(ctx context.Context, req dto.UpsertStatusUpdateRequest) (*domain.StatusUpdate, error)

	// ListStatusUpdatesByDate retrieves the updates written for a day.
	ListStatusUpdatesByDate(ctx context.Context, date time.Time) ([]domain.StatusUpdate, error)

	// DeleteStatusUpdate removes a status update.
	DeleteStatusUpdate(ctx context.Context, statusUpdateID string) error
}

// TimeAnalyticsSvcFacade covers the read-side time projections: per-day and
// per-window hour breakdowns.
type TimeAnalyticsSvcFacade interface {
	// DailySummary groups one day's blocks by job with hour totals and
	// per-job percentages.
	DailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error)

	// WeeklyAnalytics reports the trailing 7-day window ending at end, with
	// a plain total/7 daily average.
	WeeklyAnalytics(ctx context.Context, end time.Time) (*domain.WeeklyAnalytics, error)

	// LastNDaysAnalytics reports the trailing n-day window ending at end
	// with working-day-adjusted totals and averages (Monday-Friday blocks
	// only, divided by the count of working days in the window).
	LastNDaysAnalytics(ctx context.Context, end time.Time, n int) (*domain.WeeklyAnalytics, error)
}
