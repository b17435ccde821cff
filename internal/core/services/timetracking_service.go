package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/google/uuid"
)

// timeTrackingService owns the time block lifecycle: start/stop against the
// static job list, manual edits, the cross-midnight repair and the per-day
// status updates. At most one block is active at any time.
type timeTrackingService struct {
	BaseService
	timeBlockRepo    portsrepo.TimeBlockRepositoryFacade
	statusUpdateRepo portsrepo.StatusUpdateRepositoryFacade
	jobs             *domain.JobSet
	now              func() time.Time
}

// TimeTrackingServiceOption is a functional option for configuring the
// time tracking service
type TimeTrackingServiceOption func(*timeTrackingService)

// WithTrackingClock overrides the clock, letting tests pin "now".
func WithTrackingClock(now func() time.Time) TimeTrackingServiceOption {
	return func(s *timeTrackingService) {
		s.now = now
	}
}

// NewTimeTrackingService creates a new instance of the time tracking service.
func NewTimeTrackingService(timeBlockRepo portsrepo.TimeBlockRepositoryFacade, statusUpdateRepo portsrepo.StatusUpdateRepositoryFacade, jobs *domain.JobSet, options ...TimeTrackingServiceOption) portssvc.TimeTrackingSvcFacade {
	svc := &timeTrackingService{
		timeBlockRepo:    timeBlockRepo,
		statusUpdateRepo: statusUpdateRepo,
		jobs:             jobs,
		now:              time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure timeTrackingService implements the TimeTrackingSvcFacade interface
var _ portssvc.TimeTrackingSvcFacade = (*timeTrackingService)(nil)

func (s *timeTrackingService) StartTracking(ctx context.Context, jobID string) (*domain.TimeBlock, error) {
	job, ok := s.jobs.ByID(jobID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown job %q", apperrors.ErrValidation, jobID)
	}

	active, err := s.timeBlockRepo.FindActiveTimeBlock(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("%w: already tracking %s", apperrors.ErrTrackingConflict, active.JobName)
	}

	block := domain.TimeBlock{
		TimeBlockID: uuid.NewString(),
		JobID:       job.ID,
		JobName:     job.Name,
		StartTime:   s.now(),
	}
	if err := s.timeBlockRepo.SaveTimeBlock(ctx, block); err != nil {
		s.LogError(ctx, err, "Failed to start tracking", slog.String("job_id", jobID))
		return nil, err
	}

	s.LogInfo(ctx, "Tracking started",
		slog.String("time_block_id", block.TimeBlockID),
		slog.String("job_id", job.ID))
	return &block, nil
}

func (s *timeTrackingService) StopTracking(ctx context.Context) (*domain.TimeBlock, error) {
	active, err := s.timeBlockRepo.FindActiveTimeBlock(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		// Nothing running; stopping is a benign no-op.
		return nil, nil
	}

	end := s.now()
	duration := active.DurationMillis(end)
	active.EndTime = &end
	active.DurationMS = &duration

	if err := s.timeBlockRepo.SaveTimeBlock(ctx, *active); err != nil {
		s.LogError(ctx, err, "Failed to stop tracking", slog.String("time_block_id", active.TimeBlockID))
		return nil, err
	}

	s.LogInfo(ctx, "Tracking stopped",
		slog.String("time_block_id", active.TimeBlockID),
		slog.Int64("duration_ms", duration))
	return active, nil
}

func (s *timeTrackingService) GetActiveTimeBlock(ctx context.Context) (*domain.TimeBlock, error) {
	return s.timeBlockRepo.FindActiveTimeBlock(ctx)
}

// RepairCrossMidnight closes an active block left running past midnight at
// 23:59:59 of its start day and opens a fresh active block at 00:00:00
// today, in one store transaction. Running it again the same day is a no-op
// because the new active block already starts today.
func (s *timeTrackingService) RepairCrossMidnight(ctx context.Context) error {
	active, err := s.timeBlockRepo.FindActiveTimeBlock(ctx)
	if err != nil {
		return err
	}
	now := s.now()
	if active == nil || domain.SameDay(active.StartTime, now) {
		return nil
	}

	start := active.StartTime
	cutoff := time.Date(start.Year(), start.Month(), start.Day(), 23, 59, 59, 0, start.Location())
	duration := active.DurationMillis(cutoff)

	completed := *active
	completed.EndTime = &cutoff
	completed.DurationMS = &duration

	continuation := domain.TimeBlock{
		TimeBlockID: uuid.NewString(),
		JobID:       active.JobID,
		JobName:     active.JobName,
		StartTime:   domain.DayOf(now),
		Description: active.Description,
	}

	if err := s.timeBlockRepo.SplitTimeBlock(ctx, completed, continuation); err != nil {
		s.LogError(ctx, err, "Failed to split cross-midnight block",
			slog.String("time_block_id", active.TimeBlockID))
		return err
	}

	s.LogInfo(ctx, "Cross-midnight block split",
		slog.String("completed_id", completed.TimeBlockID),
		slog.String("continuation_id", continuation.TimeBlockID))
	return nil
}

func (s *timeTrackingService) UpsertTimeBlock(ctx context.Context, req dto.UpsertTimeBlockRequest) (*domain.TimeBlock, error) {
	job, ok := s.jobs.ByID(req.JobID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown job %q", apperrors.ErrValidation, req.JobID)
	}
	if req.EndTime != nil && req.EndTime.Before(req.StartTime) {
		return nil, fmt.Errorf("%w: end time precedes start time", apperrors.ErrValidation)
	}

	block := domain.TimeBlock{
		TimeBlockID: req.TimeBlockID,
		JobID:       job.ID,
		JobName:     job.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if block.TimeBlockID == "" {
		block.TimeBlockID = uuid.NewString()
	}
	if req.EndTime != nil {
		duration := block.DurationMillis(*req.EndTime)
		block.DurationMS = &duration
	} else {
		// An open-ended edit becomes the active block; reject it when a
		// different block is already running.
		active, err := s.timeBlockRepo.FindActiveTimeBlock(ctx)
		if err != nil {
			return nil, err
		}
		if active != nil && active.TimeBlockID != block.TimeBlockID {
			return nil, fmt.Errorf("%w: already tracking %s", apperrors.ErrTrackingConflict, active.JobName)
		}
	}
	if req.Effectiveness != nil {
		eff := domain.Effectiveness(*req.Effectiveness)
		block.Effectiveness = &eff
	}

	if err := s.timeBlockRepo.SaveTimeBlock(ctx, block); err != nil {
		s.LogError(ctx, err, "Failed to save time block", slog.String("time_block_id", block.TimeBlockID))
		return nil, err
	}
	return &block, nil
}

func (s *timeTrackingService) DeleteTimeBlock(ctx context.Context, timeBlockID string) error {
	if err := s.timeBlockRepo.DeleteTimeBlock(ctx, timeBlockID); err != nil {
		s.LogError(ctx, err, "Failed to delete time block", slog.String("time_block_id", timeBlockID))
		return err
	}
	return nil
}

func (s *timeTrackingService) ListTimeBlocksByDate(ctx context.Context, date time.Time) ([]domain.TimeBlock, error) {
	day := domain.DayOf(date)
	return s.timeBlockRepo.ListTimeBlocksByDateRange(ctx, day, day)
}

func (s *timeTrackingService) Jobs(ctx context.Context) []domain.Job {
	return s.jobs.All()
}

func (s *timeTrackingService) UpsertStatusUpdate(ctx context.Context, req dto.UpsertStatusUpdateRequest) (*domain.StatusUpdate, error) {
	job, ok := s.jobs.ByID(req.JobID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown job %q", apperrors.ErrValidation, req.JobID)
	}

	day := domain.DayOf(req.Date)
	update := domain.StatusUpdate{
		StatusUpdateID: domain.StatusUpdateID(job.ID, day),
		JobID:          job.ID,
		JobName:        job.Name,
		Date:           day,
		StatusText:     req.StatusText,
		LastUpdated:    s.now(),
	}

	if err := s.statusUpdateRepo.SaveStatusUpdate(ctx, update); err != nil {
		s.LogError(ctx, err, "Failed to save status update", slog.String("status_update_id", update.StatusUpdateID))
		return nil, err
	}
	return &update, nil
}

func (s *timeTrackingService) ListStatusUpdatesByDate(ctx context.Context, date time.Time) ([]domain.StatusUpdate, error) {
	return s.statusUpdateRepo.ListStatusUpdatesByDate(ctx, domain.DayOf(date))
}

func (s *timeTrackingService) DeleteStatusUpdate(ctx context.Context, statusUpdateID string) error {
	if err := s.statusUpdateRepo.DeleteStatusUpdate(ctx, statusUpdateID); err != nil {
		s.LogError(ctx, err, "Failed to delete status update", slog.String("status_update_id", statusUpdateID))
		return err
	}
	return nil
}
