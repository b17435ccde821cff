package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
)

// timeAnalyticsService folds time blocks into per-day and per-window hour
// breakdowns. Two averaging policies exist and must not be conflated: the
// weekly view divides by a flat 7, the last-N-days view counts only
// Monday-Friday blocks and divides by the number of working days in the
// window.
type timeAnalyticsService struct {
	BaseService
	timeBlockRepo portsrepo.TimeBlockRepositoryFacade
	jobs          *domain.JobSet
	now           func() time.Time
}

// TimeAnalyticsServiceOption is a functional option for configuring the
// time analytics service
type TimeAnalyticsServiceOption func(*timeAnalyticsService)

// WithAnalyticsClock overrides the clock used to accrue active blocks.
func WithAnalyticsClock(now func() time.Time) TimeAnalyticsServiceOption {
	return func(s *timeAnalyticsService) {
		s.now = now
	}
}

// NewTimeAnalyticsService creates a new instance of the time analytics service.
func NewTimeAnalyticsService(timeBlockRepo portsrepo.TimeBlockRepositoryFacade, jobs *domain.JobSet, options ...TimeAnalyticsServiceOption) portssvc.TimeAnalyticsSvcFacade {
	svc := &timeAnalyticsService{
		timeBlockRepo: timeBlockRepo,
		jobs:          jobs,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure timeAnalyticsService implements the TimeAnalyticsSvcFacade interface
var _ portssvc.TimeAnalyticsSvcFacade = (*timeAnalyticsService)(nil)

func (s *timeAnalyticsService) DailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	day := domain.DayOf(date)
	blocks, err := s.timeBlockRepo.ListTimeBlocksByDateRange(ctx, day, day)
	if err != nil {
		return nil, err
	}
	summary := s.buildDailySummary(ctx, day, s.filterKnownJobs(ctx, blocks))
	return &summary, nil
}

func (s *timeAnalyticsService) WeeklyAnalytics(ctx context.Context, end time.Time) (*domain.WeeklyAnalytics, error) {
	return s.windowAnalytics(ctx, domain.NewTrailingWindow(end, 7), false)
}

func (s *timeAnalyticsService) LastNDaysAnalytics(ctx context.Context, end time.Time, n int) (*domain.WeeklyAnalytics, error) {
	return s.windowAnalytics(ctx, domain.NewTrailingWindow(end, n), true)
}

// windowAnalytics builds the window report. With workingOnly set, only
// Monday-Friday blocks enter the totals and the divisor is the window's
// working-day count; otherwise every block counts and the divisor is the
// window length.
func (s *timeAnalyticsService) windowAnalytics(ctx context.Context, window domain.WeekWindow, workingOnly bool) (*domain.WeeklyAnalytics, error) {
	blocks, err := s.timeBlockRepo.ListTimeBlocksByDateRange(ctx, window.Start(), window.End)
	if err != nil {
		return nil, err
	}
	blocks = s.filterKnownJobs(ctx, blocks)

	byDay := make(map[time.Time][]domain.TimeBlock)
	for _, b := range blocks {
		day := domain.DayOf(b.StartTime)
		byDay[day] = append(byDay[day], b)
	}

	summaries := make([]domain.DailySummary, 0, window.Days)
	for _, day := range window.Dates() {
		summaries = append(summaries, s.buildDailySummary(ctx, day, byDay[day]))
	}

	counted := blocks
	divisor := float64(window.Days)
	if workingOnly {
		counted = nil
		for _, b := range blocks {
			if domain.IsWorkingDay(b.StartTime) {
				counted = append(counted, b)
			}
		}
		divisor = float64(window.WorkingDayCount())
	}

	now := s.now()
	totalHours := 0.0
	jobHours := make(map[string]float64)
	jobNames := make(map[string]string)
	for _, b := range counted {
		hours := b.Hours(now)
		totalHours += hours
		jobHours[b.JobID] += hours
		jobNames[b.JobID] = b.JobName
	}

	breakdown := make(map[string]domain.JobAnalytics, len(jobHours))
	for jobID, hours := range jobHours {
		average := 0.0
		if divisor > 0 {
			average = hours / divisor
		}
		breakdown[jobID] = domain.JobAnalytics{
			JobID:             jobID,
			JobName:           jobNames[jobID],
			TotalHours:        hours,
			AverageDailyHours: average,
			Percentage:        wholePercent(hours, totalHours),
		}
	}

	average := 0.0
	if divisor > 0 {
		average = totalHours / divisor
	}
	return &domain.WeeklyAnalytics{
		WeekStart:         window.Start(),
		WeekEnd:           window.End,
		DailySummaries:    summaries,
		TotalHours:        totalHours,
		AverageDailyHours: average,
		JobBreakdown:      breakdown,
	}, nil
}

func (s *timeAnalyticsService) buildDailySummary(ctx context.Context, day time.Time, blocks []domain.TimeBlock) domain.DailySummary {
	now := s.now()
	totalHours := 0.0
	jobHours := make(map[string]float64)
	jobNames := make(map[string]string)
	for _, b := range blocks {
		hours := b.Hours(now)
		totalHours += hours
		jobHours[b.JobID] += hours
		jobNames[b.JobID] = b.JobName
	}

	breakdown := make(map[string]domain.JobSummary, len(jobHours))
	for jobID, hours := range jobHours {
		breakdown[jobID] = domain.JobSummary{
			JobID:      jobID,
			JobName:    jobNames[jobID],
			TotalHours: hours,
			Percentage: wholePercent(hours, totalHours),
		}
	}

	return domain.DailySummary{
		Date:         day,
		Blocks:       blocks,
		TotalHours:   totalHours,
		JobBreakdown: breakdown,
	}
}

// filterKnownJobs drops blocks whose job no longer resolves against the
// static job list. Corrupt references degrade the report instead of
// failing it.
func (s *timeAnalyticsService) filterKnownJobs(ctx context.Context, blocks []domain.TimeBlock) []domain.TimeBlock {
	out := blocks[:0:0]
	for _, b := range blocks {
		if _, ok := s.jobs.ByID(b.JobID); !ok {
			s.LogWarn(ctx, "Excluding block with unknown job from analytics",
				slog.String("time_block_id", b.TimeBlockID),
				slog.String("job_id", b.JobID))
			continue
		}
		out = append(out, b)
	}
	return out
}

// wholePercent truncates part's share of total to a whole number of percent.
func wholePercent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return float64(int(part / total * 100))
}
