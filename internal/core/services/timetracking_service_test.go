package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/core/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/andriybobchuk/mooney/internal/refdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type TimeTrackingServiceTestSuite struct {
	suite.Suite
	mockTimeBlockRepo    *MockTimeBlockRepository
	mockStatusUpdateRepo *MockStatusUpdateRepository
	service              portssvc.TimeTrackingSvcFacade
	now                  time.Time
}

func (suite *TimeTrackingServiceTestSuite) SetupTest() {
	suite.mockTimeBlockRepo = new(MockTimeBlockRepository)
	suite.mockStatusUpdateRepo = new(MockStatusUpdateRepository)
	suite.now = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewTimeTrackingService(
		suite.mockTimeBlockRepo,
		suite.mockStatusUpdateRepo,
		refdata.DefaultJobs(),
		services.WithTrackingClock(func() time.Time { return suite.now }),
	)
}

// --- Test Cases ---

func (suite *TimeTrackingServiceTestSuite) TestStartTracking_Success() {
	ctx := context.Background()

	suite.mockTimeBlockRepo.On("FindActiveTimeBlock", ctx).Return(nil, nil).Once()
	suite.mockTimeBlockRepo.On("SaveTimeBlock", ctx, mock.MatchedBy(func(b domain.TimeBlock) bool {
		return b.JobID == "rivian" && b.JobName == "Rivian" && b.IsActive() && b.StartTime.Equal(suite.now)
	})).Return(nil).Once()

	block, err := suite.service.StartTracking(ctx, "rivian")

	suite.Require().NoError(err)
	suite.Require().NotNil(block)
	suite.NotEmpty(block.TimeBlockID)
	suite.mockTimeBlockRepo.AssertExpectations(suite.T())
}

func (suite *TimeTrackingServiceTestSuite) TestStartTracking_ConflictNamesRunningJob() {
	ctx := context.Background()
	active := &domain.TimeBlock{
		TimeBlockID: uuid.NewString(),
		JobID:       "plato",
		JobName:     "Plato",
		StartTime:   suite.now.Add(-time.Hour),
	}

	suite.mockTimeBlockRepo.On("FindActiveTimeBlock", ctx).Return(active, nil).Once()

	_, err := suite.service.StartTracking(ctx, "rivian")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTrackingConflict)
	suite.Contains(err.Error(), "Plato")
	suite.mockTimeBlockRepo.AssertNotCalled(suite.T(), "SaveTimeBlock", mock.Anything, mock.Anything)
}

func (suite *TimeTrackingServiceTestSuite) TestStartTracking_UnknownJob() {
	ctx := context.Background()

	_, err := suite.service.StartTracking(ctx, "nope")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTimeBlockRepo.AssertNotCalled(suite.T(), "FindActiveTimeBlock", mock.Anything)
}

func (suite *TimeTrackingServiceTestSuite) TestStopTracking_ClosesActiveBlock() {
	ctx := context.Background()
	active := &domain.TimeBlock{
		TimeBlockID: uuid.NewString(),
		JobID:       "rivian",
		JobName:     "Rivian",
		StartTime:   suite.now.Add(-2 * time.Hour),
	}

	suite.mockTimeBlockRepo.On("FindActiveTimeBlock", ctx).Return(active, nil).Once()
	suite.mockTimeBlockRepo.On("SaveTimeBlock", ctx, mock.MatchedBy(func(b domain.TimeBlock) bool {
		return b.TimeBlockID == active.TimeBlockID &&
			b.EndTime != nil && b.EndTime.Equal(suite.now) &&
			b.DurationMS != nil && *b.DurationMS == (2*time.Hour).Milliseconds()
	})).Return(nil).Once()

	stopped, err := suite.service.StopTracking(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(stopped)
	suite.False(stopped.IsActive())
	suite.mockTimeBlockRepo.AssertExpectations(suite.T())
}

func (suite *TimeTrackingServiceTestSuite) TestStopTracking_NothingRunning() {
	ctx := context.Background()

	suite.mockTimeBlockRepo.On("FindActiveTimeBlock", ctx).Return(nil, nil).Once()

	stopped, err := suite.service.StopTracking(ctx)

	suite.Require().NoError(err)
	suite.Nil(stopped)
	suite.mockTimeBlockRepo.AssertNotCalled(suite.T(), "SaveTimeBlock", mock.Anything, mock.Anything)
}

func (suite *TimeTrackingServiceTestSuite) TestRepairCrossMidnight_SplitsStaleBlock() {
	ctx := context.Background()
	// Started two days ago at 22:00 and never stopped.
	start := time.Date(2026, time.January, 13, 22, 0, 0, 0, time.UTC)
	active := &domain.TimeBlock{
		TimeBlockID: uuid.NewString(),
		JobID:       "rivian",
		JobName:     "Rivian",
		StartTime:   start,
		Description: "release prep",
	}
	cutoff := time.Date(2026, time.January, 13, 23, 59, 59, 0, time.UTC)

	suite.mockTimeBlockRepo.On("FindActiveTimeBlock", ctx).Return(active, nil).Once()
	suite.mockTimeBlockRepo.On("SplitTimeBlock", ctx,
		mock.MatchedBy(func(completed domain.TimeBlock) bool {
			return completed.TimeBlockID == active.TimeBlockID &&
				completed.EndTime != nil && completed.EndTime.Equal(cutoff) &&
				completed.DurationMS != nil && *completed.DurationMS == cutoff.Sub(start).Milliseconds()
		}),
		mock.MatchedBy(func(continuation domain.TimeBlock) bool {
			return continuation.TimeBlockID != active.TimeBlockID &&
				continuation.JobID == "rivian" &&
				continuation.IsActive() &&
				continuation.StartTime.Equal(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))
		}),
	).Return(nil).Once()

	err := suite.service.RepairCrossMidnight(ctx)

	suite.Require().NoError(err)
	suite.mockTimeBlockRepo.AssertExpectations(suite.T())
}

func (suite *TimeTrackingServiceTestSuite) TestRepairCrossMidnight_SameDayIsNoOp() {
	ctx := context.Background()
	active := &domain.TimeBlock{
		TimeBlockID: uuid.NewString(),
		JobID:       "rivian",
		JobName:     "Rivian",
		StartTime:   suite.now.Add(-3 * time.Hour),
	}

	suite.mockTimeBlockRepo.On("FindActiveTimeBlock", ctx).Return(active, nil).Once()

	err := suite.service.RepairCrossMidnight(ctx)

	suite.Require().NoError(err)
	suite.mockTimeBlockRepo.AssertNotCalled(suite.T(), "SplitTimeBlock", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimeTrackingServiceTestSuite) TestRepairCrossMidnight_NoActiveBlock() {
	ctx := context.Background()

	suite.mockTimeBlockRepo.On("FindActiveTimeBlock", ctx).Return(nil, nil).Once()

	err := suite.service.RepairCrossMidnight(ctx)

	suite.Require().NoError(err)
	suite.mockTimeBlockRepo.AssertNotCalled(suite.T(), "SplitTimeBlock", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TimeTrackingServiceTestSuite) TestUpsertTimeBlock_EndBeforeStart() {
	ctx := context.Background()
	end := suite.now.Add(-time.Hour)
	req := dto.UpsertTimeBlockRequest{
		JobID:     "rivian",
		StartTime: suite.now,
		EndTime:   &end,
	}

	_, err := suite.service.UpsertTimeBlock(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimeTrackingServiceTestSuite) TestUpsertTimeBlock_ComputesDuration() {
	ctx := context.Background()
	start := suite.now.Add(-90 * time.Minute)
	req := dto.UpsertTimeBlockRequest{
		JobID:     "plato",
		StartTime: start,
		EndTime:   &suite.now,
	}

	suite.mockTimeBlockRepo.On("SaveTimeBlock", ctx, mock.MatchedBy(func(b domain.TimeBlock) bool {
		return b.DurationMS != nil && *b.DurationMS == (90*time.Minute).Milliseconds() && b.JobName == "Plato"
	})).Return(nil).Once()

	block, err := suite.service.UpsertTimeBlock(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(block.TimeBlockID)
	suite.mockTimeBlockRepo.AssertExpectations(suite.T())
}

func (suite *TimeTrackingServiceTestSuite) TestUpsertStatusUpdate_CompositeIdentifier() {
	ctx := context.Background()
	req := dto.UpsertStatusUpdateRequest{
		JobID:      "rivian",
		Date:       time.Date(2026, time.January, 15, 18, 45, 0, 0, time.UTC),
		StatusText: "shipped the thing",
	}

	suite.mockStatusUpdateRepo.On("SaveStatusUpdate", ctx, mock.MatchedBy(func(u domain.StatusUpdate) bool {
		return u.StatusUpdateID == "rivian_2026-01-15" &&
			u.JobName == "Rivian" &&
			u.Date.Equal(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)) &&
			u.LastUpdated.Equal(suite.now)
	})).Return(nil).Once()

	update, err := suite.service.UpsertStatusUpdate(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("rivian_2026-01-15", update.StatusUpdateID)
	suite.mockStatusUpdateRepo.AssertExpectations(suite.T())
}

func TestTimeTrackingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeTrackingServiceTestSuite))
}
