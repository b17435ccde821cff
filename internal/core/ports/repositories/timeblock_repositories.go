package repositories

import (
	"context"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// TimeBlockReader defines read operations for time block data.
type TimeBlockReader interface {
	// FindTimeBlockByID retrieves a time block by its unique identifier.
	FindTimeBlockByID(ctx context.Context, timeBlockID string) (*domain.TimeBlock, error)

	// FindActiveTimeBlock retrieves the block with no end time, or nil when
	// nothing is being tracked.
	FindActiveTimeBlock(ctx context.Context) (*domain.TimeBlock, error)

	// ListTimeBlocksByDateRange retrieves blocks whose start date falls in
	// [start, end], both calendar days inclusive.
	ListTimeBlocksByDateRange(ctx context.Context, start, end time.Time) ([]domain.TimeBlock, error)
}

// TimeBlockWriter defines write operations for time block data.
type TimeBlockWriter interface {
	// SaveTimeBlock persists a new block or overwrites an existing one by ID.
	SaveTimeBlock(ctx context.Context, block domain.TimeBlock) error

	// SplitTimeBlock atomically updates the completed block and inserts its
	// continuation, so no reader ever observes a state with the original
	// block closed but the continuation missing.
	SplitTimeBlock(ctx context.Context, completed, continuation domain.TimeBlock) error

	// DeleteTimeBlock removes a block. Deleting a missing block is a no-op.
	DeleteTimeBlock(ctx context.Context, timeBlockID string) error
}

// TimeBlockSubscriber delivers push-based query results for time blocks.
type TimeBlockSubscriber interface {
	// SubscribeActiveTimeBlock delivers the currently active block (nil when
	// none), re-delivering on every time_blocks write. Closed on ctx cancel.
	SubscribeActiveTimeBlock(ctx context.Context) (<-chan *domain.TimeBlock, error)

	// SubscribeTimeBlocksByDateRange delivers the blocks in the given range,
	// re-delivering on every time_blocks write. Closed on ctx cancel.
	SubscribeTimeBlocksByDateRange(ctx context.Context, start, end time.Time) (<-chan []domain.TimeBlock, error)
}

// TimeBlockRepositoryFacade combines all time block repository interfaces.
type TimeBlockRepositoryFacade interface {
	TimeBlockReader
	TimeBlockWriter
	TimeBlockSubscriber
}
