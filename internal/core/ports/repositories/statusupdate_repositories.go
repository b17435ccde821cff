package repositories

import (
	"context"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// StatusUpdateReader defines read operations for status update data.
type StatusUpdateReader interface {
	// FindStatusUpdateByJobAndDate retrieves the update for a (job, day) pair.
	FindStatusUpdateByJobAndDate(ctx context.Context, jobID string, date time.Time) (*domain.StatusUpdate, error)

	// ListStatusUpdatesByDate retrieves all updates written for a calendar day.
	ListStatusUpdatesByDate(ctx context.Context, date time.Time) ([]domain.StatusUpdate, error)
}

// StatusUpdateWriter defines write operations for status update data.
type StatusUpdateWriter interface {
	// SaveStatusUpdate persists an update, overwriting by its composite ID.
	SaveStatusUpdate(ctx context.Context, update domain.StatusUpdate) error

	// DeleteStatusUpdate removes an update. Missing IDs are a no-op.
	DeleteStatusUpdate(ctx context.Context, statusUpdateID string) error
}

// StatusUpdateSubscriber delivers push-based query results for status updates.
type StatusUpdateSubscriber interface {
	// SubscribeStatusUpdatesByDate delivers the updates for a day,
	// re-delivering on every status_updates write. Closed on ctx cancel.
	SubscribeStatusUpdatesByDate(ctx context.Context, date time.Time) (<-chan []domain.StatusUpdate, error)
}

// StatusUpdateRepositoryFacade combines all status update repository interfaces.
type StatusUpdateRepositoryFacade interface {
	StatusUpdateReader
	StatusUpdateWriter
	StatusUpdateSubscriber
}
