package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatusUpdateRepository struct {
	BaseRepository
	notifier *changeNotifier
}

// newPgxStatusUpdateRepository creates a new repository for status update data.
func newPgxStatusUpdateRepository(pool *pgxpool.Pool, notifier *changeNotifier) portsrepo.StatusUpdateRepositoryFacade {
	return &PgxStatusUpdateRepository{BaseRepository: BaseRepository{Pool: pool}, notifier: notifier}
}

// Ensure PgxStatusUpdateRepository implements portsrepo.StatusUpdateRepositoryFacade
var _ portsrepo.StatusUpdateRepositoryFacade = (*PgxStatusUpdateRepository)(nil)

const statusUpdateColumns = `status_update_id, job_id, job_name, update_date, status_text, last_updated`

func scanStatusUpdate(row pgx.Row) (domain.StatusUpdate, error) {
	var u domain.StatusUpdate
	err := row.Scan(&u.StatusUpdateID, &u.JobID, &u.JobName, &u.Date, &u.StatusText, &u.LastUpdated)
	return u, err
}

// SaveStatusUpdate persists an update, overwriting by its composite ID so a
// second update for the same (job, day) replaces the first.
func (r *PgxStatusUpdateRepository) SaveStatusUpdate(ctx context.Context, update domain.StatusUpdate) error {
	query := `
		INSERT INTO status_updates (status_update_id, job_id, job_name, update_date, status_text, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (status_update_id) DO UPDATE SET
			status_text = EXCLUDED.status_text,
			last_updated = EXCLUDED.last_updated;
	`
	_, err := r.Pool.Exec(ctx, query,
		update.StatusUpdateID,
		update.JobID,
		update.JobName,
		update.Date,
		update.StatusText,
		update.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to save status update %s: %w", update.StatusUpdateID, err)
	}

	r.notifier.notify(tableStatusUpdates)
	return nil
}

func (r *PgxStatusUpdateRepository) FindStatusUpdateByJobAndDate(ctx context.Context, jobID string, date time.Time) (*domain.StatusUpdate, error) {
	query := `SELECT ` + statusUpdateColumns + ` FROM status_updates WHERE status_update_id = $1;`

	id := domain.StatusUpdateID(jobID, domain.DayOf(date))
	update, err := scanStatusUpdate(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: status update %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find status update %s: %w", id, err)
	}
	return &update, nil
}

func (r *PgxStatusUpdateRepository) ListStatusUpdatesByDate(ctx context.Context, date time.Time) ([]domain.StatusUpdate, error) {
	query := `SELECT ` + statusUpdateColumns + ` FROM status_updates WHERE update_date = $1 ORDER BY job_id;`

	rows, err := r.Pool.Query(ctx, query, domain.DayOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list status updates: %w", err)
	}
	defer rows.Close()

	updates := make([]domain.StatusUpdate, 0)
	for rows.Next() {
		update, err := scanStatusUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status update row: %w", err)
		}
		updates = append(updates, update)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status update rows: %w", err)
	}
	return updates, nil
}

func (r *PgxStatusUpdateRepository) DeleteStatusUpdate(ctx context.Context, statusUpdateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM status_updates WHERE status_update_id = $1;`, statusUpdateID)
	if err != nil {
		return fmt.Errorf("failed to delete status update %s: %w", statusUpdateID, err)
	}
	if tag.RowsAffected() > 0 {
		r.notifier.notify(tableStatusUpdates)
	}
	return nil
}

func (r *PgxStatusUpdateRepository) SubscribeStatusUpdatesByDate(ctx context.Context, date time.Time) (<-chan []domain.StatusUpdate, error) {
	return watch(ctx, r.notifier, tableStatusUpdates, func(ctx context.Context) ([]domain.StatusUpdate, error) {
		return r.ListStatusUpdatesByDate(ctx, date)
	})
}
