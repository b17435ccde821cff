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

type PgxTimeBlockRepository struct {
	BaseRepository
	notifier *changeNotifier
}

// newPgxTimeBlockRepository creates a new repository for time block data.
func newPgxTimeBlockRepository(pool *pgxpool.Pool, notifier *changeNotifier) portsrepo.TimeBlockRepositoryFacade {
	return &PgxTimeBlockRepository{BaseRepository: BaseRepository{Pool: pool}, notifier: notifier}
}

// Ensure PgxTimeBlockRepository implements portsrepo.TimeBlockRepositoryFacade
var _ portsrepo.TimeBlockRepositoryFacade = (*PgxTimeBlockRepository)(nil)

const timeBlockColumns = `time_block_id, job_id, job_name, start_time, end_time, duration_ms, effectiveness, description`

func scanTimeBlock(row pgx.Row) (domain.TimeBlock, error) {
	var b domain.TimeBlock
	var effectiveness *string
	err := row.Scan(&b.TimeBlockID, &b.JobID, &b.JobName, &b.StartTime, &b.EndTime, &b.DurationMS, &effectiveness, &b.Description)
	if effectiveness != nil {
		e := domain.Effectiveness(*effectiveness)
		b.Effectiveness = &e
	}
	return b, err
}

func effectivenessArg(b domain.TimeBlock) *string {
	if b.Effectiveness == nil {
		return nil
	}
	s := string(*b.Effectiveness)
	return &s
}

const saveTimeBlockQuery = `
	INSERT INTO time_blocks (time_block_id, job_id, job_name, start_time, end_time, duration_ms, effectiveness, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (time_block_id) DO UPDATE SET
		job_id = EXCLUDED.job_id,
		job_name = EXCLUDED.job_name,
		start_time = EXCLUDED.start_time,
		end_time = EXCLUDED.end_time,
		duration_ms = EXCLUDED.duration_ms,
		effectiveness = EXCLUDED.effectiveness,
		description = EXCLUDED.description;
`

// SaveTimeBlock persists a new block or overwrites an existing one by ID.
func (r *PgxTimeBlockRepository) SaveTimeBlock(ctx context.Context, block domain.TimeBlock) error {
	_, err := r.Pool.Exec(ctx, saveTimeBlockQuery,
		block.TimeBlockID,
		block.JobID,
		block.JobName,
		block.StartTime,
		block.EndTime,
		block.DurationMS,
		effectivenessArg(block),
		block.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to save time block %s: %w", block.TimeBlockID, err)
	}

	r.notifier.notify(tableTimeBlocks)
	return nil
}

// SplitTimeBlock writes the completed block and its continuation in one DB
// transaction, so no reader observes the original closed without the
// continuation existing.
func (r *PgxTimeBlockRepository) SplitTimeBlock(ctx context.Context, completed, continuation domain.TimeBlock) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, block := range []domain.TimeBlock{completed, continuation} {
		if _, err := tx.Exec(ctx, saveTimeBlockQuery,
			block.TimeBlockID,
			block.JobID,
			block.JobName,
			block.StartTime,
			block.EndTime,
			block.DurationMS,
			effectivenessArg(block),
			block.Description,
		); err != nil {
			return fmt.Errorf("failed to write split block %s: %w", block.TimeBlockID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	r.notifier.notify(tableTimeBlocks)
	return nil
}

func (r *PgxTimeBlockRepository) FindTimeBlockByID(ctx context.Context, timeBlockID string) (*domain.TimeBlock, error) {
	query := `SELECT ` + timeBlockColumns + ` FROM time_blocks WHERE time_block_id = $1;`

	block, err := scanTimeBlock(r.Pool.QueryRow(ctx, query, timeBlockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: time block %s", apperrors.ErrNotFound, timeBlockID)
		}
		return nil, fmt.Errorf("failed to find time block %s: %w", timeBlockID, err)
	}
	return &block, nil
}

// FindActiveTimeBlock returns the open block, or nil when nothing is being
// tracked.
func (r *PgxTimeBlockRepository) FindActiveTimeBlock(ctx context.Context) (*domain.TimeBlock, error) {
	query := `SELECT ` + timeBlockColumns + ` FROM time_blocks WHERE end_time IS NULL ORDER BY start_time DESC LIMIT 1;`

	block, err := scanTimeBlock(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active time block: %w", err)
	}
	return &block, nil
}

func (r *PgxTimeBlockRepository) ListTimeBlocksByDateRange(ctx context.Context, start, end time.Time) ([]domain.TimeBlock, error) {
	query := `SELECT ` + timeBlockColumns + ` FROM time_blocks WHERE start_time >= $1 AND start_time < $2 ORDER BY start_time;`

	rows, err := r.Pool.Query(ctx, query, domain.DayOf(start), domain.DayOf(end).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list time blocks: %w", err)
	}
	defer rows.Close()

	blocks := make([]domain.TimeBlock, 0)
	for rows.Next() {
		block, err := scanTimeBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time block row: %w", err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time block rows: %w", err)
	}
	return blocks, nil
}

func (r *PgxTimeBlockRepository) DeleteTimeBlock(ctx context.Context, timeBlockID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM time_blocks WHERE time_block_id = $1;`, timeBlockID)
	if err != nil {
		return fmt.Errorf("failed to delete time block %s: %w", timeBlockID, err)
	}
	if tag.RowsAffected() > 0 {
		r.notifier.notify(tableTimeBlocks)
	}
	return nil
}

func (r *PgxTimeBlockRepository) SubscribeActiveTimeBlock(ctx context.Context) (<-chan *domain.TimeBlock, error) {
	return watch(ctx, r.notifier, tableTimeBlocks, r.FindActiveTimeBlock)
}

func (r *PgxTimeBlockRepository) SubscribeTimeBlocksByDateRange(ctx context.Context, start, end time.Time) (<-chan []domain.TimeBlock, error) {
	return watch(ctx, r.notifier, tableTimeBlocks, func(ctx context.Context) ([]domain.TimeBlock, error) {
		return r.ListTimeBlocksByDateRange(ctx, start, end)
	})
}
