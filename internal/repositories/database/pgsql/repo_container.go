package pgsql

import (
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository over one connection pool and
// a shared change notifier, so a write through any repository wakes the
// subscriptions watching that table.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	notifier := newChangeNotifier()

	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool, notifier),
		TransactionRepo:  newPgxTransactionRepository(dbPool, notifier),
		TimeBlockRepo:    newPgxTimeBlockRepository(dbPool, notifier),
		StatusUpdateRepo: newPgxStatusUpdateRepository(dbPool, notifier),
	}
}
