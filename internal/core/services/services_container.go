package services

import (
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The reference data (rates, category tree, job list) is fixed for the
// lifetime of the container.
func NewServiceContainer(repos portsrepo.RepositoryProvider, rates domain.ExchangeRates, categories *domain.CategorySet, jobs *domain.JobSet, enableBurnRate bool) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, rates)

	// The ledger goes through the account repository too: it resolves
	// accounts while computing balance deltas.
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.AccountRepo, categories)

	container.Analytics = NewAnalyticsService(
		repos.TransactionRepo,
		repos.AccountRepo,
		categories,
		rates,
		StandardCalculators(enableBurnRate),
	)

	container.TimeTracking = NewTimeTrackingService(repos.TimeBlockRepo, repos.StatusUpdateRepo, jobs)
	container.TimeAnalytics = NewTimeAnalyticsService(repos.TimeBlockRepo, jobs)

	return container
}
