package services_test

import (
	"context"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	portsrepo "github.com/andriybobchuk/mooney/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance, openingBalance decimal.Decimal) error {
	args := m.Called(ctx, accountID, balance, openingBalance)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) SubscribeAccounts(ctx context.Context) (<-chan []domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []domain.Account), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceDeltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, balanceDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, transactionID, balanceDeltas)
	return args.Error(0)
}

func (m *MockTransactionRepository) SubscribeTransactions(ctx context.Context) (<-chan []domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []domain.Transaction), args.Error(1)
}

// --- Mock TimeBlockRepository ---
type MockTimeBlockRepository struct {
	mock.Mock
}

// Ensure MockTimeBlockRepository implements portsrepo.TimeBlockRepositoryFacade
var _ portsrepo.TimeBlockRepositoryFacade = (*MockTimeBlockRepository)(nil)

func (m *MockTimeBlockRepository) FindTimeBlockByID(ctx context.Context, timeBlockID string) (*domain.TimeBlock, error) {
	args := m.Called(ctx, timeBlockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeBlock), args.Error(1)
}

func (m *MockTimeBlockRepository) FindActiveTimeBlock(ctx context.Context) (*domain.TimeBlock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeBlock), args.Error(1)
}

func (m *MockTimeBlockRepository) ListTimeBlocksByDateRange(ctx context.Context, start, end time.Time) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeBlock), args.Error(1)
}

func (m *MockTimeBlockRepository) SaveTimeBlock(ctx context.Context, block domain.TimeBlock) error {
	args := m.Called(ctx, block)
	return args.Error(0)
}

func (m *MockTimeBlockRepository) SplitTimeBlock(ctx context.Context, completed, continuation domain.TimeBlock) error {
	args := m.Called(ctx, completed, continuation)
	return args.Error(0)
}

func (m *MockTimeBlockRepository) DeleteTimeBlock(ctx context.Context, timeBlockID string) error {
	args := m.Called(ctx, timeBlockID)
	return args.Error(0)
}

func (m *MockTimeBlockRepository) SubscribeActiveTimeBlock(ctx context.Context) (<-chan *domain.TimeBlock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *domain.TimeBlock), args.Error(1)
}

func (m *MockTimeBlockRepository) SubscribeTimeBlocksByDateRange(ctx context.Context, start, end time.Time) (<-chan []domain.TimeBlock, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []domain.TimeBlock), args.Error(1)
}

// --- Mock StatusUpdateRepository ---
type MockStatusUpdateRepository struct {
	mock.Mock
}

// Ensure MockStatusUpdateRepository implements portsrepo.StatusUpdateRepositoryFacade
var _ portsrepo.StatusUpdateRepositoryFacade = (*MockStatusUpdateRepository)(nil)

func (m *MockStatusUpdateRepository) FindStatusUpdateByJobAndDate(ctx context.Context, jobID string, date time.Time) (*domain.StatusUpdate, error) {
	args := m.Called(ctx, jobID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusUpdate), args.Error(1)
}

func (m *MockStatusUpdateRepository) ListStatusUpdatesByDate(ctx context.Context, date time.Time) ([]domain.StatusUpdate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusUpdate), args.Error(1)
}

func (m *MockStatusUpdateRepository) SaveStatusUpdate(ctx context.Context, update domain.StatusUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockStatusUpdateRepository) DeleteStatusUpdate(ctx context.Context, statusUpdateID string) error {
	args := m.Called(ctx, statusUpdateID)
	return args.Error(0)
}

func (m *MockStatusUpdateRepository) SubscribeStatusUpdatesByDate(ctx context.Context, date time.Time) (<-chan []domain.StatusUpdate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []domain.StatusUpdate), args.Error(1)
}
