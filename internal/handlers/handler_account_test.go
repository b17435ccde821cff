package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/andriybobchuk/mooney/internal/handlers"
	"github.com/andriybobchuk/mooney/internal/refdata"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) NetWorth(ctx context.Context, selected domain.Currency) (decimal.Decimal, error) {
	args := m.Called(ctx, selected)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) UpsertTransaction(ctx context.Context, req dto.UpsertTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
func (m *MockLedgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) ListTransactionsForMonth(ctx context.Context, month domain.MonthKey) ([]domain.Transaction, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) RecomputeBalances(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) MonthlyReport(ctx context.Context, month domain.MonthKey) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

var _ portssvc.AnalyticsSvcFacade = (*MockAnalyticsService)(nil)

// --- Mock TimeTrackingService ---
type MockTimeTrackingService struct {
	mock.Mock
}

func (m *MockTimeTrackingService) StartTracking(ctx context.Context, jobID string) (*domain.TimeBlock, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeBlock), args.Error(1)
}
func (m *MockTimeTrackingService) StopTracking(ctx context.Context) (*domain.TimeBlock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeBlock), args.Error(1)
}
func (m *MockTimeTrackingService) GetActiveTimeBlock(ctx context.Context) (*domain.TimeBlock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeBlock), args.Error(1)
}
func (m *MockTimeTrackingService) RepairCrossMidnight(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTimeTrackingService) UpsertTimeBlock(ctx context.Context, req dto.UpsertTimeBlockRequest) (*domain.TimeBlock, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeBlock), args.Error(1)
}
func (m *MockTimeTrackingService) DeleteTimeBlock(ctx context.Context, timeBlockID string) error {
	args := m.Called(ctx, timeBlockID)
	return args.Error(0)
}
func (m *MockTimeTrackingService) ListTimeBlocksByDate(ctx context.Context, date time.Time) ([]domain.TimeBlock, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeBlock), args.Error(1)
}
func (m *MockTimeTrackingService) Jobs(ctx context.Context) []domain.Job {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job)
}
func (m *MockTimeTrackingService) UpsertStatusUpdate(ctx context.Context, req dto.UpsertStatusUpdateRequest) (*domain.StatusUpdate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusUpdate), args.Error(1)
}
func (m *MockTimeTrackingService) ListStatusUpdatesByDate(ctx context.Context, date time.Time) ([]domain.StatusUpdate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusUpdate), args.Error(1)
}
func (m *MockTimeTrackingService) DeleteStatusUpdate(ctx context.Context, statusUpdateID string) error {
	args := m.Called(ctx, statusUpdateID)
	return args.Error(0)
}

var _ portssvc.TimeTrackingSvcFacade = (*MockTimeTrackingService)(nil)

// --- Mock TimeAnalyticsService ---
type MockTimeAnalyticsService struct {
	mock.Mock
}

func (m *MockTimeAnalyticsService) DailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}
func (m *MockTimeAnalyticsService) WeeklyAnalytics(ctx context.Context, end time.Time) (*domain.WeeklyAnalytics, error) {
	args := m.Called(ctx, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyAnalytics), args.Error(1)
}
func (m *MockTimeAnalyticsService) LastNDaysAnalytics(ctx context.Context, end time.Time, n int) (*domain.WeeklyAnalytics, error) {
	args := m.Called(ctx, end, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyAnalytics), args.Error(1)
}

var _ portssvc.TimeAnalyticsSvcFacade = (*MockTimeAnalyticsService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockLedgerService  *MockLedgerService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)

	services := &portssvc.ServiceContainer{
		Account:       suite.mockAccountService,
		Ledger:        suite.mockLedgerService,
		Analytics:     new(MockAnalyticsService),
		TimeTracking:  new(MockTimeTrackingService),
		TimeAnalytics: new(MockTimeAnalyticsService),
	}

	rates := domain.NewExchangeRates(domain.PLN, map[domain.Currency]decimal.Decimal{
		domain.USD: decimal.RequireFromString("0.27"),
	})
	handlers.RegisterRoutes(suite.router, services, refdata.DefaultCategories(), rates)
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	accountID := uuid.NewString()
	expected := &domain.Account{
		AccountID:      accountID,
		Title:          "Cash",
		CurrencyCode:   domain.PLN,
		Balance:        decimal.RequireFromString("100"),
		OpeningBalance: decimal.RequireFromString("100"),
		Emoji:          "💵",
	}

	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Title == "Cash" && req.CurrencyCode == "PLN" && req.Balance.Equal(decimal.RequireFromString("100"))
		}),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Title:        "Cash",
		CurrencyCode: "PLN",
		Balance:      decimal.RequireFromString("100"),
		Emoji:        "💵",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(accountID, responseBody.AccountID)
	suite.Equal("PLN", responseBody.CurrencyCode)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_RejectsUnknownCurrency() {
	// "GBP" fails the currencycode binding validator before the service runs.
	body, _ := json.Marshal(dto.CreateAccountRequest{
		Title:        "Offshore",
		CurrencyCode: "GBP",
		Balance:      decimal.RequireFromString("10"),
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestNetWorth_DefaultsToBaseCurrency() {
	total := decimal.RequireFromString("1234.56")
	suite.mockAccountService.On("NetWorth", mock.Anything, domain.PLN).
		Return(total, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/networth", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.NetWorthResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal("PLN", responseBody.CurrencyCode)
	suite.Equal("1,234.56 zł", responseBody.Formatted)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestNetWorth_UnsupportedCurrency() {
	suite.mockAccountService.On("NetWorth", mock.Anything, domain.Currency("GBP")).
		Return(decimal.Zero, apperrors.ErrValidation).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/networth?currency=gbp", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListTransactions_InvalidMonth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?year=2026&month=13", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListTransactionsForMonth")
}

func (suite *AccountHandlerTestSuite) TestListTransactions_ExplicitMonth() {
	month := domain.MonthKey{Year: 2026, Month: time.March}
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			CategoryID:    "groceries",
			AccountID:     uuid.NewString(),
			Amount:        decimal.RequireFromString("42.50"),
			Date:          time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	suite.mockLedgerService.On("ListTransactionsForMonth", mock.Anything, month).
		Return(txns, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?year=2026&month=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody []dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody, 1)
	suite.Equal("2026-03-10", responseBody[0].Date)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
