package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/andriybobchuk/mooney/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.upsertTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	rg.POST("/maintenance/recompute-balances", h.recomputeBalances)
}

// monthFromQuery resolves the ?year= and ?month= query params, defaulting to
// the current month when both are absent.
func monthFromQuery(c *gin.Context) (domain.MonthKey, bool) {
	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr == "" && monthStr == "" {
		return domain.CurrentMonth(time.Now()), true
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return domain.MonthKey{}, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return domain.MonthKey{}, false
	}
	return domain.MonthKey{Year: year, Month: time.Month(month)}, true
}

// upsertTransaction godoc
// @Summary Create or overwrite a transaction
// @Description Writes a transaction by ID, reconciling the affected account balances
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.UpsertTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to save transaction"
// @Router /transactions [post]
func (h *transactionHandler) upsertTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.UpsertTransaction(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to save transaction", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to save transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions for a month
// @Produce json
// @Param year query int false "Year (defaults to the current month)"
// @Param month query int false "Month, 1-12"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	month, ok := monthFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or month query parameter"})
		return
	}

	txns, err := h.ledgerService.ListTransactionsForMonth(c.Request.Context(), month)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Reverses the transaction's balance effect and removes it; unknown IDs succeed
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// recomputeBalances godoc
// @Summary Rebuild every account balance from its transactions
// @Description Audit action: balance = opening balance + net signed effect of all transactions
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to recompute balances"
// @Router /maintenance/recompute-balances [post]
func (h *transactionHandler) recomputeBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.ledgerService.RecomputeBalances(c.Request.Context()); err != nil {
		logger.Error("Failed to recompute balances", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to recompute balances")
		return
	}
	c.Status(http.StatusNoContent)
}
