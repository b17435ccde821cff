package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/andriybobchuk/mooney/internal/dto"
	"github.com/andriybobchuk/mooney/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	rates          domain.ExchangeRates
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, rates domain.ExchangeRates) *accountHandler {
	return &accountHandler{accountService: as, rates: rates}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, rates domain.ExchangeRates) {
	h := newAccountHandler(accountService, rates)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}

	rg.GET("/networth", h.getNetWorth)
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account; its starting balance anchors future reconciliation
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create account", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List all accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates title, emoji or balance; a balance edit re-anchors the opening balance
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// getNetWorth godoc
// @Summary Total balance across accounts in a selected currency
// @Produce json
// @Param currency query string false "Currency code (defaults to the base currency)"
// @Success 200 {object} dto.NetWorthResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Router /networth [get]
func (h *accountHandler) getNetWorth(c *gin.Context) {
	selected := domain.Currency(strings.ToUpper(c.DefaultQuery("currency", string(h.rates.Base))))

	total, err := h.accountService.NetWorth(c.Request.Context(), selected)
	if err != nil {
		respondServiceError(c, err, "Failed to compute net worth")
		return
	}

	c.JSON(http.StatusOK, dto.NetWorthResponse{
		Total:        total,
		CurrencyCode: string(selected),
		Formatted:    domain.FormatAmount(total, selected),
	})
}
