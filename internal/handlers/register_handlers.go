package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/andriybobchuk/mooney/internal/core/domain"
	portssvc "github.com/andriybobchuk/mooney/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	categories *domain.CategorySet,
	rates domain.ExchangeRates,
) {
	registerValidators(rates)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", GetHome)

	setupAPIV1Routes(r, services, categories, rates)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	categories *domain.CategorySet,
	rates domain.ExchangeRates,
) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Account, rates)
	registerTransactionRoutes(v1, services.Ledger)
	registerCategoryRoutes(v1, categories)
	registerAnalyticsRoutes(v1, services.Analytics)
	registerTimeTrackingRoutes(v1, services.TimeTracking)
	registerTimeAnalyticsRoutes(v1, services.TimeAnalytics)
}

// registerValidators installs custom binding validators on gin's validator
// engine.
func registerValidators(rates domain.ExchangeRates) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return rates.Has(domain.Currency(strings.ToUpper(fl.Field().String())))
		})
	}
}

// respondServiceError maps service errors onto HTTP statuses: validation
// problems are the client's fault, missing resources are 404, a tracking
// clash is a conflict, anything else is a 500 with a generic message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrMissingRate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTrackingConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
