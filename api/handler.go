package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_tracker/internal/catalog"
	"sales_tracker/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for
// sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateSale handles the POST /sales endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req sales.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Request body cannot be empty."})
		return
	}

	userID := ctx.GetInt64(userIDKey)
	sale, err := h.salesService.CreateSale(ctx.Request.Context(), userID, req)
	if err != nil {
		h.logger.Error("failed to create sale", zap.Int64("user_id", userID), zap.Error(err))
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// handleListSales handles the GET /sales endpoint. Listing is not filtered
// by caller: any authenticated caller sees all sales.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	salesList, err := h.salesService.ListSales()
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database error listing sales",
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, salesList)
}

// writeError translates a create-sale failure into one HTTP response.
// Catalog statuses without a specific mapping are passed through unchanged.
func (h *salesHandler) writeError(ctx *gin.Context, err error) {
	var (
		invalidInput *sales.InvalidInputError
		noStock      *sales.InsufficientStockError
		storageErr   *sales.StorageError
		notFound     *catalog.ProductNotFoundError
		statusErr    *catalog.StatusError
		authErr      *catalog.AuthError
	)
	switch {
	case errors.As(err, &invalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": invalidInput.Message})
	case errors.As(err, &noStock):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": noStock.Error()})
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	case errors.As(err, &authErr):
		ctx.JSON(http.StatusForbidden, gin.H{
			"message": "Failed to update product stock in catalog: " + authErr.Body,
		})
	case errors.As(err, &statusErr):
		message := "Error fetching product from catalog: " + statusErr.Body
		if statusErr.Op == catalog.OpPurchase {
			message = "Failed to update product stock in catalog: " + statusErr.Body
		}
		ctx.JSON(statusErr.StatusCode, gin.H{"message": message})
	case errors.Is(err, catalog.ErrUnreachable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"message": "Could not connect to Product Catalog API. Please ensure it is running.",
		})
	case errors.Is(err, catalog.ErrInconsistent):
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Product price not available from catalog.",
		})
	case errors.As(err, &storageErr):
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": "Database error storing sale",
			"error":   storageErr.Err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred."})
	}
}
