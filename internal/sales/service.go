package sales

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"sales_tracker/internal/catalog"
)

// Catalog is the slice of the product catalog client the sales flow uses.
type Catalog interface {
	FetchProduct(ctx context.Context, productID int64) (*catalog.Product, error)
	DecrementStock(ctx context.Context, productID, quantity int64) error
}

// CreateSaleRequest carries the raw JSON values of a create-sale request.
// The fields stay untyped so validation can tell a missing field from a
// non-integer one and answer with the right message.
type CreateSaleRequest struct {
	ProductID    any `json:"product_id"`
	QuantitySold any `json:"quantity_sold"`
}

// Service provides high-level sales operations on a Storage backend.
type Service struct {
	storage Storage
	catalog Catalog
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, catalog Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		storage: storage,
		catalog: catalog,
		logger:  logger,
	}
}

// CreateSale validates the request, checks and decrements stock in the
// catalog, and persists the sale for the given caller.
//
// The catalog interaction is two independent calls, not a transaction: the
// stock check can pass on stale data under concurrent requests, and a
// decrement that succeeds before a failed insert is not reversed. Both gaps
// are inherited from the catalog's API, which offers no transactional
// surface, and are accepted rather than papered over with a compensating
// call.
func (s *Service) CreateSale(ctx context.Context, userID int64, req CreateSaleRequest) (*Sale, error) {
	productID, err := validateProductID(req.ProductID)
	if err != nil {
		return nil, err
	}
	quantity, err := validateQuantity(req.QuantitySold)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.FetchProduct(ctx, productID)
	if err != nil {
		s.logger.Error("catalog fetch failed", zap.Int64("product_id", productID), zap.Error(err))
		return nil, err
	}

	var available int64
	if product.Stock != nil {
		available = *product.Stock
	}
	if product.Stock == nil || available < quantity {
		return nil, &InsufficientStockError{
			ProductID: productID,
			Available: available,
			Requested: quantity,
		}
	}

	if err := s.catalog.DecrementStock(ctx, productID, quantity); err != nil {
		s.logger.Error("stock decrement failed",
			zap.Int64("product_id", productID),
			zap.Int64("quantity_sold", quantity),
			zap.Error(err),
		)
		return nil, err
	}

	sale := &Sale{
		UserID:       userID,
		ProductID:    productID,
		QuantitySold: quantity,
		TotalRevenue: product.Price.Mul(decimal.NewFromInt(quantity)).InexactFloat64(),
		SaleDate:     time.Now().UTC(),
	}
	if err := s.storage.Insert(sale); err != nil {
		// The remote stock is already decremented at this point and stays
		// decremented: there is no compensation path.
		s.logger.Error("failed to save sale", zap.Int64("product_id", productID), zap.Error(err))
		return nil, &StorageError{Err: err}
	}

	s.logger.Info("sale created",
		zap.Int64("sale_id", sale.ID),
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
		zap.Int64("quantity_sold", quantity),
		zap.Float64("total_revenue", sale.TotalRevenue),
	)
	return sale, nil
}

// ListSales returns every recorded sale, newest first.
func (s *Service) ListSales() ([]*Sale, error) {
	sales, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to list sales", zap.Error(err))
		return nil, err
	}
	return sales, nil
}

// validateProductID treats a zero product_id like an absent one.
func validateProductID(v any) (int64, error) {
	if v == nil || v == float64(0) {
		return 0, &InvalidInputError{Message: "product_id is required."}
	}
	return positiveInt(v, "product_id must be a positive integer.")
}

func validateQuantity(v any) (int64, error) {
	if v == nil {
		return 0, &InvalidInputError{Message: "quantity_sold is required."}
	}
	return positiveInt(v, "Quantity sold must be a positive integer.")
}

// positiveInt validates a raw JSON value as a positive integer that fits in
// an int64. JSON numbers decode as float64, so integrality and range are
// checked explicitly before converting.
func positiveInt(v any, invalidMsg string) (int64, error) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f <= 0 || f >= math.MaxInt64 {
		return 0, &InvalidInputError{Message: invalidMsg}
	}
	return int64(f), nil
}
