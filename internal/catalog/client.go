package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// ErrUnreachable is returned when the catalog service cannot be reached.
var ErrUnreachable = errors.New("catalog service unreachable")

// ErrInconsistent is returned when a successful catalog response is missing
// the price or carries one that cannot be parsed.
var ErrInconsistent = errors.New("catalog response missing product price")

// Op identifies which catalog call produced an error.
type Op string

const (
	OpFetch    Op = "fetch"
	OpPurchase Op = "purchase"
)

// ProductNotFoundError is returned when the catalog has no product with the
// requested id.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %d not found in catalog.", e.ProductID)
}

// StatusError reports a non-success catalog response with no more specific
// mapping. The status is passed through to the caller unchanged.
type StatusError struct {
	Op         Op
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// AuthError reports a rejected API key on the purchase endpoint.
type AuthError struct {
	Body string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("catalog rejected API key: %s", e.Body)
}

// Product is the slice of the catalog's product representation the sales
// flow needs. Stock is nil when the catalog omits stock_quantity.
type Product struct {
	Price decimal.Decimal
	Stock *int64
}

// Client performs calls against the external product catalog service.
// Every call is a single attempt: no retries, no circuit breaking, and no
// timeout beyond the transport default.
type Client struct {
	http   *resty.Client
	apiKey string
	logger *zap.Logger
}

// NewClient creates a catalog client for the given base URL. The API key
// authenticates purchase calls only.
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Client{
		http:   resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
		logger: logger,
	}
}

// productPayload mirrors the catalog's product JSON. The price arrives as
// decimal text (or a bare number from older catalog versions), so it is
// decoded loosely and parsed afterwards.
type productPayload struct {
	Price         any    `json:"price"`
	StockQuantity *int64 `json:"stock_quantity"`
}

// FetchProduct retrieves price and stock for a product.
func (c *Client) FetchProduct(ctx context.Context, productID int64) (*Product, error) {
	var payload productPayload
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/products/%d/", productID))
	if err != nil {
		c.logger.Error("catalog fetch failed", zap.Int64("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, &ProductNotFoundError{ProductID: productID}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &StatusError{Op: OpFetch, StatusCode: res.StatusCode(), Body: res.String()}
	}

	price, err := parsePrice(payload.Price)
	if err != nil {
		c.logger.Error("catalog returned unusable price",
			zap.Int64("product_id", productID),
			zap.Any("price", payload.Price),
			zap.Error(err),
		)
		return nil, err
	}

	return &Product{Price: price, Stock: payload.StockQuantity}, nil
}

// DecrementStock records a purchase of quantity units against the product,
// authenticated with the static API key.
func (c *Client) DecrementStock(ctx context.Context, productID, quantity int64) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Api-Key "+c.apiKey).
		SetBody(map[string]int64{"quantity": quantity}).
		Post(fmt.Sprintf("/products/%d/purchase/", productID))
	if err != nil {
		c.logger.Error("catalog purchase failed", zap.Int64("product_id", productID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	switch res.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusForbidden:
		return &AuthError{Body: res.String()}
	default:
		return &StatusError{Op: OpPurchase, StatusCode: res.StatusCode(), Body: res.String()}
	}
}

func parsePrice(v any) (decimal.Decimal, error) {
	switch p := v.(type) {
	case string:
		d, err := decimal.NewFromString(p)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: bad price %q", ErrInconsistent, p)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(p), nil
	case nil:
		return decimal.Zero, ErrInconsistent
	default:
		return decimal.Zero, fmt.Errorf("%w: bad price %v", ErrInconsistent, v)
	}
}
