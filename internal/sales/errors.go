package sales

import "fmt"

// InvalidInputError reports a request rejected by validation before any
// remote call was made. Message is user-facing.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

// InsufficientStockError reports a stock check that failed against the
// catalog's reported quantity. No decrement call is made and no row is
// written when this is returned.
type InsufficientStockError struct {
	ProductID int64
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for product ID %d. Available: %d, Requested: %d.",
		e.ProductID, e.Available, e.Requested)
}

// StorageError wraps a failure to persist a sale.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "failed to store sale: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
