package repositories

import "errors"

var (
	// ErrProductNotFound reports a stock mutation against a product id
	// that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock reports that a conditional stock decrement
	// matched no row: the requested quantity exceeds the current stock.
	// Nothing is mutated in that case.
	ErrInsufficientStock = errors.New("insufficient product stock")

	// ErrInvalidStatusTransition reports an order status change that is
	// not an edge of the order lifecycle.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)
