package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the sales domain. Use errors.Is() to check these.
// Every specific error wraps one of the two kinds so callers (and pkg/errhttp)
// can branch on the kind alone.
var (
	// ErrNotFound is the kind shared by every missing-reference error.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is the kind shared by every rejected-input error.
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	// ErrSaleNotFound indicates the requested sale does not exist.
	ErrSaleNotFound = fmt.Errorf("sale %w", ErrNotFound)

	// ErrClientNotFound indicates a referenced client does not exist.
	ErrClientNotFound = fmt.Errorf("client %w", ErrNotFound)

	// ErrProductNotFound indicates a referenced product does not exist.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
)

var (
	// ErrEmptySaleItems indicates a create, or an update carrying items, with an empty item list.
	ErrEmptySaleItems = fmt.Errorf("%w: sale must have at least one item", ErrInvalidArgument)

	// ErrInvalidQuantity indicates a line item quantity below 1 or too large to store.
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be between 1 and 2147483647", ErrInvalidArgument)

	// ErrNegativeTotal indicates a total override below zero.
	ErrNegativeTotal = fmt.Errorf("%w: total must not be negative", ErrInvalidArgument)

	// ErrInvalidDateRange indicates a report range whose start is after its end.
	ErrInvalidDateRange = fmt.Errorf("%w: start date must not be after end date", ErrInvalidArgument)

	// ErrInvalidLimit indicates a ranking limit outside the accepted range.
	ErrInvalidLimit = fmt.Errorf("%w: limit must be between 1 and 100", ErrInvalidArgument)
)

// ErrDefaultClientProtected is returned when deleting the reserved walk-in client.
var ErrDefaultClientProtected = errors.New("default client cannot be deleted")

// ErrClientInUse is returned when deleting a client that sales still reference.
var ErrClientInUse = errors.New("client is referenced by sales")
