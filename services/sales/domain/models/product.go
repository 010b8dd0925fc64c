package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. Price is the current list price; sales copy it
// into line items at sale time.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
}
