package models

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the scale of every stored amount (NUMERIC(12,2)).
const moneyPlaces = 2

// MaxQuantity is the largest quantity a line item can store.
const MaxQuantity = math.MaxInt32

// Sale is the core aggregate: one completed transaction with a client,
// its line items and a total.
type Sale struct {
	ID       int64
	Date     time.Time
	ClientID int64
	Client   Client // hydrated on read
	Items    []LineItem
	Total    decimal.Decimal
}

// LineItem is one product/quantity entry owned by a Sale. UnitPrice and
// ProductName are copied from the product when the item is written and are
// never re-derived from Product afterwards.
type LineItem struct {
	ID          int64
	SaleID      int64
	ProductID   int64
	ProductName string
	Product     Product // current catalog record, hydrated on read
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// LineRequest is a caller-supplied item before pricing.
type LineRequest struct {
	ProductID int64
	Quantity  int
}

// NewLineItem prices quantity units of product at its current price.
// Quantity is assumed validated (>= 1).
func NewLineItem(product Product, quantity int) LineItem {
	unit := RoundMoney(product.Price)
	return LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Product:     product,
		Quantity:    quantity,
		UnitPrice:   unit,
		Total:       RoundMoney(unit.Mul(decimal.NewFromInt(int64(quantity)))),
	}
}

// NewSale constructs an unsaved Sale dated at now (UTC).
func NewSale(client Client, items []LineItem, total decimal.Decimal, now time.Time) *Sale {
	return &Sale{
		Date:     now.UTC(),
		ClientID: client.ID,
		Client:   client,
		Items:    items,
		Total:    RoundMoney(total),
	}
}

// RoundMoney rounds d to the stored currency scale.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}
