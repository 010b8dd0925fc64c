package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxReportLimit caps the number of rows a ranking report returns.
const MaxReportLimit = 100

// DateRange is a report window. Whether End is inclusive depends on the
// query using it; see the repository method docs.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ProductSales is one row of the top-selling products ranking.
type ProductSales struct {
	ProductID   int64
	ProductName string
	TotalSold   int64
}

// ClientSpending is one row of the top-clients ranking.
type ClientSpending struct {
	ClientID   int64
	ClientName string
	TotalSpent decimal.Decimal
}

// QuantityLine is a single sold line as seen by the daily breakdown:
// when it was sold, what, and how many.
type QuantityLine struct {
	SaleDate    time.Time
	SaleID      int64
	ProductID   int64
	ProductName string
	Quantity    int64
}

// TopProduct is the best seller within one day bucket.
type TopProduct struct {
	ProductID   int64
	ProductName string
	Quantity    int64
}

// DailyProductSales is one calendar-day bucket of the product breakdown.
type DailyProductSales struct {
	Date          time.Time
	TotalQuantity int64
	TopProduct    TopProduct
}

// DashboardStats is the back-office summary.
type DashboardStats struct {
	TodaySales        decimal.Decimal
	YesterdaySales    decimal.Decimal
	CurrentMonthSales decimal.Decimal
	LastMonthSales    decimal.Decimal
	TotalClients      int64
	TotalProducts     int64
}
