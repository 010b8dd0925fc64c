package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/services/sales/domain/models"
)

// SaleItemRequest is one requested line of a sale.
type SaleItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0" example:"3"`
	Quantity  int   `json:"quantity"  validate:"required,gte=1,lte=2147483647" example:"2"`
} // @name SaleItemRequest

// CreateSaleRequest is the request body for POST /sales. Omitting clientId
// selects the walk-in client; omitting total sums the line totals.
type CreateSaleRequest struct {
	ClientID *int64            `json:"clientId,omitempty" validate:"omitempty,gt=0" example:"12"`
	Items    []SaleItemRequest `json:"items"              validate:"required,min=1,dive"`
	Total    *decimal.Decimal  `json:"total,omitempty"    swaggertype:"string" example:"35.00"`
} // @name CreateSaleRequest

// UpdateSaleRequest is the request body for PUT /sales/{id}. Every field is
// optional; items, when present, replace the whole item set.
type UpdateSaleRequest struct {
	ClientID *int64            `json:"clientId,omitempty" validate:"omitempty,gt=0" example:"12"`
	Items    []SaleItemRequest `json:"items,omitempty"    validate:"omitempty,dive"`
	Total    *decimal.Decimal  `json:"total,omitempty"    swaggertype:"string" example:"35.00"`
} // @name UpdateSaleRequest

// ClientResponse is a client as embedded in sale responses.
type ClientResponse struct {
	ID       int64  `json:"id"       example:"12"`
	Name     string `json:"name"     example:"Ada"`
	LastName string `json:"lastName" example:"Lovelace"`
	Email    string `json:"email"    example:"ada@example.com"`
} // @name ClientResponse

// ProductResponse is the current catalog record of a sold product.
type ProductResponse struct {
	ID          int64  `json:"id"          example:"3"`
	Name        string `json:"name"        example:"Espresso"`
	Price       string `json:"price"       example:"2.50"`
	Description string `json:"description" example:"Single shot"`
} // @name ProductResponse

// SaleItemResponse is a persisted line item with its price snapshot.
type SaleItemResponse struct {
	ID          int64           `json:"id"          example:"41"`
	ProductID   int64           `json:"productId"   example:"3"`
	ProductName string          `json:"productName" example:"Espresso"`
	Quantity    int             `json:"quantity"    example:"2"`
	UnitPrice   string          `json:"unitPrice"   example:"2.50"`
	Total       string          `json:"total"       example:"5.00"`
	Product     ProductResponse `json:"product"`
} // @name SaleItemResponse

// SaleResponse is a hydrated sale.
type SaleResponse struct {
	ID     int64              `json:"id"     example:"7"`
	Date   time.Time          `json:"date"   example:"2025-03-15T14:02:11Z"`
	Total  string             `json:"total"  example:"35.00"`
	Client ClientResponse     `json:"client"`
	Items  []SaleItemResponse `json:"items"`
} // @name SaleResponse

// SalePageResponse is one page of GET /sales.
type SalePageResponse struct {
	Data       []SaleResponse `json:"data"`
	Total      int            `json:"total"      example:"42"`
	Page       int            `json:"page"       example:"1"`
	Limit      int            `json:"limit"      example:"10"`
	TotalPages int            `json:"totalPages" example:"5"`
} // @name SalePageResponse

// ProductSalesResponse is one row of the top-selling products report.
type ProductSalesResponse struct {
	ProductID   int64  `json:"productId"   example:"3"`
	ProductName string `json:"productName" example:"Espresso"`
	TotalSold   int64  `json:"totalSold"   example:"120"`
} // @name ProductSalesResponse

// ClientSpendingResponse is one row of the top clients report.
type ClientSpendingResponse struct {
	ClientID   int64  `json:"clientId"   example:"12"`
	ClientName string `json:"clientName" example:"Ada Lovelace"`
	TotalSpent string `json:"totalSpent" example:"1520.00"`
} // @name ClientSpendingResponse

// TopProductResponse is the best seller of one day.
type TopProductResponse struct {
	ProductID   int64  `json:"productId"   example:"3"`
	ProductName string `json:"productName" example:"Espresso"`
	Quantity    int64  `json:"quantity"    example:"18"`
} // @name TopProductResponse

// DailyProductSalesResponse is one calendar-day bucket.
type DailyProductSalesResponse struct {
	Date          string             `json:"date"          example:"2025-03-15"`
	TotalQuantity int64              `json:"totalQuantity" example:"42"`
	TopProduct    TopProductResponse `json:"topProduct"`
} // @name DailyProductSalesResponse

// DashboardResponse is the back-office summary.
type DashboardResponse struct {
	TodaySales        string `json:"todaySales"        example:"310.50"`
	YesterdaySales    string `json:"yesterdaySales"    example:"288.00"`
	CurrentMonthSales string `json:"currentMonthSales" example:"4210.75"`
	LastMonthSales    string `json:"lastMonthSales"    example:"9870.00"`
	TotalClients      int64  `json:"totalClients"      example:"57"`
	TotalProducts     int64  `json:"totalProducts"     example:"23"`
} // @name DashboardResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"sale not found"`
} // @name ErrorResponse

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func lineRequests(items []SaleItemRequest) []models.LineRequest {
	if items == nil {
		return nil
	}
	out := make([]models.LineRequest, len(items))
	for i, item := range items {
		out[i] = models.LineRequest{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return out
}

func toClientResponse(c models.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Name: c.Name, LastName: c.LastName, Email: c.Email}
}

func toSaleResponse(s *models.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   money(item.UnitPrice),
			Total:       money(item.Total),
			Product: ProductResponse{
				ID:          item.Product.ID,
				Name:        item.Product.Name,
				Price:       money(item.Product.Price),
				Description: item.Product.Description,
			},
		}
	}
	return SaleResponse{
		ID:     s.ID,
		Date:   s.Date,
		Total:  money(s.Total),
		Client: toClientResponse(s.Client),
		Items:  items,
	}
}

func toSaleResponses(sales []*models.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = toSaleResponse(s)
	}
	return out
}
