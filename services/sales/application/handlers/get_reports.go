package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
)

// ReportHandlers serves the read-only /sales/reports endpoints.
type ReportHandlers struct {
	svc *appsvcs.Services
}

// NewReportHandlers returns ReportHandlers backed by the given services.
func NewReportHandlers(svc *appsvcs.Services) *ReportHandlers {
	return &ReportHandlers{svc: svc}
}

// SalesByDate returns the sales dated within a range.
//
//	@Summary		Sales by date range
//	@Description	Both bounds are inclusive; a bare endDate covers the whole day
//	@Tags			reports
//	@Produce		json
//	@Param			startDate	query		string	true	"RFC 3339 or YYYY-MM-DD"
//	@Param			endDate		query		string	true	"RFC 3339 or YYYY-MM-DD"
//	@Success		200			{array}		SaleResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/sales/reports/by-date [get]
func (h *ReportHandlers) SalesByDate(w http.ResponseWriter, r *http.Request) {
	start, end, err := queryRange(r, h.svc.Reports.Location())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, err := h.svc.Reports.SalesByDateRange(r.Context(), start, end)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSaleResponses(sales))
}

// TopProducts ranks products by units sold.
//
//	@Summary	Top selling products
//	@Tags		reports
//	@Produce	json
//	@Param		limit	query		int	false	"Number of rows (max 100)"	default(10)
//	@Success	200		{array}		ProductSalesResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/sales/reports/top-products [get]
func (h *ReportHandlers) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	rows, err := h.svc.Reports.TopSellingProducts(r.Context(), limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ProductSalesResponse, len(rows))
	for i, row := range rows {
		out[i] = ProductSalesResponse{ProductID: row.ProductID, ProductName: row.ProductName, TotalSold: row.TotalSold}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// TopClients ranks clients by total spent. The walk-in client is never listed.
//
//	@Summary	Top clients
//	@Tags		reports
//	@Produce	json
//	@Param		limit	query		int	false	"Number of rows (max 100)"	default(10)
//	@Success	200		{array}		ClientSpendingResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/sales/reports/top-clients [get]
func (h *ReportHandlers) TopClients(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	rows, err := h.svc.Reports.TopClients(r.Context(), limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ClientSpendingResponse, len(rows))
	for i, row := range rows {
		out[i] = ClientSpendingResponse{ClientID: row.ClientID, ClientName: row.ClientName, TotalSpent: money(row.TotalSpent)}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ProductSalesByDate returns per-day quantities and each day's best seller.
//
//	@Summary	Product sales by day
//	@Tags		reports
//	@Produce	json
//	@Param		startDate	query		string	true	"RFC 3339 or YYYY-MM-DD"
//	@Param		endDate		query		string	true	"RFC 3339 or YYYY-MM-DD"
//	@Success	200			{array}		DailyProductSalesResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/sales/reports/product-sales-by-date [get]
func (h *ReportHandlers) ProductSalesByDate(w http.ResponseWriter, r *http.Request) {
	start, end, err := queryRange(r, h.svc.Reports.Location())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	days, err := h.svc.Reports.ProductSalesByDate(r.Context(), start, end)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]DailyProductSalesResponse, len(days))
	for i, day := range days {
		out[i] = DailyProductSalesResponse{
			Date:          day.Date.Format(time.DateOnly),
			TotalQuantity: day.TotalQuantity,
			TopProduct: TopProductResponse{
				ProductID:   day.TopProduct.ProductID,
				ProductName: day.TopProduct.ProductName,
				Quantity:    day.TopProduct.Quantity,
			},
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Dashboard returns the back-office summary.
//
//	@Summary	Dashboard statistics
//	@Tags		reports
//	@Produce	json
//	@Success	200	{object}	DashboardResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/sales/reports/dashboard [get]
func (h *ReportHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Reports.DashboardStats(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DashboardResponse{
		TodaySales:        money(stats.TodaySales),
		YesterdaySales:    money(stats.YesterdaySales),
		CurrentMonthSales: money(stats.CurrentMonthSales),
		LastMonthSales:    money(stats.LastMonthSales),
		TotalClients:      stats.TotalClients,
		TotalProducts:     stats.TotalProducts,
	})
}
