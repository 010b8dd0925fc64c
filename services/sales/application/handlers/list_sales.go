package handlers

import (
	"net/http"
	"strings"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
	domainsvcs "github.com/ghuser/backoffice/services/sales/domain/services"
)

// ListSalesHandler handles GET /sales requests.
type ListSalesHandler struct {
	svc *appsvcs.Services
}

// NewListSalesHandler returns a ListSalesHandler backed by the given services.
func NewListSalesHandler(svc *appsvcs.Services) *ListSalesHandler {
	return &ListSalesHandler{svc: svc}
}

// Execute returns a page of sales, newest first.
//
//	@Summary		List sales
//	@Description	q matches the sale id or the client's name or last name
//	@Tags			sales
//	@Produce		json
//	@Param			page	query		int		false	"1-based page"		default(1)
//	@Param			limit	query		int		false	"Page size (max 100)"	default(10)
//	@Param			q		query		string	false	"Search text"
//	@Success		200		{object}	SalePageResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/sales [get]
func (h *ListSalesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err == nil {
		err = domainsvcs.ValidateLimit(limit)
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	page := queryPage(r)

	sales, total, err := h.svc.Sales.List(r.Context(), repositories.QueryOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
		Search: strings.TrimSpace(r.URL.Query().Get("q")),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SalePageResponse{
		Data:       toSaleResponses(sales),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	})
}
