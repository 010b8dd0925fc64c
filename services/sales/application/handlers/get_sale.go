package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
)

// GetSaleHandler handles GET /sales/{id} requests.
type GetSaleHandler struct {
	svc *appsvcs.Services
}

// NewGetSaleHandler returns a GetSaleHandler backed by the given services.
func NewGetSaleHandler(svc *appsvcs.Services) *GetSaleHandler {
	return &GetSaleHandler{svc: svc}
}

// Execute returns one sale with its client and items.
//
//	@Summary	Get sale
//	@Tags		sales
//	@Produce	json
//	@Param		id	path		int	true	"Sale ID"
//	@Success	200	{object}	SaleResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sales/{id} [get]
func (h *GetSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	sale, err := h.svc.Sales.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSaleResponse(sale))
}
