package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
	domain "github.com/ghuser/backoffice/services/sales/domain"
)

// DeleteSaleHandler handles DELETE /sales/{id} requests.
type DeleteSaleHandler struct {
	svc *appsvcs.Services
}

// NewDeleteSaleHandler returns a DeleteSaleHandler backed by the given services.
func NewDeleteSaleHandler(svc *appsvcs.Services) *DeleteSaleHandler {
	return &DeleteSaleHandler{svc: svc}
}

// Execute deletes a sale and its items.
//
//	@Summary	Delete sale
//	@Tags		sales
//	@Param		id	path	int	true	"Sale ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sales/{id} [delete]
func (h *DeleteSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	existed, err := h.svc.Sales.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !existed {
		errhttp.WriteError(w, domain.ErrSaleNotFound)
		return
	}

	httpx.NoContent(w)
}
