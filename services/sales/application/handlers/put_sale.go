package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
)

// PutSaleHandler handles PUT /sales/{id} requests.
type PutSaleHandler struct {
	svc *appsvcs.Services
}

// NewPutSaleHandler returns a PutSaleHandler backed by the given services.
func NewPutSaleHandler(svc *appsvcs.Services) *PutSaleHandler {
	return &PutSaleHandler{svc: svc}
}

// Execute updates a sale.
//
//	@Summary		Update sale
//	@Description	Reassigns the client, replaces the item set and/or overrides the total
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Sale ID"
//	@Param			request	body		UpdateSaleRequest	true	"Sale update request"
//	@Success		200		{object}	SaleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/sales/{id} [put]
func (h *PutSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateSaleRequest](w, r)
	if !ok {
		return
	}

	sale, err := h.svc.Sales.Update(r.Context(), id, appsvcs.UpdateSaleInput{
		ClientID: req.ClientID,
		Items:    lineRequests(req.Items),
		Total:    req.Total,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSaleResponse(sale))
}
