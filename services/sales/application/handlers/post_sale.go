package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
)

// PostSaleHandler handles POST /sales requests.
type PostSaleHandler struct {
	svc *appsvcs.Services
}

// NewPostSaleHandler returns a PostSaleHandler backed by the given services.
func NewPostSaleHandler(svc *appsvcs.Services) *PostSaleHandler {
	return &PostSaleHandler{svc: svc}
}

// Execute records a new sale.
//
//	@Summary		Create sale
//	@Description	Prices the items at current product prices and stores the sale atomically
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSaleRequest	true	"Sale creation request"
//	@Success		201		{object}	SaleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/sales [post]
func (h *PostSaleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSaleRequest](w, r)
	if !ok {
		return
	}

	sale, err := h.svc.Sales.Create(r.Context(), appsvcs.CreateSaleInput{
		ClientID: req.ClientID,
		Items:    lineRequests(req.Items),
		Total:    req.Total,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Created(w, fmt.Sprintf("%s/%d", strings.TrimSuffix(r.URL.Path, "/"), sale.ID), toSaleResponse(sale))
}
