package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
)

// ClientHandlers serves the walk-in client endpoints.
type ClientHandlers struct {
	svc *appsvcs.Services
}

// NewClientHandlers returns ClientHandlers backed by the given services.
func NewClientHandlers(svc *appsvcs.Services) *ClientHandlers {
	return &ClientHandlers{svc: svc}
}

// Default returns the walk-in client, creating it on first use.
//
//	@Summary	Default client
//	@Tags		clients
//	@Produce	json
//	@Success	200	{object}	ClientResponse
//	@Router		/clients/default [get]
func (h *ClientHandlers) Default(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.Clients.FindOrCreateDefault(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toClientResponse(*client))
}

// Delete removes a client. The walk-in client and clients with sales are refused.
//
//	@Summary	Delete client
//	@Tags		clients
//	@Param		id	path	int	true	"Client ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/clients/{id} [delete]
func (h *ClientHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Clients.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
