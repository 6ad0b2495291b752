package http

import (
	"errors"
	"net/http"

	"github.com/dkovac/vnetman/internal/domain"
)

// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	err := encode(w, r, http.StatusOK, map[string]string{
		"service": serviceName,
		"version": serviceVersion,
		"status":  "healthy",
	})
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "store unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.Health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "store ping failed", "err", err.Error())
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Create network
// @Tags networks
// @Accept json
// @Produce json
// @Param network body CreateNetworkRequest true "Network payload"
// @Success 201 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/networks [post]
// @Security BearerAuth
func (a *API) handleCreateNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[CreateNetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling network from request", "err", err.Error())
		a.writeError(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request", Code: "validation_error"})
		return
	}

	network, err := a.Service.CreateNetwork(ctx, req.toSpec())
	if err != nil {
		a.writeDomainError(w, r, err)
		return
	}

	if err := encode(w, r, http.StatusCreated, networkToResponse(network)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Get network by name
// @Tags networks
// @Produce json
// @Param name path string true "Network name"
// @Success 200 {object} NetworkResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks/{name} [get]
// @Security BearerAuth
func (a *API) handleGetNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	network, err := a.Service.GetNetwork(ctx, name)
	if err != nil {
		a.writeDomainError(w, r, err)
		return
	}

	if err := encode(w, r, http.StatusOK, networkToResponse(network)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary List networks
// @Tags networks
// @Produce json
// @Success 200 {array} NetworkListItem
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks [get]
// @Security BearerAuth
func (a *API) handleListNetworks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	networks, err := a.Service.ListNetworks(ctx)
	if err != nil {
		a.writeDomainError(w, r, err)
		return
	}

	if err := encode(w, r, http.StatusOK, networksToList(networks)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Delete network
// @Tags networks
// @Param name path string true "Network name"
// @Success 204 "No content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/networks/{name} [delete]
// @Security BearerAuth
func (a *API) handleDeleteNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	if err := a.Service.DeleteNetwork(ctx, name); err != nil {
		a.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForErr(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	a.writeError(w, r, status, ErrorResponse{Error: message, Code: domain.Code(err)})
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	if err := encode(w, r, status, resp); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

func statusForErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrProviderRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrProviderUnavailable), errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
