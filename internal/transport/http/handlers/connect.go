package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/legislate-ai/core-service/internal/application/connect"
	"github.com/legislate-ai/core-service/internal/domain"
	"github.com/legislate-ai/core-service/internal/logger"
	"github.com/legislate-ai/core-service/internal/transport/http/dto"
	"github.com/legislate-ai/core-service/internal/transport/http/middleware"
	"github.com/legislate-ai/core-service/internal/transport/http/response"
)

// ConnectHandler serves the provider directory and the connection
// request lifecycle.
type ConnectHandler struct {
	svc *connect.Service
}

func NewConnectHandler(svc *connect.Service) *ConnectHandler {
	return &ConnectHandler{svc: svc}
}

// Users lists verified providers of the requested role. The role
// query parameter is mandatory and must name a provider role.
func (h *ConnectHandler) Users(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(r.URL.Query().Get("role"))
	if !role.IsProvider() {
		response.WriteError(w, r, domain.ErrInvalidField("role", "must be one of: ngo lawyer"))
		return
	}

	providers, err := h.svc.ListProviders(r.Context(), role)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.UsersData{Users: dto.NewUserViews(providers)})
}

func (h *ConnectHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.CreateRequestRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	cr, err := h.svc.CreateRequest(r.Context(), u, req.TargetID, domain.Role(req.TargetRole))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("request_id", cr.ID).
		Int64("target_id", cr.TargetID).
		Msg("request_created")
	response.Created(w, dto.RequestData{Request: dto.NewRequestView(cr)})
}

// Assigned lists requests addressed to the authenticated provider,
// joined with each requester's profile.
func (h *ConnectHandler) Assigned(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	rows, err := h.svc.ListAssigned(r.Context(), u)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.RequestsData{Requests: dto.NewRequestViews(rows, dto.SideRequester)})
}

// Mine lists requests the authenticated individual has sent, joined
// with each target's profile.
func (h *ConnectHandler) Mine(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	rows, err := h.svc.ListMine(r.Context(), u)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.RequestsData{Requests: dto.NewRequestViews(rows, dto.SideTarget)})
}

func (h *ConnectHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("id", "must be a numeric request id"))
		return
	}

	var req dto.ResolveRequestRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	cr, err := h.svc.Resolve(r.Context(), u, requestID, domain.RequestStatus(req.Status))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("request_id", cr.ID).
		Str("status", string(cr.Status)).
		Msg("request_resolved")
	response.OK(w, dto.RequestData{Request: dto.NewRequestView(cr)})
}

// Connections lists accepted requests from either side, joined with
// the counterpart's profile.
func (h *ConnectHandler) Connections(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	rows, err := h.svc.ListConnections(r.Context(), u)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ConnectionsData{Connections: dto.NewRequestViews(rows, dto.SideParty)})
}
