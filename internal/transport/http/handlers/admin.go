package http_handlers

import (
	"net/http"

	"github.com/legislate-ai/core-service/internal/application/auth"
	"github.com/legislate-ai/core-service/internal/domain"
	"github.com/legislate-ai/core-service/internal/logger"
	"github.com/legislate-ai/core-service/internal/transport/http/dto"
	"github.com/legislate-ai/core-service/internal/transport/http/response"
)

// AdminHandler serves the oversight surface: platform stats, the
// pending-approval queue, and verification decisions.
type AdminHandler struct {
	svc *auth.Service
}

func NewAdminHandler(svc *auth.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Stats(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.StatsData{
		TotalUsers:      counts.TotalUsers,
		VerifiedNgos:    counts.VerifiedNgos,
		VerifiedLawyers: counts.VerifiedLawyers,
		Individuals:     counts.Individuals,
	})
}

func (h *AdminHandler) Pending(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.svc.ListPendingApprovals(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.PendingApprovalsData{
		Ngos:    dto.NewUserViews(approvals.Ngos),
		Lawyers: dto.NewUserViews(approvals.Lawyers),
	})
}

func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Decide(r.Context(), req.UserID, domain.Status(req.Action))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", u.ID).
		Str("status", string(u.Status)).
		Msg("verification_decided")
	response.OK(w, dto.MeData{User: dto.NewUserView(u)})
}
