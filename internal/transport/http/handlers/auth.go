package http_handlers

import (
	"net/http"

	"github.com/legislate-ai/core-service/internal/application/auth"
	"github.com/legislate-ai/core-service/internal/domain"
	"github.com/legislate-ai/core-service/internal/logger"
	"github.com/legislate-ai/core-service/internal/transport/http/dto"
	"github.com/legislate-ai/core-service/internal/transport/http/middleware"
	"github.com/legislate-ai/core-service/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// writeLogin renders either a token payload or the provider "pending"
// signal. Pending is a 200, not an error: the client routes to a
// waiting screen.
func writeLogin(w http.ResponseWriter, res auth.LoginResult) {
	if res.Pending {
		response.OK(w, dto.PendingData{
			Status:  string(domain.StatusPending),
			Message: "Pending verification",
		})
		return
	}
	response.OK(w, dto.AuthData{Token: res.Token, User: dto.NewUserView(res.User)})
}

// -------- Admin --------

func (h *AuthHandler) AdminSetupTotp(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminSetupTotpRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	totp, err := h.svc.AdminSetupTotp(r.Context(), req.UID, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().Msg("admin_totp_configured")
	response.OK(w, dto.TotpData{Totp: dto.NewTotpView(totp)})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.AdminLogin(r.Context(), req.AdminName, req.Password, req.OTP)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", res.User.ID).
		Msg("admin_logged_in")
	writeLogin(w, res)
}

func (h *AuthHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminCreateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.AdminCreate(r.Context(), req.AdminName, req.UID, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", res.User.ID).
		Msg("admin_created")
	response.Created(w, dto.RegisterData{
		User: dto.NewUserView(res.User),
		Totp: dto.NewTotpView(res.Totp),
	})
}

// -------- NGO --------

func (h *AuthHandler) NgoRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.NgoRegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.RegisterNgo(r.Context(), req.RegistrationNumber, req.Name, req.Email)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", res.User.ID).
		Msg("ngo_registered")
	response.Created(w, dto.RegisterData{
		User: dto.NewUserView(res.User),
		Totp: dto.NewTotpView(res.Totp),
	})
}

func (h *AuthHandler) NgoLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.NgoLoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ProviderLogin(r.Context(), domain.RoleNgo, req.RegistrationNumber, req.OTP)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	writeLogin(w, res)
}

// -------- Lawyer --------

func (h *AuthHandler) LawyerRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.LawyerRegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.RegisterLawyer(r.Context(), req.Name, req.EnrollmentNumber, req.Email, req.ContactNumber)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", res.User.ID).
		Msg("lawyer_registered")
	response.Created(w, dto.RegisterData{
		User: dto.NewUserView(res.User),
		Totp: dto.NewTotpView(res.Totp),
	})
}

func (h *AuthHandler) LawyerLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LawyerLoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ProviderLogin(r.Context(), domain.RoleLawyer, req.ContactNumber, req.OTP)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	writeLogin(w, res)
}

// -------- Individual --------

func (h *AuthHandler) IndividualRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.IndividualRegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.RegisterIndividual(r.Context(), req.Name, req.ContactNumber, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", res.User.ID).
		Msg("individual_registered")
	response.Created(w, dto.AuthData{Token: res.Token, User: dto.NewUserView(res.User)})
}

func (h *AuthHandler) IndividualLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.IndividualLoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.IndividualLogin(r.Context(), req.Name, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	writeLogin(w, res)
}

// -------- Me --------

// Me returns the live user record loaded by the auth middleware, not
// the token snapshot.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}
	response.OK(w, dto.MeData{User: dto.NewUserView(u)})
}
