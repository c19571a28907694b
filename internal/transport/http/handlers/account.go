package http_handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/user-account-service/internal/application/account"
	"github.com/baechuer/user-account-service/internal/domain"
	"github.com/baechuer/user-account-service/internal/logger"
	"github.com/baechuer/user-account-service/internal/transport/http/dto"
	"github.com/baechuer/user-account-service/internal/transport/http/middleware"
	"github.com/baechuer/user-account-service/internal/transport/http/response"
)

type AccountHandler struct {
	svc *account.Service
}

func NewAccountHandler(svc *account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// Login answers the uniform "Invalid username/password" for every
// credential failure. Note the status: failures leave as 200, the
// contract this API's clients were built against.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	user := dto.PublicUserFrom(res.User)
	response.OK(w, dto.MessageResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    &user,
	})
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	// req.Role is deliberately dropped here; Register always stores
	// the user role.
	res, err := h.svc.Register(r.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Str("user_name", res.User.UserName).
		Msg("user_registered")

	response.OK(w, dto.MessageResponse{
		Message: "user created",
		Token:   res.Token,
	})
}

func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.PublicUsersFrom(users))
}

func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		response.WriteError(w, r, domain.ErrMissingField("id"))
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.PublicUserFrom(u))
}

func (h *AccountHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.UpdateUserRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.UpdateSelf(r.Context(), userID, req.Patch())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_updated")

	user := dto.PublicUserFrom(res.User)
	response.OK(w, dto.MessageResponse{
		Message: "user updated",
		Token:   res.Token,
		User:    &user,
	})
}

func (h *AccountHandler) DeleteSelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	res, err := h.svc.DeleteSelf(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_deleted")

	user := dto.PublicUserFrom(res.User)
	response.OK(w, dto.MessageResponse{
		Message: "user deleted",
		Token:   res.Token,
		User:    &user,
	})
}

func (h *AccountHandler) CheckToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	res, err := h.svc.CheckToken(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	user := dto.PublicUserFrom(res.User)
	response.OK(w, dto.MessageResponse{
		Message: "valid token",
		Token:   res.Token,
		User:    &user,
	})
}
