package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	"github.com/m04kA/GameZone-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
)

// AdminLoginRequest HTTP request model
type AdminLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AdminLoginResponse HTTP response model
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.service.AdminLogin(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/admin/login - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AdminLoginResponse{Success: true, Token: token})
}
