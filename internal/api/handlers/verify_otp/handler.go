package verify_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	"github.com/m04kA/GameZone-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPhone       = "некорректный номер телефона"
	msgCodeMismatch       = "неверный код"
	msgCodeExpired        = "код истек, запросите новый"
	msgTooManyAttempts    = "слишком много попыток, запросите новый код"
)

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTPResponse HTTP response model
type VerifyOTPResponse struct {
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

// Handle POST /api/v1/auth/otp/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.service.VerifyOTP(r.Context(), req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, auth.ErrCodeMismatch):
			h.logger.Warn("POST /auth/otp/verify - Code mismatch")
			handlers.RespondUnauthorized(w, msgCodeMismatch)

		case errors.Is(err, auth.ErrCodeExpired):
			h.logger.Warn("POST /auth/otp/verify - Code expired")
			handlers.RespondUnauthorized(w, msgCodeExpired)

		case errors.Is(err, auth.ErrTooManyAttempts):
			h.logger.Warn("POST /auth/otp/verify - Too many attempts")
			handlers.RespondTooManyRequests(w, msgTooManyAttempts)

		default:
			h.logger.Error("POST /auth/otp/verify - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, VerifyOTPResponse{Success: true, Token: token})
}
