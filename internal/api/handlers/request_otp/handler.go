package request_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	"github.com/m04kA/GameZone-BookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPhone       = "некорректный номер телефона"
	msgRateLimited        = "слишком много запросов кода, попробуйте позже"
	msgSendFailed         = "не удалось отправить код, попробуйте позже"
)

// RequestOTPRequest HTTP request model
type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

// RequestOTPResponse HTTP response model
type RequestOTPResponse struct {
	Success bool `json:"success"`
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

// Handle POST /api/v1/auth/otp/request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.RequestOTP(r.Context(), req.Phone); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPhone):
			h.logger.Warn("POST /auth/otp/request - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, auth.ErrRateLimited):
			h.logger.Warn("POST /auth/otp/request - Rate limited")
			handlers.RespondTooManyRequests(w, msgRateLimited)

		case errors.Is(err, auth.ErrSendFailed):
			h.logger.Error("POST /auth/otp/request - Send failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /auth/otp/request - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RequestOTPResponse{Success: true})
}
