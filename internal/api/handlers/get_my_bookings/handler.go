package get_my_bookings

import (
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	"github.com/m04kA/GameZone-BookingService/internal/api/middleware"
)

const msgMissingPhone = "в токене отсутствует телефон"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/my/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone, ok := middleware.GetPhone(r.Context())
	if !ok {
		h.logger.Warn("GET /my/bookings - Missing phone in token")
		handlers.RespondUnauthorized(w, msgMissingPhone)
		return
	}

	result, err := h.service.GetByPhone(r.Context(), phone)
	if err != nil {
		h.logger.Error("GET /my/bookings - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
