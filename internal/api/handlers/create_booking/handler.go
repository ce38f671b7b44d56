package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/GameZone-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotConflict       = "выбранное устройство уже занято на это время"
	msgPricingUnavailable = "для выбранной комбинации нет цены, бронирование не создано"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *createBooking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %d violations", len(validationErr.Messages))
			handlers.RespondValidationErrors(w, validationErr.Messages)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: date=%s, time=%s", req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrPricingLookup):
			h.logger.Error("POST /bookings - Pricing lookup failed: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricingUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, total=%d",
		result.ID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
