package manage_content

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	contentService "github.com/m04kA/GameZone-BookingService/internal/service/content"
)

const msgInvalidPromotionDates = "некорректные даты акции, ожидается YYYY-MM-DD"

// HandleCreatePromotion POST /api/v1/admin/promotions
func (h *Handler) HandleCreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req PromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promotions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	promo, err := req.ToDomain(0)
	if err != nil {
		h.logger.Warn("POST /admin/promotions - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionDates)
		return
	}

	created, err := h.service.CreatePromotion(r.Context(), promo)
	if err != nil {
		if errors.Is(err, contentService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/promotions - Failed to create promotion: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, IDResponse{Success: true, ID: created.ID})
}

// HandleListPromotions GET /api/v1/admin/promotions
func (h *Handler) HandleListPromotions(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPromotions(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/promotions - Failed to list promotions: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainPromotions(items))
}

// HandleUpdatePromotion PUT /api/v1/admin/promotions/{id}
func (h *Handler) HandleUpdatePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondInvalidID(w, "PUT /admin/promotions/{id}")
		return
	}

	var req PromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/promotions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	promo, err := req.ToDomain(id)
	if err != nil {
		h.logger.Warn("PUT /admin/promotions/{id} - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionDates)
		return
	}

	if err := h.service.UpdatePromotion(r.Context(), promo); err != nil {
		switch {
		case errors.Is(err, contentService.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, contentService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /admin/promotions/{id} - Failed to update id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// HandleDeletePromotion DELETE /api/v1/admin/promotions/{id}
func (h *Handler) HandleDeletePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondInvalidID(w, "DELETE /admin/promotions/{id}")
		return
	}

	if err := h.service.DeletePromotion(r.Context(), id); err != nil {
		if errors.Is(err, contentService.ErrNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/promotions/{id} - Failed to delete id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
