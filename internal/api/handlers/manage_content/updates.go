package manage_content

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	contentService "github.com/m04kA/GameZone-BookingService/internal/service/content"
)

// HandleCreateUpdate POST /api/v1/admin/updates
func (h *Handler) HandleCreateUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/updates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateUpdate(r.Context(), req.ToDomain(0))
	if err != nil {
		if errors.Is(err, contentService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/updates - Failed to create update: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, IDResponse{Success: true, ID: created.ID})
}

// HandleListUpdates GET /api/v1/admin/updates
// Админ видит и неопубликованные записи
func (h *Handler) HandleListUpdates(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListUpdates(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/updates - Failed to list updates: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainUpdates(items))
}

// HandleUpdateUpdate PUT /api/v1/admin/updates/{id}
func (h *Handler) HandleUpdateUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondInvalidID(w, "PUT /admin/updates/{id}")
		return
	}

	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/updates/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateUpdate(r.Context(), req.ToDomain(id)); err != nil {
		switch {
		case errors.Is(err, contentService.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, contentService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /admin/updates/{id} - Failed to update id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// HandleDeleteUpdate DELETE /api/v1/admin/updates/{id}
func (h *Handler) HandleDeleteUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondInvalidID(w, "DELETE /admin/updates/{id}")
		return
	}

	if err := h.service.DeleteUpdate(r.Context(), id); err != nil {
		if errors.Is(err, contentService.ErrNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/updates/{id} - Failed to delete id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
