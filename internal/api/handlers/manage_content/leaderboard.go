package manage_content

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	contentService "github.com/m04kA/GameZone-BookingService/internal/service/content"
)

const msgInvalidRecordedOn = "некорректная дата результата, ожидается YYYY-MM-DD"

// HandleCreateLeaderboardEntry POST /api/v1/admin/leaderboard
func (h *Handler) HandleCreateLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	var req LeaderboardEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/leaderboard - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := req.ToDomain(0)
	if err != nil {
		h.logger.Warn("POST /admin/leaderboard - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordedOn)
		return
	}

	created, err := h.service.CreateLeaderboardEntry(r.Context(), entry)
	if err != nil {
		if errors.Is(err, contentService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/leaderboard - Failed to create entry: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, IDResponse{Success: true, ID: created.ID})
}

// HandleUpdateLeaderboardEntry PUT /api/v1/admin/leaderboard/{id}
func (h *Handler) HandleUpdateLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondInvalidID(w, "PUT /admin/leaderboard/{id}")
		return
	}

	var req LeaderboardEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/leaderboard/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := req.ToDomain(id)
	if err != nil {
		h.logger.Warn("PUT /admin/leaderboard/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordedOn)
		return
	}

	if err := h.service.UpdateLeaderboardEntry(r.Context(), entry); err != nil {
		switch {
		case errors.Is(err, contentService.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, contentService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /admin/leaderboard/{id} - Failed to update id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// HandleDeleteLeaderboardEntry DELETE /api/v1/admin/leaderboard/{id}
func (h *Handler) HandleDeleteLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.respondInvalidID(w, "DELETE /admin/leaderboard/{id}")
		return
	}

	if err := h.service.DeleteLeaderboardEntry(r.Context(), id); err != nil {
		if errors.Is(err, contentService.ErrNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/leaderboard/{id} - Failed to delete id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
