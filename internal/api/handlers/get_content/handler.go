package get_content

import (
	"net/http"
	"strconv"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
)

const msgInvalidLimit = "некорректный параметр limit"

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleUpdates GET /api/v1/updates
func (h *Handler) HandleUpdates(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListUpdates(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /updates - Failed to list updates: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainUpdates(items))
}

// HandlePromotions GET /api/v1/promotions
func (h *Handler) HandlePromotions(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPromotions(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /promotions - Failed to list promotions: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainPromotions(items))
}

// HandleLeaderboard GET /api/v1/leaderboard?game=&limit=
func (h *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /leaderboard - Invalid limit %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	items, err := h.service.ListLeaderboard(r.Context(), game, limit)
	if err != nil {
		h.logger.Error("GET /leaderboard - Failed to list leaderboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromDomainLeaderboard(items))
}
