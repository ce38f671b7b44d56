package manage_content

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный ID записи"
	msgInvalidInput       = "некорректные данные"
	msgNotFound           = "запись не найдена"
)

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

// pathID достает числовой {id} из URL
func pathID(r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondIDError единообразно отвечает на некорректный ID
func (h *Handler) respondInvalidID(w http.ResponseWriter, route string) {
	h.logger.Warn("%s - Invalid record ID", route)
	handlers.RespondBadRequest(w, msgInvalidID)
}
