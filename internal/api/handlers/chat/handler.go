package chat

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	chatConcierge "github.com/m04kA/GameZone-BookingService/internal/usecase/chat_concierge"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyMessage       = "сообщение не может быть пустым"
	msgEmptySession       = "не указан идентификатор сессии"
	msgMessageTooLong     = "сообщение слишком длинное"
	msgConciergeBusy      = "консьерж сейчас недоступен, попробуйте позже"
)

// ChatRequest HTTP request model
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse HTTP response model
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}

type Handler struct {
	useCase ChatUseCase
	logger  Logger
}

func NewHandler(useCase ChatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &chatConcierge.Request{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, chatConcierge.ErrEmptySession):
			handlers.RespondBadRequest(w, msgEmptySession)

		case errors.Is(err, chatConcierge.ErrEmptyMessage):
			handlers.RespondBadRequest(w, msgEmptyMessage)

		case errors.Is(err, chatConcierge.ErrMessageTooLong):
			handlers.RespondBadRequest(w, msgMessageTooLong)

		case errors.Is(err, chatConcierge.ErrCompletion):
			h.logger.Error("POST /chat - Completion failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgConciergeBusy)

		default:
			h.logger.Error("POST /chat - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ChatResponse{
		SessionID: result.SessionID,
		Reply:     result.Reply,
	})
}
