package chat

import (
	"context"

	chatConcierge "github.com/m04kA/GameZone-BookingService/internal/usecase/chat_concierge"
)

type ChatUseCase interface {
	Execute(ctx context.Context, req *chatConcierge.Request) (*chatConcierge.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
