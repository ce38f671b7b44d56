package chat_concierge

import (
	"context"
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/internal/infra/storage/conversation"
	"github.com/m04kA/GameZone-BookingService/internal/integrations/llm"
)

// ConversationRepository интерфейс репозитория истории диалогов
type ConversationRepository interface {
	Append(ctx context.Context, msg *conversation.Message) error
	LoadRecent(ctx context.Context, sessionID string, limit int) ([]conversation.Message, error)
}

// Completer интерфейс LLM-провайдера
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// AvailabilityProvider интерфейс для получения занятости слотов на дату.
// Сводка по сегодняшнему дню подмешивается в системный промпт.
type AvailabilityProvider interface {
	SlotsForDate(ctx context.Context, date time.Time) ([]domain.SlotOccupancy, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
