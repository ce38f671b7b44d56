package chat_concierge

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/internal/infra/storage/conversation"
	"github.com/m04kA/GameZone-BookingService/internal/integrations/llm"
)

const (
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
)

// UseCase use case диалога с AI-консьержем
type UseCase struct {
	conversations ConversationRepository
	completer     Completer
	availability  AvailabilityProvider
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	conversations ConversationRepository,
	completer Completer,
	availability AvailabilityProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		conversations: conversations,
		completer:     completer,
		availability:  availability,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет одну реплику диалога: сохраняет сообщение пользователя,
// собирает контекст (системный промпт + последние реплики), запрашивает
// LLM и сохраняет ответ.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация запроса
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, ErrEmptySession
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if len([]rune(message)) > maxMessageLength {
		return nil, ErrMessageTooLong
	}

	uc.logger.Info("ChatConcierge: session=%s, len=%d", req.SessionID, len(message))

	// 2. Сохраняем реплику пользователя до обращения к провайдеру:
	// история диалога полнее любого одиночного ответа
	userMsg := &conversation.Message{
		SessionID: req.SessionID,
		Role:      roleUser,
		Body:      message,
	}
	if err := uc.conversations.Append(ctx, userMsg); err != nil {
		uc.logger.Error("ChatConcierge: failed to append user message: %v", err)
		return nil, fmt.Errorf("%w: failed to append user message: %v", ErrInternal, err)
	}

	// 3. Собираем контекст модели
	history, err := uc.conversations.LoadRecent(ctx, req.SessionID, historyLimit)
	if err != nil {
		uc.logger.Error("ChatConcierge: failed to load history: %v", err)
		return nil, fmt.Errorf("%w: failed to load history: %v", ErrInternal, err)
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: roleSystem, Content: uc.systemPrompt(ctx)})
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Body})
	}

	// 4. Запрашиваем LLM
	reply, err := uc.completer.Complete(ctx, messages)
	if err != nil {
		uc.logger.Error("ChatConcierge: completion failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	// 5. Сохраняем ответ; ошибка записи не отменяет уже полученный ответ
	assistantMsg := &conversation.Message{
		SessionID: req.SessionID,
		Role:      roleAssistant,
		Body:      reply,
	}
	if err := uc.conversations.Append(ctx, assistantMsg); err != nil {
		uc.logger.Error("ChatConcierge: failed to append assistant message: %v", err)
	}

	return &Response{SessionID: req.SessionID, Reply: reply}, nil
}

// systemPrompt собирает системный промпт: правила зала, таблицы цен и
// сводка занятости на сегодня. Если занятость прочитать не удалось,
// промпт уходит без нее.
func (uc *UseCase) systemPrompt(ctx context.Context) string {
	var b strings.Builder

	b.WriteString("Ты - консьерж игрового лаунжа GameZone. Отвечай кратко и по делу, на языке гостя.\n")
	b.WriteString("В зале 3 приставки PS5 (console-1..console-3) и 1 автосимулятор (driving-sim).\n")

	slots := domain.DailySlots()
	fmt.Fprintf(&b, "Зал работает с %s, последний сеанс заканчивается в 24:00. Слоты по %d минут: %s .. %s.\n",
		slots[0], domain.SlotDurationMinutes, slots[0], slots[len(slots)-1])
	fmt.Fprintf(&b, "Длительность сеанса: 30, 60, 90 или 120 минут. Игроков за приставкой: %d..%d.\n",
		domain.MinPlayerCount, domain.MaxPlayerCount)

	b.WriteString("\nЦены на приставку (игроки x минуты):\n")
	for players := domain.MinPlayerCount; players <= domain.MaxPlayerCount; players++ {
		fmt.Fprintf(&b, "  %d игрок(а):", players)
		for _, d := range domain.AllowedDurations {
			fmt.Fprintf(&b, " %d мин = %d;", d, domain.ConsolePrice(players, d))
		}
		b.WriteString("\n")
	}
	b.WriteString("Цены на автосимулятор:")
	for _, d := range domain.AllowedDurations {
		fmt.Fprintf(&b, " %d мин = %d;", d, domain.SimulatorPrice(d))
	}
	b.WriteString("\n")

	uc.appendTodaySummary(ctx, &b)

	b.WriteString("\nБронирование оформляется на сайте, ты броней не создаешь - только подсказываешь.")
	return b.String()
}

// appendTodaySummary дописывает в промпт сводку занятости на сегодня
func (uc *UseCase) appendTodaySummary(ctx context.Context, b *strings.Builder) {
	today := uc.timeProvider.Now()
	slots, err := uc.availability.SlotsForDate(ctx, today)
	if err != nil {
		uc.logger.Warn("ChatConcierge: failed to load today availability: %v", err)
		return
	}

	busy := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.FullyBooked {
			busy = append(busy, s.Slot.String())
		}
	}

	fmt.Fprintf(b, "\nСегодня %s. ", today.Format(domain.DateFormat))
	if len(busy) == 0 {
		b.WriteString("Полностью занятых слотов нет.\n")
		return
	}
	fmt.Fprintf(b, "Полностью занятые слоты: %s.\n", strings.Join(busy, ", "))
}
