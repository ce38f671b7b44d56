package chat_concierge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/internal/infra/storage/conversation"
	"github.com/m04kA/GameZone-BookingService/internal/integrations/llm"
)

type fakeConversations struct {
	appended  []conversation.Message
	appendErr error
	loadErr   error
}

func (f *fakeConversations) Append(ctx context.Context, msg *conversation.Message) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, *msg)
	return nil
}

func (f *fakeConversations) LoadRecent(ctx context.Context, sessionID string, limit int) ([]conversation.Message, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.appended, nil
}

type fakeCompleter struct {
	reply    string
	err      error
	received []llm.Message
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	f.received = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeAvailability struct {
	slots []domain.SlotOccupancy
	err   error
}

func (f *fakeAvailability) SlotsForDate(ctx context.Context, date time.Time) ([]domain.SlotOccupancy, error) {
	return f.slots, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(conversations *fakeConversations, completer *fakeCompleter, availability *fakeAvailability) *UseCase {
	uc := NewUseCase(conversations, completer, availability, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

type fixedTimeProvider struct{ now time.Time }

func (f *fixedTimeProvider) Now() time.Time { return f.now }

func TestExecuteHappyPath(t *testing.T) {
	conversations := &fakeConversations{}
	completer := &fakeCompleter{reply: "Свободно после 15:00"}
	availability := &fakeAvailability{
		slots: []domain.SlotOccupancy{
			{Slot: "09:00", FullyBooked: true},
			{Slot: "09:30", FreeDevices: []string{"console-1"}},
		},
	}
	uc := newTestUseCase(conversations, completer, availability)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "session-1",
		Message:   "Когда сегодня свободно?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Свободно после 15:00", resp.Reply)

	// Обе реплики сохранены
	require.Len(t, conversations.appended, 2)
	assert.Equal(t, "user", conversations.appended[0].Role)
	assert.Equal(t, "assistant", conversations.appended[1].Role)

	// Первое сообщение модели - системный промпт с ценами и занятостью
	require.NotEmpty(t, completer.received)
	system := completer.received[0]
	assert.Equal(t, "system", system.Role)
	assert.Contains(t, system.Content, "09:00 .. 23:30")
	assert.Contains(t, system.Content, "60 мин = 150")
	assert.Contains(t, system.Content, "09:00")
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeConversations{}, &fakeCompleter{}, &fakeAvailability{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "", Message: "hi"})
	assert.ErrorIs(t, err, ErrEmptySession)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "s", Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = uc.Execute(context.Background(), &Request{
		SessionID: "s",
		Message:   strings.Repeat("а", maxMessageLength+1),
	})
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestExecuteCompletionFailure(t *testing.T) {
	conversations := &fakeConversations{}
	completer := &fakeCompleter{err: errors.New("rate limited")}
	uc := newTestUseCase(conversations, completer, &fakeAvailability{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s", Message: "hi"})
	assert.ErrorIs(t, err, ErrCompletion)

	// Реплика пользователя сохранена до обращения к провайдеру
	require.Len(t, conversations.appended, 1)
	assert.Equal(t, "user", conversations.appended[0].Role)
}

func TestExecuteAvailabilityFailureDoesNotBreakChat(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	availability := &fakeAvailability{err: errors.New("db down")}
	uc := newTestUseCase(&fakeConversations{}, completer, availability)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Reply)

	// Промпт уходит без сводки занятости
	assert.NotContains(t, completer.received[0].Content, "Полностью занятые")
}
