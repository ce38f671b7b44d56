package chat_concierge

import "errors"

var (
	// ErrEmptyMessage возвращается при пустом сообщении пользователя
	ErrEmptyMessage = errors.New("chat_concierge: empty message")

	// ErrEmptySession возвращается при пустом идентификаторе сессии
	ErrEmptySession = errors.New("chat_concierge: empty session id")

	// ErrMessageTooLong возвращается, когда сообщение превышает допустимую длину
	ErrMessageTooLong = errors.New("chat_concierge: message too long")

	// ErrCompletion возвращается при ошибке обращения к LLM-провайдеру
	ErrCompletion = errors.New("chat_concierge: completion failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("chat_concierge: internal error")
)
