package llm

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("llm client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("llm client: invalid response")

	// ErrRateLimited возвращается, когда провайдер ограничил запросы
	ErrRateLimited = errors.New("llm client: rate limited by provider")

	// ErrEmptyCompletion возвращается, когда провайдер вернул пустой ответ
	ErrEmptyCompletion = errors.New("llm client: empty completion")
)
