package content

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("content not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
