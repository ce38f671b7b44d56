package smsgateway

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("smsgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("smsgateway client: invalid response")

	// ErrRejected возвращается, когда шлюз отклонил сообщение
	// (некорректный номер, заблокированный получатель)
	ErrRejected = errors.New("smsgateway client: message rejected")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что шлюз недоступен и доставку стоит повторить позже
	ErrServiceDegraded = errors.New("smsgateway unavailable: graceful degradation applied")
)
