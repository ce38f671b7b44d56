package auth

import "errors"

var (
	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("auth: invalid phone number")

	// ErrCodeMismatch возвращается, когда код не совпал
	ErrCodeMismatch = errors.New("auth: code mismatch")

	// ErrCodeExpired возвращается, когда код не запрашивался или истек
	ErrCodeExpired = errors.New("auth: code expired or not requested")

	// ErrTooManyAttempts возвращается после исчерпания попыток ввода кода
	ErrTooManyAttempts = errors.New("auth: too many verification attempts")

	// ErrRateLimited возвращается, когда превышен лимит запросов кода
	ErrRateLimited = errors.New("auth: rate limited")

	// ErrInvalidCredentials возвращается при неверном логине или пароле админа
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается при невалидном или истекшем токене
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrSendFailed возвращается, когда код не удалось доставить
	ErrSendFailed = errors.New("auth: failed to send code")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
