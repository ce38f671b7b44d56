package request_otp

import "context"

type AuthService interface {
	RequestOTP(ctx context.Context, phone string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
