package verify_otp

import "context"

type AuthService interface {
	VerifyOTP(ctx context.Context, phone, code string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
