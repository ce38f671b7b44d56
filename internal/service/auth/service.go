package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/GameZone-BookingService/internal/config"
	"github.com/m04kA/GameZone-BookingService/internal/infra/cache"
)

const (
	otpCodeKeyPrefix     = "otp:code:"
	otpAttemptsKeyPrefix = "otp:attempts:"
	otpRateKeyPrefix     = "otp:rate:"

	otpCodeLength  = 6
	minPhoneDigits = 10
)

// Service сервис аутентификации: одноразовые коды для гостей и
// логин-пароль для админа, на выходе - JWT
type Service struct {
	codeStore    CodeStore
	sender       OTPSender
	timeProvider TimeProvider
	logger       Logger

	jwtSecret         []byte
	customerTokenTTL  time.Duration
	adminTokenTTL     time.Duration
	adminLogin        string
	adminPasswordHash string
	otpTTL            time.Duration
	otpMaxAttempts    int
	otpPerHour        int
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(codeStore CodeStore, sender OTPSender, cfg config.AuthConfig, otpPerHour int, logger Logger) *Service {
	return &Service{
		codeStore:         codeStore,
		sender:            sender,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
		jwtSecret:         []byte(cfg.JWTSecret),
		customerTokenTTL:  time.Duration(cfg.CustomerTokenTTL) * time.Minute,
		adminTokenTTL:     time.Duration(cfg.AdminTokenTTL) * time.Minute,
		adminLogin:        cfg.AdminLogin,
		adminPasswordHash: cfg.AdminPasswordHash,
		otpTTL:            time.Duration(cfg.OTPTTLSeconds) * time.Second,
		otpMaxAttempts:    cfg.OTPMaxAttempts,
		otpPerHour:        otpPerHour,
	}
}

// RequestOTP генерирует одноразовый код и отправляет его на телефон.
// Повторный запрос перезаписывает прежний код и сбрасывает счетчик попыток.
func (s *Service) RequestOTP(ctx context.Context, phone string) error {
	normalized := normalizePhone(phone)
	if len(normalized) < minPhoneDigits {
		return ErrInvalidPhone
	}

	// Лимит запросов кода на номер: общий счетчик в Redis с TTL в час
	if s.otpPerHour > 0 {
		count, err := s.codeStore.Increment(ctx, otpRateKeyPrefix+normalized, time.Hour)
		if err != nil {
			s.logger.Error("RequestOTP: rate counter error for phone=%s: %v", normalized, err)
			return fmt.Errorf("%w: RequestOTP - rate counter: %v", ErrInternal, err)
		}
		if count > int64(s.otpPerHour) {
			s.logger.Warn("RequestOTP: rate limited phone=%s", normalized)
			return ErrRateLimited
		}
	}

	code, err := generateCode(otpCodeLength)
	if err != nil {
		return fmt.Errorf("%w: RequestOTP - generate code: %v", ErrInternal, err)
	}

	if err := s.codeStore.SetWithTTL(ctx, otpCodeKeyPrefix+normalized, code, s.otpTTL); err != nil {
		s.logger.Error("RequestOTP: failed to store code for phone=%s: %v", normalized, err)
		return fmt.Errorf("%w: RequestOTP - store code: %v", ErrInternal, err)
	}
	if err := s.codeStore.Delete(ctx, otpAttemptsKeyPrefix+normalized); err != nil {
		s.logger.Warn("RequestOTP: failed to reset attempts for phone=%s: %v", normalized, err)
	}

	if err := s.sender.SendOTP(ctx, phone, code); err != nil {
		s.logger.Error("RequestOTP: failed to send code to phone=%s: %v", normalized, err)
		// Недоставленный код не должен оставаться действительным
		if delErr := s.codeStore.Delete(ctx, otpCodeKeyPrefix+normalized); delErr != nil {
			s.logger.Warn("RequestOTP: failed to drop undelivered code for phone=%s: %v", normalized, delErr)
		}
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("RequestOTP: code sent to phone=%s", normalized)
	return nil
}

// VerifyOTP сверяет код и при успехе выписывает гостевой токен
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	normalized := normalizePhone(phone)
	if len(normalized) < minPhoneDigits {
		return "", ErrInvalidPhone
	}

	stored, err := s.codeStore.Get(ctx, otpCodeKeyPrefix+normalized)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return "", ErrCodeExpired
		}
		s.logger.Error("VerifyOTP: store error for phone=%s: %v", normalized, err)
		return "", fmt.Errorf("%w: VerifyOTP - store error: %v", ErrInternal, err)
	}

	// Счетчик попыток живет не дольше самого кода
	attempts, err := s.codeStore.Increment(ctx, otpAttemptsKeyPrefix+normalized, s.otpTTL)
	if err != nil {
		s.logger.Error("VerifyOTP: attempts counter error for phone=%s: %v", normalized, err)
		return "", fmt.Errorf("%w: VerifyOTP - attempts counter: %v", ErrInternal, err)
	}
	if s.otpMaxAttempts > 0 && attempts > int64(s.otpMaxAttempts) {
		s.logger.Warn("VerifyOTP: too many attempts for phone=%s", normalized)
		if delErr := s.codeStore.Delete(ctx, otpCodeKeyPrefix+normalized); delErr != nil {
			s.logger.Warn("VerifyOTP: failed to drop code for phone=%s: %v", normalized, delErr)
		}
		return "", ErrTooManyAttempts
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(strings.TrimSpace(code))) != 1 {
		s.logger.Warn("VerifyOTP: code mismatch for phone=%s, attempt=%d", normalized, attempts)
		return "", ErrCodeMismatch
	}

	if err := s.codeStore.Delete(ctx, otpCodeKeyPrefix+normalized); err != nil {
		s.logger.Warn("VerifyOTP: failed to drop used code for phone=%s: %v", normalized, err)
	}
	if err := s.codeStore.Delete(ctx, otpAttemptsKeyPrefix+normalized); err != nil {
		s.logger.Warn("VerifyOTP: failed to drop attempts for phone=%s: %v", normalized, err)
	}

	token, err := s.issueToken(RoleCustomer, normalized, s.customerTokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info("VerifyOTP: issued customer token for phone=%s", normalized)
	return token, nil
}

// AdminLogin проверяет логин и пароль админа и выписывает админский токен
func (s *Service) AdminLogin(ctx context.Context, login, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(login), []byte(s.adminLogin)) != 1 {
		s.logger.Warn("AdminLogin: unknown login %q", login)
		// Хэш все равно сверяем, чтобы не отличать по времени ответ
		// "нет такого логина" от "неверный пароль"
		_ = bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		s.logger.Warn("AdminLogin: wrong password for login %q", login)
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(RoleAdmin, "", s.adminTokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info("AdminLogin: issued admin token")
	return token, nil
}

// generateCode генерирует криптослучайный цифровой код заданной длины
func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// normalizePhone сводит телефон к цифрам
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
