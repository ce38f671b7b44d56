package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/GameZone-BookingService/internal/config"
	"github.com/m04kA/GameZone-BookingService/internal/infra/cache"
)

// fakeStore хранилище кодов в памяти, имитирует интерфейс Redis-стора
type fakeStore struct {
	values   map[string]string
	counters map[string]int64

	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		values:   make(map[string]string),
		counters: make(map[string]int64),
	}
}

func (f *fakeStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", cache.ErrNotFound
	}
	return value, nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	delete(f.counters, key)
	return nil
}

func (f *fakeStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	f.counters[key]++
	return f.counters[key], nil
}

type fakeSender struct {
	sentTo   []string
	lastCode string
	err      error
}

func (f *fakeSender) SendOTP(ctx context.Context, phone, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, phone)
	f.lastCode = code
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return config.AuthConfig{
		JWTSecret:         "test-secret",
		CustomerTokenTTL:  60,
		AdminTokenTTL:     30,
		AdminLogin:        "admin",
		AdminPasswordHash: string(hash),
		OTPTTLSeconds:     300,
		OTPMaxAttempts:    3,
	}
}

func newTestService(t *testing.T, store *fakeStore, sender *fakeSender) *Service {
	t.Helper()
	return NewService(store, sender, testConfig(t), 5, nopLogger{})
}

func TestRequestAndVerifyOTP(t *testing.T) {
	store := newFakeStore()
	sender := &fakeSender{}
	svc := newTestService(t, store, sender)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "+7 (900) 123-45-67"))
	require.Len(t, sender.sentTo, 1)
	require.Len(t, sender.lastCode, 6)

	token, err := svc.VerifyOTP(ctx, "79001234567", sender.lastCode)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, claims.Role)
	assert.Equal(t, "79001234567", claims.Phone)

	// Код одноразовый
	_, err = svc.VerifyOTP(ctx, "79001234567", sender.lastCode)
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	store := newFakeStore()
	sender := &fakeSender{}
	svc := newTestService(t, store, sender)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "79001234567"))

	_, err := svc.VerifyOTP(ctx, "79001234567", "000000")
	assert.ErrorIs(t, err, ErrCodeMismatch)

	// Правильный код после неудачной попытки все еще работает
	token, err := svc.VerifyOTP(ctx, "79001234567", sender.lastCode)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestVerifyOTPTooManyAttempts(t *testing.T) {
	store := newFakeStore()
	sender := &fakeSender{}
	svc := newTestService(t, store, sender)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "79001234567"))

	for i := 0; i < 3; i++ {
		_, err := svc.VerifyOTP(ctx, "79001234567", "000000")
		assert.ErrorIs(t, err, ErrCodeMismatch)
	}

	// Четвертая попытка сжигает код даже с правильным значением
	_, err := svc.VerifyOTP(ctx, "79001234567", sender.lastCode)
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	_, err = svc.VerifyOTP(ctx, "79001234567", sender.lastCode)
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestRequestOTPRateLimit(t *testing.T) {
	store := newFakeStore()
	sender := &fakeSender{}
	svc := newTestService(t, store, sender)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.RequestOTP(ctx, "79001234567"))
	}

	err := svc.RequestOTP(ctx, "79001234567")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestRequestOTPInvalidPhone(t *testing.T) {
	svc := newTestService(t, newFakeStore(), &fakeSender{})

	err := svc.RequestOTP(context.Background(), "12345")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestRequestOTPSendFailureDropsCode(t *testing.T) {
	store := newFakeStore()
	sender := &fakeSender{err: errors.New("gateway timeout")}
	svc := newTestService(t, store, sender)
	ctx := context.Background()

	err := svc.RequestOTP(ctx, "79001234567")
	assert.ErrorIs(t, err, ErrSendFailed)

	// Недоставленный код не остается действительным
	_, err = svc.VerifyOTP(ctx, "79001234567", "123456")
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestAdminLogin(t *testing.T) {
	svc := newTestService(t, newFakeStore(), &fakeSender{})
	ctx := context.Background()

	token, err := svc.AdminLogin(ctx, "admin", "s3cret")
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Empty(t, claims.Phone)

	_, err = svc.AdminLogin(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AdminLogin(ctx, "root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t, newFakeStore(), &fakeSender{})

	_, err := svc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	svc := newTestService(t, newFakeStore(), &fakeSender{})

	other := NewService(newFakeStore(), &fakeSender{}, config.AuthConfig{
		JWTSecret:        "another-secret",
		CustomerTokenTTL: 60,
	}, 5, nopLogger{})

	foreign, err := other.issueToken(RoleCustomer, "79001234567", time.Hour)
	require.NoError(t, err)

	_, err = svc.ParseToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
