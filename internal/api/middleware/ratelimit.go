package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

// Counter интерфейс общего счетчика с TTL (Redis)
type Counter interface {
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RateLimit ограничивает число запросов с одного IP за окно.
// Счетчик живет в Redis, поэтому лимит общий для всех инстансов.
// При недоступности Redis запросы пропускаются: деградация хранилища
// лимитов не должна ронять публичные ручки.
func RateLimit(counter Counter, keyPrefix string, limit int, window time.Duration, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := keyPrefix + ":" + clientIP(r)
			count, err := counter.Increment(r.Context(), key, window)
			if err != nil {
				log.Error("RateLimit: counter error for key=%s: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				log.Warn("RateLimit: limit exceeded for key=%s (%d/%d)", key, count, limit)
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP достает IP клиента, учитывая прокси
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// В заголовке может быть цепочка адресов, клиентский - первый
		if idx := strings.IndexByte(forwarded, ','); idx >= 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
