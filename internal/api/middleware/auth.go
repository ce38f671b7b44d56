package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/GameZone-BookingService/internal/api/handlers"
	"github.com/m04kA/GameZone-BookingService/internal/service/auth"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "невалидный или истекший токен"
	msgAdminOnly    = "требуются права администратора"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

// TokenParser интерфейс проверки токена
type TokenParser interface {
	ParseToken(tokenString string) (*auth.Claims, error)
}

// Auth проверяет Bearer-токен и кладет claims в контекст запроса
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пускает дальше только токены с ролью admin.
// Вешается после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		if claims.Role != auth.RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetClaims возвращает claims токена из контекста запроса
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}

// GetPhone возвращает телефон гостя из контекста запроса
func GetPhone(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok || claims.Phone == "" {
		return "", false
	}
	return claims.Phone, true
}

// IsAdmin сообщает, админский ли токен в контексте запроса
func IsAdmin(ctx context.Context) bool {
	claims, ok := GetClaims(ctx)
	return ok && claims.Role == auth.RoleAdmin
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
