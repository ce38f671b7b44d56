package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Роли субъектов токена
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Claims полезная нагрузка JWT: роль и телефон гостя (для админа пустой)
type Claims struct {
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// issueToken выписывает подписанный HS256-токен
func (s *Service) issueToken(role, phone string, ttl time.Duration) (string, error) {
	now := s.timeProvider.Now()

	claims := Claims{
		Role:  role,
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   phone,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: issueToken - sign: %v", ErrInternal, err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != RoleCustomer && claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
