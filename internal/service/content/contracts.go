package content

import (
	"context"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

// ContentRepository интерфейс репозитория контента
type ContentRepository interface {
	CreateUpdate(ctx context.Context, update *domain.Update) (*domain.Update, error)
	ListUpdates(ctx context.Context, publishedOnly bool) ([]*domain.Update, error)
	UpdateUpdate(ctx context.Context, update *domain.Update) error
	DeleteUpdate(ctx context.Context, id int64) error

	CreatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	ListPromotions(ctx context.Context, publishedOnly bool) ([]*domain.Promotion, error)
	UpdatePromotion(ctx context.Context, promo *domain.Promotion) error
	DeletePromotion(ctx context.Context, id int64) error

	CreateLeaderboardEntry(ctx context.Context, entry *domain.LeaderboardEntry) (*domain.LeaderboardEntry, error)
	ListLeaderboard(ctx context.Context, game string, limit int) ([]*domain.LeaderboardEntry, error)
	UpdateLeaderboardEntry(ctx context.Context, entry *domain.LeaderboardEntry) error
	DeleteLeaderboardEntry(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
