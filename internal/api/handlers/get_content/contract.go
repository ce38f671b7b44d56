package get_content

import (
	"context"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

type ContentService interface {
	ListUpdates(ctx context.Context, publishedOnly bool) ([]*domain.Update, error)
	ListPromotions(ctx context.Context, publishedOnly bool) ([]*domain.Promotion, error)
	ListLeaderboard(ctx context.Context, game string, limit int) ([]*domain.LeaderboardEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
