package get_content

import (
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

// UpdateResponse новость для публичной страницы
type UpdateResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// PromotionResponse акция для публичной страницы
type PromotionResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	StartsOn string `json:"startsOn"` // "2026-09-01"
	EndsOn   string `json:"endsOn"`
}

// LeaderboardEntryResponse строка таблицы лидеров
type LeaderboardEntryResponse struct {
	ID         int64  `json:"id"`
	PlayerName string `json:"playerName"`
	Game       string `json:"game"`
	Score      int    `json:"score"`
	RecordedOn string `json:"recordedOn"`
}

// UpdateListResponse список новостей
type UpdateListResponse struct {
	Updates []UpdateResponse `json:"updates"`
}

// PromotionListResponse список акций
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
}

// LeaderboardResponse таблица лидеров
type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// FromDomainUpdates конвертирует domain модели в DTO
func FromDomainUpdates(items []*domain.Update) *UpdateListResponse {
	updates := make([]UpdateResponse, len(items))
	for i, u := range items {
		updates[i] = UpdateResponse{
			ID:        u.ID,
			Title:     u.Title,
			Body:      u.Body,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		}
	}
	return &UpdateListResponse{Updates: updates}
}

// FromDomainPromotions конвертирует domain модели в DTO
func FromDomainPromotions(items []*domain.Promotion) *PromotionListResponse {
	promotions := make([]PromotionResponse, len(items))
	for i, p := range items {
		promotions[i] = PromotionResponse{
			ID:       p.ID,
			Title:    p.Title,
			Body:     p.Body,
			StartsOn: p.StartsOn.Format(domain.DateFormat),
			EndsOn:   p.EndsOn.Format(domain.DateFormat),
		}
	}
	return &PromotionListResponse{Promotions: promotions}
}

// FromDomainLeaderboard конвертирует domain модели в DTO
func FromDomainLeaderboard(items []*domain.LeaderboardEntry) *LeaderboardResponse {
	entries := make([]LeaderboardEntryResponse, len(items))
	for i, e := range items {
		entries[i] = LeaderboardEntryResponse{
			ID:         e.ID,
			PlayerName: e.PlayerName,
			Game:       e.Game,
			Score:      e.Score,
			RecordedOn: e.RecordedOn.Format(domain.DateFormat),
		}
	}
	return &LeaderboardResponse{Entries: entries}
}
