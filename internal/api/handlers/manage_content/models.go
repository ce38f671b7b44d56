package manage_content

import (
	"fmt"
	"time"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
)

// UpdateRequest тело создания/изменения новости
type UpdateRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateRequest) ToDomain(id int64) *domain.Update {
	return &domain.Update{
		ID:        id,
		Title:     r.Title,
		Body:      r.Body,
		Published: r.Published,
	}
}

// PromotionRequest тело создания/изменения акции
type PromotionRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	StartsOn  string `json:"startsOn"` // "2026-09-01"
	EndsOn    string `json:"endsOn"`
	Published bool   `json:"published"`
}

// ToDomain конвертирует запрос в domain модель с разбором дат
func (r *PromotionRequest) ToDomain(id int64) (*domain.Promotion, error) {
	startsOn, err := time.Parse(domain.DateFormat, r.StartsOn)
	if err != nil {
		return nil, fmt.Errorf("parse startsOn: %w", err)
	}
	endsOn, err := time.Parse(domain.DateFormat, r.EndsOn)
	if err != nil {
		return nil, fmt.Errorf("parse endsOn: %w", err)
	}

	return &domain.Promotion{
		ID:        id,
		Title:     r.Title,
		Body:      r.Body,
		StartsOn:  startsOn,
		EndsOn:    endsOn,
		Published: r.Published,
	}, nil
}

// LeaderboardEntryRequest тело создания/изменения записи таблицы лидеров
type LeaderboardEntryRequest struct {
	PlayerName string `json:"playerName"`
	Game       string `json:"game"`
	Score      int    `json:"score"`
	RecordedOn string `json:"recordedOn"` // "2026-09-01"
}

// ToDomain конвертирует запрос в domain модель с разбором даты
func (r *LeaderboardEntryRequest) ToDomain(id int64) (*domain.LeaderboardEntry, error) {
	recordedOn, err := time.Parse(domain.DateFormat, r.RecordedOn)
	if err != nil {
		return nil, fmt.Errorf("parse recordedOn: %w", err)
	}

	return &domain.LeaderboardEntry{
		ID:         id,
		PlayerName: r.PlayerName,
		Game:       r.Game,
		Score:      r.Score,
		RecordedOn: recordedOn,
	}, nil
}

// AdminUpdateResponse новость в админском списке, с флагом публикации
type AdminUpdateResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AdminUpdateListResponse список новостей для админки
type AdminUpdateListResponse struct {
	Updates []AdminUpdateResponse `json:"updates"`
}

// AdminPromotionResponse акция в админском списке, с флагом публикации
type AdminPromotionResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	StartsOn  string `json:"startsOn"`
	EndsOn    string `json:"endsOn"`
	Published bool   `json:"published"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AdminPromotionListResponse список акций для админки
type AdminPromotionListResponse struct {
	Promotions []AdminPromotionResponse `json:"promotions"`
}

// FromDomainUpdates конвертирует domain модели в DTO админского списка
func FromDomainUpdates(items []*domain.Update) *AdminUpdateListResponse {
	updates := make([]AdminUpdateResponse, len(items))
	for i, u := range items {
		updates[i] = AdminUpdateResponse{
			ID:        u.ID,
			Title:     u.Title,
			Body:      u.Body,
			Published: u.Published,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
			UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &AdminUpdateListResponse{Updates: updates}
}

// FromDomainPromotions конвертирует domain модели в DTO админского списка
func FromDomainPromotions(items []*domain.Promotion) *AdminPromotionListResponse {
	promotions := make([]AdminPromotionResponse, len(items))
	for i, p := range items {
		promotions[i] = AdminPromotionResponse{
			ID:        p.ID,
			Title:     p.Title,
			Body:      p.Body,
			StartsOn:  p.StartsOn.Format(domain.DateFormat),
			EndsOn:    p.EndsOn.Format(domain.DateFormat),
			Published: p.Published,
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
			UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &AdminPromotionListResponse{Promotions: promotions}
}

// IDResponse ответ с идентификатором созданной записи
type IDResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// SuccessResponse ответ без полезной нагрузки
type SuccessResponse struct {
	Success bool `json:"success"`
}
