package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	contentRepo "github.com/m04kA/GameZone-BookingService/internal/infra/storage/content"
)

// defaultLeaderboardLimit размер таблицы лидеров по умолчанию
const defaultLeaderboardLimit = 10

// Service сервис управления контентом публичных страниц
type Service struct {
	repo   ContentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(repo ContentRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// --- Новости ---

// CreateUpdate создает новость
func (s *Service) CreateUpdate(ctx context.Context, update *domain.Update) (*domain.Update, error) {
	if strings.TrimSpace(update.Title) == "" {
		return nil, fmt.Errorf("%w: CreateUpdate - empty title", ErrInvalidInput)
	}

	created, err := s.repo.CreateUpdate(ctx, update)
	if err != nil {
		s.logger.Error("CreateUpdate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateUpdate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUpdate: created update id=%d", created.ID)
	return created, nil
}

// ListUpdates возвращает новости; для публичной страницы - только опубликованные
func (s *Service) ListUpdates(ctx context.Context, publishedOnly bool) ([]*domain.Update, error) {
	items, err := s.repo.ListUpdates(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("ListUpdates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpdates - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// UpdateUpdate изменяет новость
func (s *Service) UpdateUpdate(ctx context.Context, update *domain.Update) error {
	if update.ID <= 0 {
		return fmt.Errorf("%w: UpdateUpdate - invalid id", ErrInvalidInput)
	}
	if strings.TrimSpace(update.Title) == "" {
		return fmt.Errorf("%w: UpdateUpdate - empty title", ErrInvalidInput)
	}

	if err := s.repo.UpdateUpdate(ctx, update); err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("UpdateUpdate: repository error for id=%d: %v", update.ID, err)
		return fmt.Errorf("%w: UpdateUpdate - repository error: %v", ErrInternal, err)
	}
	return nil
}

// DeleteUpdate удаляет новость
func (s *Service) DeleteUpdate(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUpdate(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteUpdate: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteUpdate - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteUpdate: deleted update id=%d", id)
	return nil
}

// --- Акции ---

// CreatePromotion создает акцию
func (s *Service) CreatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	if strings.TrimSpace(promo.Title) == "" {
		return nil, fmt.Errorf("%w: CreatePromotion - empty title", ErrInvalidInput)
	}
	if promo.EndsOn.Before(promo.StartsOn) {
		return nil, fmt.Errorf("%w: CreatePromotion - ends before it starts", ErrInvalidInput)
	}

	created, err := s.repo.CreatePromotion(ctx, promo)
	if err != nil {
		s.logger.Error("CreatePromotion: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePromotion - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePromotion: created promotion id=%d", created.ID)
	return created, nil
}

// ListPromotions возвращает акции; для публичной страницы - только опубликованные
func (s *Service) ListPromotions(ctx context.Context, publishedOnly bool) ([]*domain.Promotion, error) {
	items, err := s.repo.ListPromotions(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("ListPromotions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPromotions - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// UpdatePromotion изменяет акцию
func (s *Service) UpdatePromotion(ctx context.Context, promo *domain.Promotion) error {
	if promo.ID <= 0 {
		return fmt.Errorf("%w: UpdatePromotion - invalid id", ErrInvalidInput)
	}
	if strings.TrimSpace(promo.Title) == "" {
		return fmt.Errorf("%w: UpdatePromotion - empty title", ErrInvalidInput)
	}
	if promo.EndsOn.Before(promo.StartsOn) {
		return fmt.Errorf("%w: UpdatePromotion - ends before it starts", ErrInvalidInput)
	}

	if err := s.repo.UpdatePromotion(ctx, promo); err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("UpdatePromotion: repository error for id=%d: %v", promo.ID, err)
		return fmt.Errorf("%w: UpdatePromotion - repository error: %v", ErrInternal, err)
	}
	return nil
}

// DeletePromotion удаляет акцию
func (s *Service) DeletePromotion(ctx context.Context, id int64) error {
	if err := s.repo.DeletePromotion(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeletePromotion: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeletePromotion - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeletePromotion: deleted promotion id=%d", id)
	return nil
}

// --- Таблица лидеров ---

// CreateLeaderboardEntry создает запись в таблице лидеров
func (s *Service) CreateLeaderboardEntry(ctx context.Context, entry *domain.LeaderboardEntry) (*domain.LeaderboardEntry, error) {
	if strings.TrimSpace(entry.PlayerName) == "" || strings.TrimSpace(entry.Game) == "" {
		return nil, fmt.Errorf("%w: CreateLeaderboardEntry - player name and game are required", ErrInvalidInput)
	}
	if entry.Score < 0 {
		return nil, fmt.Errorf("%w: CreateLeaderboardEntry - negative score", ErrInvalidInput)
	}

	created, err := s.repo.CreateLeaderboardEntry(ctx, entry)
	if err != nil {
		s.logger.Error("CreateLeaderboardEntry: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateLeaderboardEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateLeaderboardEntry: created entry id=%d", created.ID)
	return created, nil
}

// ListLeaderboard возвращает верх таблицы лидеров, опционально по игре
func (s *Service) ListLeaderboard(ctx context.Context, game string, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	items, err := s.repo.ListLeaderboard(ctx, game, limit)
	if err != nil {
		s.logger.Error("ListLeaderboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLeaderboard - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// UpdateLeaderboardEntry изменяет запись таблицы лидеров
func (s *Service) UpdateLeaderboardEntry(ctx context.Context, entry *domain.LeaderboardEntry) error {
	if entry.ID <= 0 {
		return fmt.Errorf("%w: UpdateLeaderboardEntry - invalid id", ErrInvalidInput)
	}
	if strings.TrimSpace(entry.PlayerName) == "" || strings.TrimSpace(entry.Game) == "" {
		return fmt.Errorf("%w: UpdateLeaderboardEntry - player name and game are required", ErrInvalidInput)
	}

	if err := s.repo.UpdateLeaderboardEntry(ctx, entry); err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("UpdateLeaderboardEntry: repository error for id=%d: %v", entry.ID, err)
		return fmt.Errorf("%w: UpdateLeaderboardEntry - repository error: %v", ErrInternal, err)
	}
	return nil
}

// DeleteLeaderboardEntry удаляет запись таблицы лидеров
func (s *Service) DeleteLeaderboardEntry(ctx context.Context, id int64) error {
	if err := s.repo.DeleteLeaderboardEntry(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteLeaderboardEntry: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteLeaderboardEntry - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteLeaderboardEntry: deleted entry id=%d", id)
	return nil
}
