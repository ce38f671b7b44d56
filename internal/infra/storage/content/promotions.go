package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GameZone-BookingService/internal/domain"
	"github.com/m04kA/GameZone-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameZone-BookingService/pkg/psqlbuilder"
)

// CreatePromotion создает акцию
func (r *Repository) CreatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promotions").
		Columns("title", "body", "starts_on", "ends_on", "published").
		Values(promo.Title, promo.Body, promo.StartsOn, promo.EndsOn, promo.Published).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePromotion - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&promo.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreatePromotion - execute insert: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// ListPromotions возвращает акции, при publishedOnly - только опубликованные
func (r *Repository) ListPromotions(ctx context.Context, publishedOnly bool) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "title", "body", "starts_on", "ends_on", "published", "created_at", "updated_at").
		From("promotions").
		OrderBy("starts_on DESC")

	if publishedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"published": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPromotions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPromotions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promos := make([]*domain.Promotion, 0)
	for rows.Next() {
		var p domain.Promotion
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.StartsOn, &p.EndsOn, &p.Published, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListPromotions - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time
		promos = append(promos, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPromotions - rows error: %v", ErrScanRow, err)
	}

	return promos, nil
}

// UpdatePromotion обновляет акцию
func (r *Repository) UpdatePromotion(ctx context.Context, promo *domain.Promotion) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promotions").
		Set("title", promo.Title).
		Set("body", promo.Body).
		Set("starts_on", promo.StartsOn).
		Set("ends_on", promo.EndsOn).
		Set("published", promo.Published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": promo.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePromotion - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePromotion - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdatePromotion")
}

// DeletePromotion удаляет акцию
func (r *Repository) DeletePromotion(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeletePromotion - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeletePromotion - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "DeletePromotion")
}
