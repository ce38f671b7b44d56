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

// Repository репозиторий контента: новости, акции, таблица лидеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateUpdate создает новость
func (r *Repository) CreateUpdate(ctx context.Context, update *domain.Update) (*domain.Update, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("updates").
		Columns("title", "body", "published").
		Values(update.Title, update.Body, update.Published).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateUpdate - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&update.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateUpdate - execute insert: %v", ErrExecQuery, err)
	}

	update.CreatedAt = createdAt.Time
	update.UpdatedAt = updatedAt.Time

	return update, nil
}

// ListUpdates возвращает новости, при publishedOnly - только опубликованные
func (r *Repository) ListUpdates(ctx context.Context, publishedOnly bool) ([]*domain.Update, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "title", "body", "published", "created_at", "updated_at").
		From("updates").
		OrderBy("created_at DESC")

	if publishedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"published": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpdates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpdates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	updates := make([]*domain.Update, 0)
	for rows.Next() {
		var u domain.Update
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&u.ID, &u.Title, &u.Body, &u.Published, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListUpdates - scan row: %v", ErrScanRow, err)
		}

		u.CreatedAt = createdAt.Time
		u.UpdatedAt = updatedAt.Time
		updates = append(updates, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUpdates - rows error: %v", ErrScanRow, err)
	}

	return updates, nil
}

// UpdateUpdate обновляет новость
func (r *Repository) UpdateUpdate(ctx context.Context, update *domain.Update) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("updates").
		Set("title", update.Title).
		Set("body", update.Body).
		Set("published", update.Published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": update.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateUpdate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateUpdate - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateUpdate")
}

// DeleteUpdate удаляет новость
func (r *Repository) DeleteUpdate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("updates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteUpdate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteUpdate - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "DeleteUpdate")
}

// checkAffected превращает "0 строк затронуто" в ErrNotFound
func checkAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
