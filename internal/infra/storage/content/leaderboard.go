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

// CreateLeaderboardEntry добавляет результат в таблицу лидеров
func (r *Repository) CreateLeaderboardEntry(ctx context.Context, entry *domain.LeaderboardEntry) (*domain.LeaderboardEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("leaderboard").
		Columns("player_name", "game", "score", "recorded_on").
		Values(entry.PlayerName, entry.Game, entry.Score, entry.RecordedOn).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateLeaderboardEntry - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateLeaderboardEntry - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// ListLeaderboard возвращает топ результатов, отсортированный по убыванию очков.
// limit <= 0 означает без ограничения.
func (r *Repository) ListLeaderboard(ctx context.Context, game string, limit int) ([]*domain.LeaderboardEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "player_name", "game", "score", "recorded_on", "created_at", "updated_at").
		From("leaderboard").
		OrderBy("score DESC, recorded_on ASC")

	if game != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"game": game})
	}
	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLeaderboard - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLeaderboard - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.LeaderboardEntry, 0)
	for rows.Next() {
		var e domain.LeaderboardEntry
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Game, &e.Score, &e.RecordedOn, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListLeaderboard - scan row: %v", ErrScanRow, err)
		}

		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updatedAt.Time
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLeaderboard - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// UpdateLeaderboardEntry обновляет результат
func (r *Repository) UpdateLeaderboardEntry(ctx context.Context, entry *domain.LeaderboardEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("leaderboard").
		Set("player_name", entry.PlayerName).
		Set("game", entry.Game).
		Set("score", entry.Score).
		Set("recorded_on", entry.RecordedOn).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLeaderboardEntry - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLeaderboardEntry - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateLeaderboardEntry")
}

// DeleteLeaderboardEntry удаляет результат
func (r *Repository) DeleteLeaderboardEntry(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("leaderboard").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteLeaderboardEntry - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteLeaderboardEntry - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "DeleteLeaderboardEntry")
}
