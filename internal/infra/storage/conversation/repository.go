package conversation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GameZone-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameZone-BookingService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("conversation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("conversation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("conversation.repository: failed to scan row")
)

// Message одна реплика диалога с консьержем
type Message struct {
	ID        int64
	SessionID string
	Role      string // user или assistant
	Body      string
	CreatedAt time.Time
}

// Repository репозиторий истории диалогов с LLM-консьержем
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории диалогов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append сохраняет реплику диалога
func (r *Repository) Append(ctx context.Context, msg *Message) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("conversation_history").
		Columns("session_id", "role", "message").
		Values(msg.SessionID, msg.Role, msg.Body).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time

	return nil
}

// LoadRecent возвращает последние limit реплик сессии в хронологическом порядке
func (r *Repository) LoadRecent(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "session_id", "role", "message", "created_at").
		From("conversation_history").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]Message, 0, limit)
	for rows.Next() {
		var m Message
		var createdAt sql.NullTime

		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: LoadRecent - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadRecent - rows error: %v", ErrScanRow, err)
	}

	// Запрос отдает реплики от новых к старым, разворачиваем в хронологию
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
