package content

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("content.repository: record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("content.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("content.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("content.repository: failed to scan row")
)
