package chat_concierge

// Request модель запроса на реплику консьержа
type Request struct {
	SessionID string
	Message   string
}

// Response модель ответа консьержа
type Response struct {
	SessionID string
	Reply     string
}

const (
	// maxMessageLength предел длины пользовательского сообщения
	maxMessageLength = 2000

	// historyLimit сколько последних реплик диалога уходит в контекст модели
	historyLimit = 20
)
