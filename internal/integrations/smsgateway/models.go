package smsgateway

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sendRequest тело запроса к шлюзу доставки
type sendRequest struct {
	Phone   string `json:"phone"`
	Text    string `json:"text"`
	Channel string `json:"channel"` // sms или whatsapp
}

// sendResponse ответ шлюза
type sendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
