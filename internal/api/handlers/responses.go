package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с одной ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse тело ответа валидации: полный список нарушений
type ValidationErrorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// DecodeJSON разбирает тело запроса в v. Неизвестные поля - ошибка:
// опечатка в имени поля не должна молча превращаться в нулевое значение.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет ответ с заданным статусом и JSON-телом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ с ошибкой и заданным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondValidationErrors пишет 400 с полным списком нарушений
func RespondValidationErrors(w http.ResponseWriter, messages []string) {
	RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{Success: false, Errors: messages})
}

// RespondBadRequest пишет 400 с сообщением об ошибке
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized пишет 401 с сообщением об ошибке
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden пишет 403 с сообщением об ошибке
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound пишет 404 с сообщением об ошибке
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondTooManyRequests пишет 429 с сообщением об ошибке
func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

// RespondInternalError пишет 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
