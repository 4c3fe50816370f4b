// Package handlers содержит общие помощники для HTTP обработчиков
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Машиночитаемые коды ошибок. Клиент различает по ним конфликт слота и
// повторную заявку того же пользователя.
const (
	CodeSlotTaken          = "slot_taken"
	CodeDuplicateOwn       = "duplicate_own_booking"
	CodeInvalidTime        = "invalid_time_selection"
	CodeValidation         = "validation_error"
	CodeNotFound           = "not_found"
	CodeForbidden          = "forbidden"
	CodeConflict           = "conflict"
	CodeInternal           = "internal_error"
	CodeServiceUnavailable = "service_unavailable"
)

// ErrorResponse модель ошибки в HTTP ответе
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в указанную структуру
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ошибку с указанным статусом и кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// RespondBadRequest пишет ошибку 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeValidation, message)
}

// RespondNotFound пишет ошибку 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondForbidden пишет ошибку 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

// RespondInternalError пишет ошибку 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// RespondUnavailable пишет ошибку 503
func RespondUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, message)
}
