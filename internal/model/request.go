package model

import (
	"bytes"
	"encoding/json"
)

// PublicCreateRequest тело POST-запроса публичной гостевой книги.
type PublicCreateRequest struct {
	Name    string          `json:"name"`
	Message string          `json:"message"`
	Website *string         `json:"website"`
	Honey   json.RawMessage `json:"_honey"`
}

// HoneyFilled сообщает, заполнил ли клиент скрытое поле-ловушку.
// Пустая строка, false, 0, null и отсутствие поля считаются незаполненными.
func (r PublicCreateRequest) HoneyFilled() bool {
	raw := bytes.TrimSpace(r.Honey)
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}

// SuccessResponse стандартное подтверждение успешной операции.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
