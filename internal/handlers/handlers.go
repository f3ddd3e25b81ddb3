package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Totarae/Guestbook/internal/model"
	"github.com/Totarae/Guestbook/internal/service"
	"go.uber.org/zap"
)

// MaxBodyBytes предел тела запроса после распаковки.
// Длина message не ограничена, поэтому предел берётся с запасом.
const MaxBodyBytes = 4 << 20

// Handler HTTP-обработчики публичной и административной частей гостевой книги.
type Handler struct {
	Service *service.GuestbookService
	Logger  *zap.Logger
}

func NewHandler(svc *service.GuestbookService, logger *zap.Logger) *Handler {
	return &Handler{Service: svc, Logger: logger}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError отображает ошибку сервиса на HTTP-статус.
// Сообщение ошибки хранилища уходит клиенту как есть.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case service.IsAuth(err):
		status = http.StatusUnauthorized
	case service.IsValidation(err):
		status = http.StatusBadRequest
	}
	h.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// bodyError ошибка чтения тела запроса, всегда 400.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &service.ValidationError{Msg: "Request body too large"}
	}
	return &service.ValidationError{Msg: "Invalid request body"}
}

func (h *Handler) writeSuccess(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusOK, model.SuccessResponse{Success: true})
}

// MethodNotAllowed ответ 405 в формате JSON
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{Error: "Method not allowed"})
}

// NotFound ответ 404 в формате JSON
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Not found"})
}

// Ping проверяет доступность хранилища.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Ping(r.Context()); err != nil {
		h.Logger.Error("storage ping failed", zap.Error(err))
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
