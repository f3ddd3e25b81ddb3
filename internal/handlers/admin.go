package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Totarae/Guestbook/internal/model"
	"github.com/Totarae/Guestbook/internal/service"
	"go.uber.org/zap"
)

// Admin POST /api/admin — действия администратора.
// Секрет проверяется до разбора action и полезной нагрузки.
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		h.writeError(w, bodyError(err))
		return
	}

	env := decodeEnvelope(body)
	if err := h.Service.Authorize(env.Secret); err != nil {
		h.Logger.Warn("admin request rejected", zap.String("remote", r.RemoteAddr))
		h.writeError(w, err)
		return
	}

	action, err := model.ParseAction(env.Action)
	if err != nil {
		h.writeError(w, &service.ValidationError{Msg: "Unknown action"})
		return
	}

	switch action {
	case model.ActionList:
		var req model.AdminListRequest
		if !h.decodePayload(w, body, &req) {
			return
		}
		resp, err := h.Service.AdminList(r.Context(), int(req.Page))
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, resp)

	case model.ActionCreate:
		var req model.AdminCreateRequest
		if !h.decodePayload(w, body, &req) {
			return
		}
		h.finish(w, h.Service.AdminCreate(r.Context(), req))

	case model.ActionUpdate:
		var req model.AdminUpdateRequest
		if !h.decodePayload(w, body, &req) {
			return
		}
		h.finish(w, h.Service.AdminUpdate(r.Context(), req))

	case model.ActionDelete:
		var req model.AdminDeleteRequest
		if !h.decodePayload(w, body, &req) {
			return
		}
		h.finish(w, h.Service.AdminDelete(r.Context(), req))
	}
}

// decodeEnvelope достаёт secret и action. Нечитаемое тело даёт пустой секрет.
func decodeEnvelope(body []byte) model.AdminEnvelope {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return model.AdminEnvelope{}
	}

	var env model.AdminEnvelope
	_ = json.Unmarshal(fields["secret"], &env.Secret)
	_ = json.Unmarshal(fields["action"], &env.Action)
	return env
}

func (h *Handler) decodePayload(w http.ResponseWriter, body []byte, v any) bool {
	if err := json.Unmarshal(body, v); err != nil {
		h.writeError(w, &service.ValidationError{Msg: "Invalid payload: " + err.Error()})
		return false
	}
	return true
}

func (h *Handler) finish(w http.ResponseWriter, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w)
}
