package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Totarae/Guestbook/internal/model"
)

// ListEntries GET /api/guestbook — последние записи.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.PublicList(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}

// CreateEntry POST /api/guestbook — новая запись от посетителя.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req model.PublicCreateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, bodyError(err))
		return
	}

	if err := h.Service.PublicCreate(r.Context(), req); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSuccess(w)
}
