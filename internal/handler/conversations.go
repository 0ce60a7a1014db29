// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/agrisaarthi/assistant-platform/internal/middleware"
	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/internal/service"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
)

// SessionHandler handles chat session endpoints.
type SessionHandler struct {
	service *service.ConversationService
	logger  *logger.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(svc *service.ConversationService, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		service: svc,
		logger:  log,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.service.CreateSession()
	writeJSON(w, http.StatusCreated, model.CreateSessionResponse{Session: sess})
}

// List handles GET /api/v1/sessions
//
// With a ?q= parameter the list is filtered by the search contract:
// archived sessions are hidden and the query is matched against the
// title in the active language and the last message.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	var sessions []*model.Session
	if q := r.URL.Query().Get("q"); q != "" {
		sessions = h.service.Search(q)
	} else {
		sessions = h.service.List()
	}

	now := time.Now()
	lang := h.service.Language()
	for _, sess := range sessions {
		sess.Recency = service.FormatRecency(sess.Timestamp, now, lang)
	}

	writeJSON(w, http.StatusOK, model.ListSessionsResponse{
		Sessions: sessions,
		Selected: h.service.Selected(),
		Total:    len(sessions),
	})
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.service.Get(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Select handles PUT /api/v1/sessions/{id}/select
func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Select(sessionID); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"selected": sessionID})
}

// Archive handles PUT /api/v1/sessions/{id}/archive
func (h *SessionHandler) Archive(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.service.ArchiveSession(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.service.DeleteSession(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// SetLanguage handles PUT /api/v1/language
func (h *SessionHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateLanguage(req.Language); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.service.SetLanguage(model.Language(req.Language))
	writeJSON(w, http.StatusOK, map[string]string{"language": req.Language})
}
