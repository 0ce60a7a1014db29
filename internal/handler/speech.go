package handler

import (
	"net/http"

	"github.com/agrisaarthi/assistant-platform/internal/speech"
)

// SpeechHandler exposes the speech recognition locale table.
type SpeechHandler struct{}

// NewSpeechHandler creates a new speech handler.
func NewSpeechHandler() *SpeechHandler {
	return &SpeechHandler{}
}

// Locales handles GET /api/v1/speech/locales
//
// Returns the app-language to BCP 47 recognition locale mapping so
// clients configure their recognizers consistently with the server.
func (h *SpeechHandler) Locales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, speech.Locales())
}
