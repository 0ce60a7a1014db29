package handler

import (
	"net/http"

	"github.com/agrisaarthi/assistant-platform/internal/middleware"
	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/internal/service"
)

// SchemeHandler handles government scheme directory endpoints.
type SchemeHandler struct {
	service *service.SchemeService
}

// NewSchemeHandler creates a new scheme handler.
func NewSchemeHandler(svc *service.SchemeService) *SchemeHandler {
	return &SchemeHandler{service: svc}
}

// List handles GET /api/v1/schemes?category=...&q=...&lang=...
func (h *SchemeHandler) List(w http.ResponseWriter, r *http.Request) {
	var schemes []model.Scheme

	if q := r.URL.Query().Get("q"); q != "" {
		lang := model.LanguageEnglish
		if l := r.URL.Query().Get("lang"); l != "" {
			if err := middleware.ValidateLanguage(l); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			lang = model.Language(l)
		}
		schemes = h.service.Search(q, lang)
	} else {
		schemes = h.service.List(model.SchemeCategory(r.URL.Query().Get("category")))
	}

	writeJSON(w, http.StatusOK, model.ListSchemesResponse{
		Schemes: schemes,
		Total:   len(schemes),
	})
}
