package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agrisaarthi/assistant-platform/internal/middleware"
	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/internal/service"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
)

// DiagnosisHandler handles crop diagnosis endpoints.
type DiagnosisHandler struct {
	service *service.DiagnosisService
	logger  *logger.Logger
}

// NewDiagnosisHandler creates a new diagnosis handler.
func NewDiagnosisHandler(svc *service.DiagnosisService, log *logger.Logger) *DiagnosisHandler {
	return &DiagnosisHandler{
		service: svc,
		logger:  log,
	}
}

// Diagnose handles POST /api/v1/diagnosis
//
// Analysis takes a few seconds; the request blocks until the result is
// ready or the client goes away.
func (h *DiagnosisHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var req model.DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateImageName(req.ImageName); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	diag, err := h.service.Analyze(r.Context(), req.ImageName)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client disconnected mid-analysis; nothing to write.
			return
		}
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, diag)
}
