package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/internal/service"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
	"github.com/agrisaarthi/assistant-platform/pkg/metrics"
)

// AlertHandler handles wildlife alert endpoints.
type AlertHandler struct {
	service *service.AlertService
	logger  *logger.Logger
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(svc *service.AlertService, log *logger.Logger) *AlertHandler {
	return &AlertHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /api/v1/alerts
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	alerts, risk := h.service.List()
	writeJSON(w, http.StatusOK, model.ListAlertsResponse{
		RiskLevel: risk,
		Alerts:    alerts,
		Total:     len(alerts),
	})
}

// Report handles POST /api/v1/alerts
func (h *AlertHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req model.ReportAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.AnimalType == "" || req.Location == "" {
		writeError(w, http.StatusBadRequest, "type and location are required")
		return
	}
	if req.Severity.Rank() == 0 {
		writeError(w, http.StatusBadRequest, "severity must be low, medium or high")
		return
	}

	alert := h.service.Report(r.Context(), &req)
	writeJSON(w, http.StatusCreated, alert)
}

// Stream handles GET /api/v1/alerts/stream
//
// Streams new sightings as SSE events. The current feed is replayed
// first so late joiners see the full dashboard state.
func (h *AlertHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	metrics.AlertStreamConnections.Inc()
	defer metrics.AlertStreamConnections.Dec()

	feed, cancel := h.service.Subscribe()
	defer cancel()

	alerts, risk := h.service.List()
	sendSSEEvent(w, flusher, "connected", map[string]any{
		"risk_level": risk,
	})
	for i := len(alerts) - 1; i >= 0; i-- {
		sendSSEEvent(w, flusher, "alert", alerts[i])
	}

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("alert stream client disconnected")
			return

		case alert, ok := <-feed:
			if !ok {
				return
			}
			sendSSEEvent(w, flusher, "alert", alert)

		case <-heartbeat.C:
			sendSSEEvent(w, flusher, "heartbeat", map[string]time.Time{
				"timestamp": time.Now(),
			})
		}
	}
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
	flusher.Flush()

	return nil
}
