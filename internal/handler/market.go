package handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/agrisaarthi/assistant-platform/internal/market"
	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
)

// MarketHandler handles mandi price lookup endpoints.
type MarketHandler struct {
	client *market.Client
	logger *logger.Logger
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(client *market.Client, log *logger.Logger) *MarketHandler {
	return &MarketHandler{
		client: client,
		logger: log,
	}
}

// Prices handles GET /api/v1/market/prices?variety=...&state=...
//
// Variety and state accept the localized names shown in the app; they
// are mapped to the canonical English values the upstream API expects.
func (h *MarketHandler) Prices(w http.ResponseWriter, r *http.Request) {
	variety := r.URL.Query().Get("variety")
	state := r.URL.Query().Get("state")

	if variety == "" || state == "" {
		writeError(w, http.StatusBadRequest, "variety and state are required")
		return
	}

	records, err := h.client.FetchPrices(r.Context(), variety, state)
	if err != nil {
		h.logger.Warn("market price fetch failed",
			zap.String("variety", variety),
			zap.String("state", state),
			zap.Error(err),
		)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.MarketPricesResponse{
		Records:   records,
		Summary:   market.Summarize(records),
		FetchedAt: time.Now(),
	})
}
