package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
	"github.com/agrisaarthi/assistant-platform/pkg/metrics"
)

// DefaultBaseURL is the data.gov.in daily mandi price resource.
const DefaultBaseURL = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"

const fetchLimit = 50

// Client queries current mandi prices. It issues one unauthenticated GET
// per lookup; there is no caching or retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logger.Logger
}

// NewClient creates a price client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL, apiKey string, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     log,
	}
}

// FetchPrices returns the current price records for a variety and state,
// given in any supported display language. Unknown display strings,
// non-200 responses, a non-ok upstream status, and an empty record set
// are all errors; the caller decides whether to retry.
func (c *Client) FetchPrices(ctx context.Context, variety, state string) ([]model.MarketRecord, error) {
	varietyParam, ok := CanonicalVariety(variety)
	if !ok {
		return nil, fmt.Errorf("unknown variety %q", variety)
	}
	stateParam, ok := CanonicalState(state)
	if !ok {
		return nil, fmt.Errorf("unknown state %q", state)
	}

	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("format", "json")
	q.Set("filters[variety]", varietyParam)
	q.Set("filters[state]", stateParam)
	q.Set("limit", fmt.Sprint(fetchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build price request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordPriceFetch("error", time.Since(start).Seconds())
		return nil, fmt.Errorf("fetch market data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordPriceFetch("error", time.Since(start).Seconds())
		return nil, fmt.Errorf("fetch market data: HTTP %d", resp.StatusCode)
	}

	var data model.MarketResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		metrics.RecordPriceFetch("error", time.Since(start).Seconds())
		return nil, fmt.Errorf("decode market data: %w", err)
	}

	if data.Status != "ok" || len(data.Records) == 0 {
		metrics.RecordPriceFetch("empty", time.Since(start).Seconds())
		return nil, fmt.Errorf("no data available for selected criteria")
	}

	metrics.RecordPriceFetch("success", time.Since(start).Seconds())
	c.logger.Info("market prices fetched",
		zap.String("variety", varietyParam),
		zap.String("state", stateParam),
		zap.Int("records", len(data.Records)),
	)
	return data.Records, nil
}
