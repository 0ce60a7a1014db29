package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/internal/service"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
)

func TestAlertListEndpoint(t *testing.T) {
	h := NewAlertHandler(service.NewAlertService(nil, logger.Nop()), logger.Nop())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp model.ListAlertsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 || resp.RiskLevel != model.RiskHigh {
		t.Errorf("got total=%d risk=%s", resp.Total, resp.RiskLevel)
	}
}

func TestAlertReportEndpoint(t *testing.T) {
	h := NewAlertHandler(service.NewAlertService(nil, logger.Nop()), logger.Nop())

	body := `{"type":"elephant","severity":"high","location":"Kanakapura","distance_km":1.5,"description":"herd near fields"}`
	rec := httptest.NewRecorder()
	h.Report(rec, httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var alert model.WildlifeAlert
	if err := json.Unmarshal(rec.Body.Bytes(), &alert); err != nil {
		t.Fatal(err)
	}
	if alert.ID == "" || alert.AnimalType != "elephant" {
		t.Errorf("unexpected alert %+v", alert)
	}
}

func TestAlertReportValidation(t *testing.T) {
	h := NewAlertHandler(service.NewAlertService(nil, logger.Nop()), logger.Nop())

	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing type", `{"severity":"high","location":"here"}`},
		{"missing location", `{"type":"elephant","severity":"high"}`},
		{"bad severity", `{"type":"elephant","severity":"apocalyptic","location":"here"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Report(rec, httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAlertStreamReplaysFeed(t *testing.T) {
	svc := service.NewAlertService(nil, logger.Nop())
	h := NewAlertHandler(svc, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	srv := httptest.NewServer(http.HandlerFunc(h.Stream))
	defer srv.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("Content-Type = %q", got)
	}

	// connected event plus the two seeded alerts replayed oldest-first.
	scanner := bufio.NewScanner(resp.Body)
	var events []string
	for scanner.Scan() && len(events) < 3 {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			events = append(events, strings.TrimPrefix(line, "event: "))
		}
	}

	want := []string{"connected", "alert", "alert"}
	if len(events) != len(want) {
		t.Fatalf("got events %v", events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}
