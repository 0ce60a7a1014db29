package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agrisaarthi/assistant-platform/internal/model"
	"github.com/agrisaarthi/assistant-platform/pkg/logger"
	"github.com/agrisaarthi/assistant-platform/pkg/metrics"
)

// AlertPublisher fans a reported alert out to an external bus. Optional;
// the service works without one.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert *model.WildlifeAlert) error
}

// AlertService maintains the wildlife sighting feed for the protection
// dashboard: a region risk level derived from recent alerts, plus
// subscriber fan-out for live updates.
type AlertService struct {
	publisher AlertPublisher
	logger    *logger.Logger
	now       func() time.Time

	mu     sync.RWMutex
	alerts []model.WildlifeAlert
	subs   map[int]chan model.WildlifeAlert
	nextID int
}

// NewAlertService creates the service seeded with the example feed.
func NewAlertService(publisher AlertPublisher, log *logger.Logger) *AlertService {
	s := &AlertService{
		publisher: publisher,
		logger:    log,
		now:       time.Now,
		subs:      make(map[int]chan model.WildlifeAlert),
	}
	s.alerts = seedAlerts(s.now())
	return s
}

func seedAlerts(now time.Time) []model.WildlifeAlert {
	return []model.WildlifeAlert{
		{
			ID:          uuid.New().String(),
			AnimalType:  "elephant",
			Severity:    model.SeverityHigh,
			Location:    "Kanakapura Road",
			DistanceKm:  2.5,
			Description: "Elephant herd spotted moving towards crop fields",
			CreatedAt:   now.Add(-30 * time.Minute),
		},
		{
			ID:          uuid.New().String(),
			AnimalType:  "wild_boar",
			Severity:    model.SeverityMedium,
			Location:    "Bannerghatta",
			DistanceKm:  5,
			Description: "Wild boar activity reported in nearby farms",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
	}
}

// List returns the current feed, newest first, with the aggregate risk.
func (s *AlertService) List() ([]model.WildlifeAlert, model.RiskLevel) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.WildlifeAlert, len(s.alerts))
	copy(out, s.alerts)
	return out, riskFrom(out)
}

// Report adds a new sighting to the feed, notifies subscribers, and
// publishes it to the external bus when one is configured.
func (s *AlertService) Report(ctx context.Context, req *model.ReportAlertRequest) *model.WildlifeAlert {
	alert := model.WildlifeAlert{
		ID:          uuid.New().String(),
		AnimalType:  req.AnimalType,
		Severity:    req.Severity,
		Location:    req.Location,
		DistanceKm:  req.DistanceKm,
		Description: req.Description,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.alerts = append([]model.WildlifeAlert{alert}, s.alerts...)
	for _, ch := range s.subs {
		select {
		case ch <- alert:
		default:
			// Slow subscriber; drop rather than block the reporter.
		}
	}
	s.mu.Unlock()

	metrics.AlertsTotal.WithLabelValues(string(alert.Severity)).Inc()

	if s.publisher != nil {
		if err := s.publisher.PublishAlert(ctx, &alert); err != nil {
			s.logger.Warn("failed to publish wildlife alert", zap.Error(err))
		}
	}

	s.logger.Info("wildlife alert reported",
		zap.String("alert_id", alert.ID),
		zap.String("type", alert.AnimalType),
		zap.String("severity", string(alert.Severity)),
	)
	return &alert
}

// Subscribe registers a live feed listener. The returned cancel function
// must be called to release the subscription.
func (s *AlertService) Subscribe() (<-chan model.WildlifeAlert, func()) {
	ch := make(chan model.WildlifeAlert, 16)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// riskFrom derives the region risk level from the highest alert severity
// present in the feed.
func riskFrom(alerts []model.WildlifeAlert) model.RiskLevel {
	highest := 0
	for _, a := range alerts {
		if r := a.Severity.Rank(); r > highest {
			highest = r
		}
	}
	switch highest {
	case 3:
		return model.RiskHigh
	case 2:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
