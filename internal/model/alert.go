package model

import (
	"time"
)

// AlertSeverity ranks wildlife alerts.
type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// Rank returns an ordering value for severity comparison.
func (s AlertSeverity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// RiskLevel is the aggregate danger level for a region.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// WildlifeAlert is one sighting report in the wildlife protection feed.
type WildlifeAlert struct {
	ID          string        `json:"id"`
	AnimalType  string        `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Location    string        `json:"location"`
	DistanceKm  float64       `json:"distance_km"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ReportAlertRequest is the request to report a new wildlife sighting.
type ReportAlertRequest struct {
	AnimalType  string        `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Location    string        `json:"location"`
	DistanceKm  float64       `json:"distance_km"`
	Description string        `json:"description"`
}

// ListAlertsResponse is the response for the alert dashboard.
type ListAlertsResponse struct {
	RiskLevel RiskLevel       `json:"risk_level"`
	Alerts    []WildlifeAlert `json:"alerts"`
	Total     int             `json:"total"`
}
