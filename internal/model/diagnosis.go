package model

import (
	"time"
)

// Diagnosis is the result of analyzing a crop image.
type Diagnosis struct {
	Disease    Localized     `json:"disease"`
	Severity   string        `json:"severity"`
	Confidence int           `json:"confidence"`
	Treatment  LocalizedList `json:"treatment"`
	Prevention LocalizedList `json:"prevention"`
	AnalyzedAt time.Time     `json:"analyzed_at"`
}

// DiagnoseRequest is the request to analyze a crop image. The image is
// referenced by name; upload handling lives with the caller.
type DiagnoseRequest struct {
	ImageName string `json:"image_name"`
}
