package models

import "time"

// ScanStatus represents the lifecycle state of a scan run.
type ScanStatus string

const (
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// ScanRun records one "Start Scan" trigger together with the summary of the
// spread pool it observed.
type ScanRun struct {
	Base
	TriggeredBy          string     `gorm:"not null" json:"triggered_by"`
	Status               ScanStatus `gorm:"not null" json:"status"`
	RecordCount          int        `gorm:"not null" json:"record_count"`
	ProfitableCount      int        `gorm:"not null" json:"profitable_count"`
	AverageExpectedValue float64    `gorm:"not null" json:"average_expected_value"`
	AverageProbability   float64    `gorm:"not null" json:"average_probability"`
	ErrorMessage         string     `json:"error_message,omitempty"`
	StartedAt            time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}
