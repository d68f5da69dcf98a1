package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"spreadscan/internal/models"
)

// ScanCompletedEvent is the payload published for every recorded scan run.
type ScanCompletedEvent struct {
	ScanID               string            `json:"scan_id"`
	Status               models.ScanStatus `json:"status"`
	TriggeredBy          string            `json:"triggered_by"`
	RecordCount          int               `json:"record_count"`
	ProfitableCount      int               `json:"profitable_count"`
	AverageExpectedValue float64           `json:"average_expected_value"`
	AverageProbability   float64           `json:"average_probability"`
	ErrorMessage         string            `json:"error_message,omitempty"`
	StartedAt            time.Time         `json:"started_at"`
	CompletedAt          *time.Time        `json:"completed_at,omitempty"`
}

func newScanCompletedEvent(run *models.ScanRun) ScanCompletedEvent {
	return ScanCompletedEvent{
		ScanID:               run.ID,
		Status:               run.Status,
		TriggeredBy:          run.TriggeredBy,
		RecordCount:          run.RecordCount,
		ProfitableCount:      run.ProfitableCount,
		AverageExpectedValue: run.AverageExpectedValue,
		AverageProbability:   run.AverageProbability,
		ErrorMessage:         run.ErrorMessage,
		StartedAt:            run.StartedAt,
		CompletedAt:          run.CompletedAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ScanPublisher writes ScanCompletedEvents keyed by scan ID.
type ScanPublisher struct {
	writer messageWriter
}

// NewScanPublisher creates a publisher writing to topic.
func NewScanPublisher(brokers []string, topic string) *ScanPublisher {
	return &ScanPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}}
}

// PublishScanCompleted publishes run.
func (p *ScanPublisher) PublishScanCompleted(ctx context.Context, run *models.ScanRun) error {
	value, err := json.Marshal(newScanCompletedEvent(run))
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(run.ID),
		Value: value,
		Time:  run.StartedAt,
	})
}

// Close flushes pending writes and closes the writer.
func (p *ScanPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. It stands in when Kafka is not configured.
type NoopPublisher struct{}

// PublishScanCompleted does nothing.
func (NoopPublisher) PublishScanCompleted(context.Context, *models.ScanRun) error { return nil }
