// Package events connects the spread store to Kafka: a consumer that ingests
// spread records published by the upstream scanner, and a publisher that
// announces completed scan runs.
package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	playvalidator "github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/logger"
	"spreadscan/internal/services"
	"spreadscan/internal/validator"
)

const defaultRetryDelay = 5 * time.Second

// ErrPoisonMessage marks a message that can never be imported. Such messages
// are committed and skipped so they do not block the partition.
var ErrPoisonMessage = errors.New("poison message")

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SpreadConsumer imports spread records from a Kafka topic. A message value
// is either a single spread object or a JSON array of them.
type SpreadConsumer struct {
	reader     messageReader
	spreads    services.SpreadServicer
	validate   *playvalidator.Validate
	log        *zap.SugaredLogger
	retryDelay time.Duration
}

// NewSpreadConsumer creates a consumer-group reader on topic.
func NewSpreadConsumer(brokers []string, topic, groupID string, spreads services.SpreadServicer) *SpreadConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        time.Second,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: 0,
	})
	return newSpreadConsumer(reader, spreads)
}

func newSpreadConsumer(reader messageReader, spreads services.SpreadServicer) *SpreadConsumer {
	return &SpreadConsumer{
		reader:     reader,
		spreads:    spreads,
		validate:   validator.New(),
		log:        logger.Named("kafka"),
		retryDelay: defaultRetryDelay,
	}
}

// Run fetches, imports and commits messages until ctx is cancelled. A message
// that fails for a transient reason is retried after a delay; a poison message
// is logged and committed.
func (c *SpreadConsumer) Run(ctx context.Context) error {
	c.log.Infow("spread consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Infow("spread consumer stopped")
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := c.process(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (c *SpreadConsumer) process(ctx context.Context, msg kafka.Message) error {
	for {
		err := c.Handle(ctx, msg)
		if err == nil || errors.Is(err, ErrPoisonMessage) {
			if err != nil {
				c.log.Warnw("skipping poison message",
					"topic", msg.Topic,
					"partition", msg.Partition,
					"offset", msg.Offset,
					"error", err,
				)
			}
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
			}
			return nil
		}

		c.log.Errorw("spread import failed, retrying",
			"offset", msg.Offset,
			"retry_in", c.retryDelay.String(),
			"error", err,
		)
		timer := time.NewTimer(c.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Handle imports the spreads carried by one message. Errors wrapping
// ErrPoisonMessage mean the message is malformed or fails validation; any
// other error is transient.
func (c *SpreadConsumer) Handle(_ context.Context, msg kafka.Message) error {
	inputs, err := decodeSpreads(msg.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPoisonMessage, err)
	}
	for i := range inputs {
		if err := c.validate.Struct(inputs[i]); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrPoisonMessage, i, err)
		}
	}

	created, err := c.spreads.ImportSpreads(inputs)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.StatusCode < http.StatusInternalServerError {
			return fmt.Errorf("%w: %v", ErrPoisonMessage, err)
		}
		return err
	}

	c.log.Infow("imported spreads",
		"offset", msg.Offset,
		"received", len(inputs),
		"created", created,
	)
	return nil
}

// Close closes the underlying reader.
func (c *SpreadConsumer) Close() error {
	return c.reader.Close()
}

func decodeSpreads(value []byte) ([]services.SpreadInput, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return nil, errors.New("empty message")
	}

	if trimmed[0] == '[' {
		var inputs []services.SpreadInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, err
		}
		if len(inputs) == 0 {
			return nil, errors.New("empty spread array")
		}
		return inputs, nil
	}

	var input services.SpreadInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, err
	}
	return []services.SpreadInput{input}, nil
}
