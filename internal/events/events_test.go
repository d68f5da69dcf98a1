package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/logger"
	"spreadscan/internal/models"
	"spreadscan/internal/services"
	"spreadscan/internal/testutil"
)

func init() {
	logger.Init("test")
}

const validSpread = `{"id":"0190a1b2-c3d4-7e5f-8a9b-000000000001","symbol":"AAPL","company_name":"Apple Inc.",` +
	`"spread_type":"bull_call_spread","expected_value":125.5,"max_profit":250,"max_loss":-125,` +
	`"profit_probability":72.5,"days_to_expiration":23,"strike_price_long":180,"strike_price_short":185,` +
	`"premium_paid":125}`

const secondSpread = `{"symbol":"MSFT","company_name":"Microsoft Corporation","spread_type":"bear_put_spread",` +
	`"expected_value":89.25,"max_profit":200,"max_loss":-110.75,"profit_probability":68.3,` +
	`"days_to_expiration":31,"strike_price_long":420,"strike_price_short":415,"premium_paid":200,"premium_received":110.75}`

// fakeReader serves queued messages and cancels the run once drained.
type fakeReader struct {
	queue     []kafka.Message
	committed []int64
	cancel    context.CancelFunc
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type stubSpreads struct {
	services.SpreadServicer
	importFn func(inputs []services.SpreadInput) (int, error)
}

func (s *stubSpreads) ImportSpreads(inputs []services.SpreadInput) (int, error) {
	return s.importFn(inputs)
}

func message(offset int64, value string) kafka.Message {
	return kafka.Message{Topic: "options.spreads", Offset: offset, Value: []byte(value)}
}

func TestDecodeSpreads(t *testing.T) {
	t.Run("single_object", func(t *testing.T) {
		inputs, err := decodeSpreads([]byte(validSpread))
		testutil.AssertNoError(t, err)
		if len(inputs) != 1 || inputs[0].Symbol != "AAPL" {
			t.Errorf("unexpected inputs %+v", inputs)
		}
	})

	t.Run("array_with_whitespace", func(t *testing.T) {
		inputs, err := decodeSpreads([]byte("\n  [" + validSpread + "," + secondSpread + "]  "))
		testutil.AssertNoError(t, err)
		if len(inputs) != 2 || inputs[1].SpreadType != models.SpreadTypeBearPut {
			t.Errorf("unexpected inputs %+v", inputs)
		}
	})

	t.Run("empty_array", func(t *testing.T) {
		if _, err := decodeSpreads([]byte("[]")); err == nil {
			t.Error("expected error for empty array")
		}
	})

	t.Run("empty_value", func(t *testing.T) {
		if _, err := decodeSpreads(nil); err == nil {
			t.Error("expected error for empty value")
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		if _, err := decodeSpreads([]byte(`{"symbol":`)); err == nil {
			t.Error("expected error for malformed json")
		}
	})
}

func TestSpreadConsumer_Handle(t *testing.T) {
	t.Run("imports_into_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		store := services.NewSpreadService(db)
		c := newSpreadConsumer(&fakeReader{}, store)

		err := c.Handle(context.Background(), message(1, "["+validSpread+","+secondSpread+"]"))
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.OptionsSpread{}).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 spreads, got %d", count)
		}
	})

	t.Run("redelivery_is_idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		store := services.NewSpreadService(db)
		c := newSpreadConsumer(&fakeReader{}, store)

		testutil.AssertNoError(t, c.Handle(context.Background(), message(1, validSpread)))
		testutil.AssertNoError(t, c.Handle(context.Background(), message(1, validSpread)))

		var count int64
		db.Model(&models.OptionsSpread{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 spread after redelivery, got %d", count)
		}
	})

	t.Run("validation_failure_is_poison", func(t *testing.T) {
		called := false
		store := &stubSpreads{importFn: func(_ []services.SpreadInput) (int, error) {
			called = true
			return 0, nil
		}}
		c := newSpreadConsumer(&fakeReader{}, store)

		bad := `{"symbol":"AAPL","spread_type":"straddle","max_profit":1,"max_loss":-1,"strike_price_long":1,"strike_price_short":1}`
		err := c.Handle(context.Background(), message(1, bad))

		if !errors.Is(err, ErrPoisonMessage) {
			t.Fatalf("expected poison error, got %v", err)
		}
		if called {
			t.Error("expected import to be skipped")
		}
	})

	t.Run("store_rejection_is_poison", func(t *testing.T) {
		store := &stubSpreads{importFn: func(_ []services.SpreadInput) (int, error) {
			return 0, apperrors.ErrInvalidSpread
		}}
		c := newSpreadConsumer(&fakeReader{}, store)

		err := c.Handle(context.Background(), message(1, validSpread))

		if !errors.Is(err, ErrPoisonMessage) {
			t.Fatalf("expected poison error, got %v", err)
		}
	})

	t.Run("store_outage_is_transient", func(t *testing.T) {
		store := &stubSpreads{importFn: func(_ []services.SpreadInput) (int, error) {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("disk full"))
		}}
		c := newSpreadConsumer(&fakeReader{}, store)

		err := c.Handle(context.Background(), message(1, validSpread))

		if err == nil || errors.Is(err, ErrPoisonMessage) {
			t.Fatalf("expected transient error, got %v", err)
		}
	})
}

func TestSpreadConsumer_Run(t *testing.T) {
	t.Run("commits_good_and_poison_messages", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		imported := 0
		store := &stubSpreads{importFn: func(inputs []services.SpreadInput) (int, error) {
			imported += len(inputs)
			return len(inputs), nil
		}}
		reader := &fakeReader{
			queue: []kafka.Message{
				message(10, validSpread),
				message(11, "not json"),
				message(12, "["+validSpread+","+secondSpread+"]"),
			},
			cancel: cancel,
		}
		c := newSpreadConsumer(reader, store)

		if err := c.Run(ctx); err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
		if imported != 3 {
			t.Errorf("expected 3 imported records, got %d", imported)
		}
		want := []int64{10, 11, 12}
		if len(reader.committed) != len(want) {
			t.Fatalf("expected commits %v, got %v", want, reader.committed)
		}
		for i := range want {
			if reader.committed[i] != want[i] {
				t.Errorf("commit %d: expected offset %d, got %d", i, want[i], reader.committed[i])
			}
		}
	})

	t.Run("retries_transient_failures", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		attempts := 0
		store := &stubSpreads{importFn: func(inputs []services.SpreadInput) (int, error) {
			attempts++
			if attempts < 3 {
				return 0, apperrors.ErrDataSourceUnavailable
			}
			return len(inputs), nil
		}}
		reader := &fakeReader{queue: []kafka.Message{message(5, validSpread)}, cancel: cancel}
		c := newSpreadConsumer(reader, store)
		c.retryDelay = time.Millisecond

		if err := c.Run(ctx); err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
		if attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", attempts)
		}
		if len(reader.committed) != 1 || reader.committed[0] != 5 {
			t.Errorf("expected offset 5 committed once, got %v", reader.committed)
		}
	})

	t.Run("close_closes_reader", func(t *testing.T) {
		reader := &fakeReader{}
		c := newSpreadConsumer(reader, &stubSpreads{})
		testutil.AssertNoError(t, c.Close())
		if !reader.closed {
			t.Error("expected reader to be closed")
		}
	})
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestScanPublisher(t *testing.T) {
	t.Run("keys_event_by_scan_id", func(t *testing.T) {
		w := &fakeWriter{}
		p := &ScanPublisher{writer: w}
		done := time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC)
		run := &models.ScanRun{
			Base:                 models.Base{ID: "0190a1b2-c3d4-7e5f-8a9b-0000000000aa"},
			TriggeredBy:          "trader@example.com",
			Status:               models.ScanStatusCompleted,
			RecordCount:          5,
			ProfitableCount:      5,
			AverageExpectedValue: 99.15,
			AverageProbability:   69.22,
			StartedAt:            done.Add(-2 * time.Second),
			CompletedAt:          &done,
		}

		testutil.AssertNoError(t, p.PublishScanCompleted(context.Background(), run))

		if len(w.messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(w.messages))
		}
		msg := w.messages[0]
		if string(msg.Key) != run.ID {
			t.Errorf("expected key %s, got %s", run.ID, msg.Key)
		}
		var event ScanCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.ScanID != run.ID || event.RecordCount != 5 || event.Status != models.ScanStatusCompleted {
			t.Errorf("unexpected event %+v", event)
		}
		if event.CompletedAt == nil || !event.CompletedAt.Equal(done) {
			t.Errorf("expected completed_at %v, got %v", done, event.CompletedAt)
		}
	})

	t.Run("propagates_write_errors", func(t *testing.T) {
		p := &ScanPublisher{writer: &fakeWriter{err: errors.New("broker down")}}
		err := p.PublishScanCompleted(context.Background(), &models.ScanRun{Base: models.Base{ID: "x"}})
		if err == nil {
			t.Error("expected write error")
		}
	})

	t.Run("noop_publisher", func(t *testing.T) {
		var p services.ScanEventPublisher = NoopPublisher{}
		testutil.AssertNoError(t, p.PublishScanCompleted(context.Background(), &models.ScanRun{}))
	})
}
