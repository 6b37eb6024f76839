package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisherPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	event := InterviewCreated{
		Type:           TypeInterviewCreated,
		InterviewID:    5,
		UserID:         12,
		Urgency:        "routine",
		ConditionCount: 2,
		CreatedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := p.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "12" {
		t.Errorf("key = %q, want 12", msg.Key)
	}

	var decoded InterviewCreated
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	if !decoded.CreatedAt.Equal(event.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", decoded.CreatedAt, event.CreatedAt)
	}
	decoded.CreatedAt = event.CreatedAt
	if decoded != event {
		t.Errorf("decoded %+v, want %+v", decoded, event)
	}
}

func TestKafkaPublisherWrapsErrors(t *testing.T) {
	cause := errors.New("broker down")
	p := &KafkaPublisher{writer: &fakeWriter{err: cause}}

	err := p.Publish(context.Background(), InterviewCreated{Type: TypeInterviewCreated})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
}

func TestKafkaPublisherClose(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}
	if err := p.Close(); err != nil || !w.closed {
		t.Fatalf("Close = %v, closed = %v", err, w.closed)
	}
}

func TestNewKafkaPublisherWriterSettings(t *testing.T) {
	p := NewKafkaPublisher([]string{"k1:9092", "k2:9092"}, "symcheck.interviews")
	w, ok := p.writer.(*kafka.Writer)
	if !ok {
		t.Fatalf("writer is %T, want *kafka.Writer", p.writer)
	}
	if w.Topic != "symcheck.interviews" {
		t.Errorf("Topic = %q", w.Topic)
	}
	if w.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", w.MaxAttempts)
	}
	if w.BatchTimeout <= 0 || w.BatchTimeout > 10*time.Millisecond {
		t.Errorf("BatchTimeout = %v, want a few milliseconds", w.BatchTimeout)
	}
	if w.Async {
		t.Error("writer should report delivery errors synchronously")
	}
}
