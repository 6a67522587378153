package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetco-health/vetco-api/internal/model"
	"github.com/vetco-health/vetco-api/pkg/logger"
	"github.com/vetco-health/vetco-api/pkg/metrics"
)

type fakeOutboxRepo struct {
	pending   []*model.OutboxEvent
	processed []uuid.UUID
	failed    map[uuid.UUID]string
}

func newFakeOutboxRepo(events ...*model.OutboxEvent) *fakeOutboxRepo {
	return &fakeOutboxRepo{
		pending: events,
		failed:  make(map[uuid.UUID]string),
	}
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *model.OutboxEvent) error {
	f.pending = append(f.pending, event)
	return nil
}

func (f *fakeOutboxRepo) GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	if limit > len(f.pending) {
		limit = len(f.pending)
	}
	return f.pending[:limit], nil
}

func (f *fakeOutboxRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	f.processed = append(f.processed, id)
	return nil
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	f.failed[id] = errMsg
	return nil
}

type fakeBroker struct {
	published map[string][]interface{}
	err       error
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{published: make(map[string][]interface{})}
}

func (f *fakeBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.published[channel] = append(f.published[channel], message)
	return nil
}

func (f *fakeBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBroker) Close() error { return nil }

// Metrics built without promauto, so repeated tests do not collide on the
// default registry.
func newTestMetrics() *metrics.Metrics {
	return &metrics.Metrics{
		OutboxEventsProcessed:   prometheus.NewCounter(prometheus.CounterOpts{Name: "test_processed_total"}),
		OutboxEventsFailed:      prometheus.NewCounter(prometheus.CounterOpts{Name: "test_failed_total"}),
		OutboxProcessingLatency: prometheus.NewHistogram(prometheus.HistogramOpts{Name: "test_duration_seconds"}),
		OutboxRetries:           prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_retries_total"}, []string{"event_type"}),
		DatabaseOperations:      prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_db_ops_total"}, []string{"operation", "status"}),
	}
}

func newTestProcessor(repo *fakeOutboxRepo, broker *fakeBroker) *OutboxProcessor {
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	return NewOutboxProcessor(repo, broker, OutboxProcessorConfig{BatchSize: 10}, log, newTestMetrics())
}

func pendingEvent(eventType string) *model.OutboxEvent {
	return &model.OutboxEvent{
		ID:        uuid.New(),
		EventType: eventType,
		Payload:   json.RawMessage(`{"id":"x"}`),
		Status:    model.OutboxStatusPending,
	}
}

func TestProcessEventsPublishesAndMarksProcessed(t *testing.T) {
	event := pendingEvent("appointment.created")
	repo := newFakeOutboxRepo(event)
	broker := newFakeBroker()
	p := newTestProcessor(repo, broker)

	require.NoError(t, p.ProcessEvents(context.Background()))

	require.Len(t, broker.published[ChannelPrefix+"appointment.created"], 1)
	assert.Equal(t, []uuid.UUID{event.ID}, repo.processed)
	assert.Empty(t, repo.failed)
}

func TestProcessEventsMarksFailedOnPublishError(t *testing.T) {
	event := pendingEvent("message.created")
	repo := newFakeOutboxRepo(event)
	broker := newFakeBroker()
	broker.err = errors.New("broker down")
	p := newTestProcessor(repo, broker)

	// A publish failure marks the event, it does not abort the batch.
	require.NoError(t, p.ProcessEvents(context.Background()))

	assert.Empty(t, repo.processed)
	require.Contains(t, repo.failed, event.ID)
	assert.Contains(t, repo.failed[event.ID], "broker down")
}

func TestProcessEventsRespectsBatchSize(t *testing.T) {
	repo := newFakeOutboxRepo(
		pendingEvent("record.created"),
		pendingEvent("record.created"),
		pendingEvent("record.created"),
	)
	broker := newFakeBroker()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	p := NewOutboxProcessor(repo, broker, OutboxProcessorConfig{BatchSize: 2}, log, newTestMetrics())

	require.NoError(t, p.ProcessEvents(context.Background()))
	assert.Len(t, repo.processed, 2)
}

func TestProcessEventsEmptyOutbox(t *testing.T) {
	repo := newFakeOutboxRepo()
	broker := newFakeBroker()
	p := newTestProcessor(repo, broker)

	require.NoError(t, p.ProcessEvents(context.Background()))
	assert.Empty(t, broker.published)
	assert.Empty(t, repo.processed)
}
