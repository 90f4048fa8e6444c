package manager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-management/internal/logger"
	"property-management/internal/model"
)

type memoryStore struct {
	mu     sync.Mutex
	events []model.Event
	err    error
}

func (m *memoryStore) InsertAuditEvent(ctx context.Context, e model.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, e)
	return nil
}

type fakeBroker struct {
	published [][]byte
	err       error
}

func (b *fakeBroker) DeclareQueues() error { return nil }

func (b *fakeBroker) Publish(ctx context.Context, id string, body []byte) error {
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, body)
	return nil
}

func (b *fakeBroker) QueueName() string { return "property_events" }

func (b *fakeBroker) WatchQueueDepth(ctx context.Context, every time.Duration) {}

func newEvent(t *testing.T) model.Event {
	t.Helper()
	e, err := model.NewEvent("tenant", 4, model.ActionCreated, map[string]string{"name": "June"})
	require.NoError(t, err)
	return e
}

func TestPublishWithoutBrokerStoresDirectly(t *testing.T) {
	store := &memoryStore{}
	am := NewAuditManager(store, nil, nil, 2)
	require.NoError(t, am.Start())

	ctx, _ := logger.ContextWithRequestID(context.Background(), "req-9")
	am.Publish(ctx, newEvent(t))

	require.Len(t, store.events, 1)
	assert.Equal(t, "req-9", store.events[0].RequestID)
	am.Shutdown()
}

func TestPublishThroughBroker(t *testing.T) {
	store := &memoryStore{}
	broker := &fakeBroker{}
	am := NewAuditManager(store, broker, nil, 2)

	e := newEvent(t)
	am.Publish(context.Background(), e)

	assert.Empty(t, store.events)
	require.Len(t, broker.published, 1)
	var decoded model.Event
	require.NoError(t, json.Unmarshal(broker.published[0], &decoded))
	assert.Equal(t, e.ID, decoded.ID)
	assert.JSONEq(t, `{"name":"June"}`, string(decoded.Payload))
}

func TestPublishFallsBackWhenBrokerFails(t *testing.T) {
	store := &memoryStore{}
	am := NewAuditManager(store, &fakeBroker{err: errors.New("channel closed")}, nil, 2)

	am.Publish(context.Background(), newEvent(t))
	assert.Len(t, store.events, 1)
}

func TestPublishSwallowsStoreErrors(t *testing.T) {
	am := NewAuditManager(&memoryStore{err: errors.New("db down")}, nil, nil, 1)
	assert.NotPanics(t, func() { am.Publish(context.Background(), newEvent(t)) })
}

func TestHandleMessage(t *testing.T) {
	store := &memoryStore{}
	am := NewAuditManager(store, nil, nil, 1)
	body, err := json.Marshal(newEvent(t))
	require.NoError(t, err)

	require.NoError(t, am.handleMessage(context.Background(), amqp.Delivery{Body: body}))
	require.Len(t, store.events, 1)
	assert.Equal(t, "tenant", store.events[0].Entity)

	assert.Error(t, am.handleMessage(context.Background(), amqp.Delivery{Body: []byte("not json")}))
	assert.Error(t, am.handleMessage(context.Background(), amqp.Delivery{Body: []byte(`{"entity":"tenant"}`)}))

	store.err = errors.New("db down")
	assert.Error(t, am.handleMessage(context.Background(), amqp.Delivery{Body: body}))
}

func TestSetWorkerCountRequiresRunningConsumer(t *testing.T) {
	am := NewAuditManager(&memoryStore{}, nil, nil, 1)
	n, err := am.SetWorkerCount(3)
	assert.ErrorIs(t, err, ErrNotRunning)
	assert.Zero(t, n)
}
