package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/notification"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/sse"
)

type fakeNotificationRepo struct {
	mu      sync.Mutex
	direct  []*notification.Notification
	batches [][]*notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.direct = append(f.direct, n)
	return nil
}

func (f *fakeNotificationRepo) CreateBatch(_ context.Context, ns []*notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, ns)
	return nil
}

func (f *fakeNotificationRepo) GetByUserID(_ context.Context, userID string, page, pageSize int, _ bool) ([]*notification.Notification, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*notification.Notification
	for _, n := range f.stored() {
		if n.RecipientID == userID {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

func (f *fakeNotificationRepo) GetUnreadCount(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.stored() {
		if n.RecipientID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(_ context.Context, ids []string, userID string) error {
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(_ context.Context, userID string) error { return nil }

func (f *fakeNotificationRepo) Delete(_ context.Context, id string, userID string) error { return nil }

// stored flattens direct inserts and batches; callers must hold f.mu.
func (f *fakeNotificationRepo) stored() []*notification.Notification {
	out := append([]*notification.Notification{}, f.direct...)
	for _, b := range f.batches {
		out = append(out, b...)
	}
	return out
}

func (f *fakeNotificationRepo) batchedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, b := range f.batches {
		n += len(b)
	}
	return n
}

func queueRequest(recipient string) notification.CreateNotificationRequest {
	return notification.CreateNotificationRequest{
		RecipientID: recipient,
		Type:        notification.TypeApplicationStatus,
		Title:       "Application update",
		Message:     "Your application moved to For Review",
	}
}

func TestQueueNotification_FlushedOnStop(t *testing.T) {
	repo := &fakeNotificationRepo{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub, Config{
		BatchSize:     100,
		FlushInterval: time.Hour,
		WorkerCount:   1,
		QueueSize:     10,
	})

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.QueueNotification(context.Background(), queueRequest("user-1")))
	}

	// Stop drains the queue and flushes the pending batch
	svc.Stop()

	assert.Equal(t, 3, repo.batchedCount())
	assert.Empty(t, repo.direct)

	delivered := 0
	for {
		select {
		case <-ch:
			delivered++
		default:
			assert.Equal(t, 3, delivered)
			return
		}
	}
}

func TestQueueNotification_BatchSizeTriggersFlush(t *testing.T) {
	repo := &fakeNotificationRepo{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub, Config{
		BatchSize:     2,
		FlushInterval: time.Hour,
		WorkerCount:   1,
		QueueSize:     10,
	})
	defer svc.Stop()

	require.NoError(t, svc.QueueNotification(context.Background(), queueRequest("user-1")))
	require.NoError(t, svc.QueueNotification(context.Background(), queueRequest("user-1")))

	require.Eventually(t, func() bool {
		return repo.batchedCount() == 2
	}, 2*time.Second, 10*time.Millisecond, "batch should flush once it reaches BatchSize")
}

func TestQueueNotification_FullQueueFallsBackToDirectInsert(t *testing.T) {
	repo := &fakeNotificationRepo{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub, Config{
		BatchSize:     100,
		FlushInterval: time.Hour,
		WorkerCount:   1,
		QueueSize:     1,
	})
	defer svc.Stop()

	// Enough requests to overrun a single-slot queue; at least one must
	// take the synchronous path. Both paths persist, so nothing is lost.
	total := 10
	for i := 0; i < total; i++ {
		require.NoError(t, svc.QueueNotification(context.Background(), queueRequest("user-1")))
	}

	require.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		n := len(repo.direct)
		for _, b := range repo.batches {
			n += len(b)
		}
		return n == total
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetNotifications_ClampsPagination(t *testing.T) {
	repo := &fakeNotificationRepo{
		direct: []*notification.Notification{
			{ID: "n-1", RecipientID: "user-1", Title: "hello", CreatedAt: time.Now()},
		},
	}
	svc := NewNotificationService(repo, sse.NewHub(), Config{FlushInterval: time.Hour})
	defer svc.Stop()

	resp, err := svc.GetNotifications(context.Background(), "user-1", 0, 0, false)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestSubscribe_DeliversPublishedNotifications(t *testing.T) {
	repo := &fakeNotificationRepo{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub, Config{FlushInterval: time.Hour})
	defer svc.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := svc.Subscribe(ctx, "user-1")
	defer cleanup()

	hub.Publish("user-1", sse.Event{
		UserID: "user-1",
		Event:  "notification",
		Data:   notification.NotificationResponse{ID: "n-1", Title: "hello"},
	})

	select {
	case ev := <-events:
		assert.Equal(t, "notification", ev.Event)
		assert.Equal(t, "n-1", ev.Data.ID)
	case <-time.After(time.Second):
		t.Fatal("expected an event on the subscription channel")
	}
}
