// Package notify forwards purchase, outbid and draw events to the bot layer
// over a webhook. Delivery is asynchronous and best-effort: the triggering
// operation never waits on, or fails because of, a notification.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	queueSize     = 256
)

type EventType string

const (
	EventPurchase EventType = "purchase"
	EventOutbid   EventType = "outbid"
	EventDraw     EventType = "draw"
)

type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

type Notifier interface {
	Notify(event Event)
	Close()
}

// Noop stands in when no webhook URL is configured.
type Noop struct{}

func (Noop) Notify(Event) {}
func (Noop) Close()       {}

type HTTPPoster interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type Webhook struct {
	url    string
	client HTTPPoster
	queue  chan Event
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// New returns a webhook notifier with a worker pool draining the event queue,
// or a Noop when url is empty.
func New(url string, client HTTPPoster, workers int) Notifier {
	if url == "" {
		return Noop{}
	}

	n := &Webhook{
		url:    url,
		client: client,
		queue:  make(chan Event, queueSize),
	}
	for i := 0; i < workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	return n
}

// Notify enqueues the event without blocking. A full queue drops the event;
// the bot layer tolerates missed notices. Events arriving after Close are
// dropped too: during shutdown the HTTP server may still be draining requests
// that fire notifications.
func (n *Webhook) Notify(event Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		zap.L().Warn("notifier closed, event dropped", zap.String("type", string(event.Type)))
		return
	}
	select {
	case n.queue <- event:
	default:
		zap.L().Warn("notification queue full, event dropped", zap.String("type", string(event.Type)))
	}
}

// Close stops accepting events and waits for queued ones to be delivered.
func (n *Webhook) Close() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()
	n.wg.Wait()
}

func (n *Webhook) worker() {
	defer n.wg.Done()
	for event := range n.queue {
		n.deliver(event)
	}
}

func (n *Webhook) deliver(event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't encode notification", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, err := n.client.Post(n.url, nil, body)
		if err == nil && statusCode < http.StatusInternalServerError {
			if statusCode >= http.StatusBadRequest {
				zap.L().Warn("webhook rejected notification",
					zap.String("type", string(event.Type)),
					zap.Int("status", statusCode))
			}
			return
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	zap.L().Error("notification undelivered",
		zap.String("type", string(event.Type)),
		zap.Int("retries", maxRetries))
}
