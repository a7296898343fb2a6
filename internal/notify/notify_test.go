package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	mu       sync.Mutex
	bodies   [][]byte
	statuses []int
	errs     []error
	calls    int
}

func (f *fakePoster) Post(_ string, _ http.Header, body []byte) (int, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append(f.bodies, body)
	f.calls++
	status := http.StatusOK
	if len(f.statuses) > 0 {
		status = f.statuses[0]
		f.statuses = f.statuses[1:]
	}
	var err error
	if len(f.errs) > 0 {
		err = f.errs[0]
		f.errs = f.errs[1:]
	}
	return status, nil, err
}

func TestNewWithoutURL(t *testing.T) {
	n := New("", &fakePoster{}, 2)
	assert.IsType(t, Noop{}, n)
	n.Notify(Event{Type: EventDraw})
	n.Close()
}

func TestWebhookDelivery(t *testing.T) {
	poster := &fakePoster{}
	n := New("http://bot.local/hook", poster, 2)

	n.Notify(Event{Type: EventPurchase, Payload: map[string]int{"lot_id": 42}})
	n.Close()

	require.Len(t, poster.bodies, 1)
	var event struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(poster.bodies[0], &event))
	assert.Equal(t, "purchase", event.Type)
	assert.Equal(t, 42, event.Payload["lot_id"])
}

func TestWebhookNotifyAfterClose(t *testing.T) {
	poster := &fakePoster{}
	n := New("http://bot.local/hook", poster, 2)

	n.Close()
	assert.NotPanics(t, func() {
		n.Notify(Event{Type: EventPurchase})
	})
	n.Close()

	assert.Equal(t, 0, poster.calls)
}

func TestWebhookRetriesServerErrors(t *testing.T) {
	poster := &fakePoster{statuses: []int{http.StatusInternalServerError, http.StatusOK}}
	n := New("http://bot.local/hook", poster, 1)

	n.Notify(Event{Type: EventOutbid})
	n.Close()

	assert.Equal(t, 2, poster.calls)
}

func TestWebhookGivesUpAfterRetries(t *testing.T) {
	poster := &fakePoster{statuses: []int{
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
	}}
	n := New("http://bot.local/hook", poster, 1)

	n.Notify(Event{Type: EventDraw})
	n.Close()

	assert.Equal(t, 3, poster.calls)
}
