package draw

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/dto"
	"github.com/salembot/neoraffle/internal/notify"
	drawservice "github.com/salembot/neoraffle/internal/service/drawservice"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Notify(e notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) Close() {}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

func NewMock(t *testing.T) (*DrawHandler, *MockService, *recordingNotifier) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	notifier := &recordingNotifier{}
	handler := New(service, notifier)
	defer ctrl.Finish()
	return handler, service, notifier
}

func TestDrawHandler(t *testing.T) {
	handler, service, notifier := NewMock(t)

	service.EXPECT().DrawWinners(gomock.Any()).
		Return(&drawservice.Report{
			RunID: "9f2c7f3a",
			Lots: []drawservice.LotResult{
				{LotID: 42, OwnerID: 1042, Title: "Steam key", Type: domain.Raffle, Winners: []int64{7, 9}},
				{LotID: 43, OwnerID: 1042, Title: "Art commission", Type: domain.Auction, Winners: []int64{5}},
			},
		}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/draw", nil)
	w := httptest.NewRecorder()
	handler.Draw(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var response dto.DrawResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "9f2c7f3a", response.RunID)
	assert.Len(t, response.Lots, 2)
	assert.Equal(t, "raffle", response.Lots[0].Type)
	assert.Equal(t, []int64{7, 9}, response.Lots[0].Winners)
	assert.Equal(t, 1, notifier.count())
}

func TestDrawHandlerFailure(t *testing.T) {
	handler, service, notifier := NewMock(t)

	service.EXPECT().DrawWinners(gomock.Any()).Return(nil, errors.New("error"))

	r := httptest.NewRequest(http.MethodPost, "/api/draw", nil)
	w := httptest.NewRecorder()
	handler.Draw(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, notifier.count())
}

func TestSummaryHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	bidder := int64(5)
	amount := int64(60)
	service.EXPECT().EventSummary(gomock.Any()).
		Return([]drawservice.LotSummary{
			{LotID: 42, Title: "Steam key", Type: domain.Raffle, TicketsSold: 6},
			{LotID: 43, Title: "Art commission", Type: domain.Auction, TopBidder: &bidder, TopAmount: &amount},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/draw/summary", nil)
	w := httptest.NewRecorder()
	handler.Summary(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []dto.LotSummaryResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&response)
	assert.Len(t, response, 2)
	assert.Equal(t, 6, response[0].TicketsSold)
	assert.Equal(t, int64(60), *response[1].TopAmount)
}

func TestSummaryHandlerFailure(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().EventSummary(gomock.Any()).Return(nil, errors.New("error"))

	r := httptest.NewRequest(http.MethodGet, "/api/draw/summary", nil)
	w := httptest.NewRecorder()
	handler.Summary(w, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
