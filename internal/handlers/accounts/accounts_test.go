package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/dto"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService, *MockLedger) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	ledger := NewMockLedger(ctrl)
	handler := New(service, ledger)
	defer ctrl.Finish()
	return handler, service, ledger
}

func withURLParam(r *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"user_id":1042,"username":"salem","neopts":3000,"ggpts":500,"post_count":100,"wiki_edits":10}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&domain.CurrencyBreakdown{NeoPts: 2000, GGPts: 500, PostPts: 100, WikiPts: 10, TotalPts: 2610}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"user_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Already registered",
			body: `{"user_id":1042,"username":"salem"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrAlreadyRegistered)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"user_id":1042,"username":"salem"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/accounts/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var body dto.RegisterResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(2610), body.TotalPts)
			}
		})
	}
}

func TestIsRegisteredHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().IsRegistered(gomock.Any(), int64(1042)).Return(true, nil)

	r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/accounts/1042/registered", nil), "userID", "1042")
	w := httptest.NewRecorder()
	handler.IsRegistered(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.RegisteredResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Registered)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, _, ledger := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful retrieval",
			userID: "1042",
			prepareMock: func() {
				ledger.EXPECT().Available(gomock.Any(), int64(1042)).Return(int64(2410), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "User not registered",
			userID: "9",
			prepareMock: func() {
				ledger.EXPECT().Available(gomock.Any(), int64(9)).Return(int64(0), domain.ErrUserNotRegistered)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid user ID",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/accounts/"+tt.userID+"/balance", nil), "userID", tt.userID)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(2410), body.Available)
			}
		})
	}
}

func TestSetBalanceHandler(t *testing.T) {
	handler, _, ledger := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Set absolute value",
			body: `{"value":2000}`,
			prepareMock: func() {
				ledger.EXPECT().SetBalance(gomock.Any(), int64(1042), int64(2000)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Apply delta",
			body: `{"delta":-150}`,
			prepareMock: func() {
				ledger.EXPECT().Adjust(gomock.Any(), int64(1042), int64(-150)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Both fields present",
			body:         `{"value":2000,"delta":-150}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Neither field present",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "User not registered",
			body: `{"value":2000}`,
			prepareMock: func() {
				ledger.EXPECT().SetBalance(gomock.Any(), int64(1042), int64(2000)).Return(domain.ErrUserNotRegistered)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withURLParam(httptest.NewRequest(http.MethodPut, "/api/accounts/1042/balance", bytes.NewBufferString(tt.body)), "userID", "1042")
			w := httptest.NewRecorder()
			handler.SetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListUsernamesHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ListUsernames(gomock.Any()).Return([]string{"salem", "miso"}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/accounts/usernames", nil)
	w := httptest.NewRecorder()
	handler.ListUsernames(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.UsernamesResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, []string{"salem", "miso"}, body.Usernames)
}
