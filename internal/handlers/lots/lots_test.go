package lots

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
	catalogservice "github.com/salembot/neoraffle/internal/service/catalogservice"
)

func NewMock(t *testing.T) (*LotHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func int64ptr(v int64) *int64 { return &v }

func TestAddLotHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful raffle submission",
			body: `{"owner_id":1042,"title":"Steam key","description":"A fine game","price":"1,500","quantity":"3","type":"raffle"}`,
			prepareMock: func() {
				service.EXPECT().AddLot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p catalogservice.AddLotParams) (int64, error) {
						assert.Equal(t, "1,500", p.Price)
						assert.Equal(t, domain.Raffle, p.Type)
						return 42, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Unknown lot type",
			body:         `{"owner_id":1042,"title":"x","description":"y","quantity":1,"type":"lottery"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Validation problems",
			body: `{"owner_id":1042,"title":"","description":"","price":"free","quantity":"11","type":"raffle"}`,
			prepareMock: func() {
				service.EXPECT().AddLot(gomock.Any(), gomock.Any()).
					Return(int64(0), domain.ValidationErrors{
						{Field: "title", Reason: "must not be empty"},
						{Field: "price", Reason: "is not a valid number"},
					})
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Owner not registered",
			body: `{"owner_id":9,"title":"x","description":"y","price":10,"quantity":1,"type":"raffle"}`,
			prepareMock: func() {
				service.EXPECT().AddLot(gomock.Any(), gomock.Any()).
					Return(int64(0), domain.ErrUserNotRegistered)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{"owner_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/lots", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.AddLot(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var body dto.AddLotResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(42), body.LotID)
			}
		})
	}
}

func TestGetLotHandler(t *testing.T) {
	handler, service := NewMock(t)

	price := int64(1500)
	service.EXPECT().GetLot(gomock.Any(), int64(42)).
		Return(&domain.Lot{ID: 42, OwnerID: 1042, Title: "Steam key", Price: &price, Quantity: 3, Type: domain.Raffle}, nil)

	r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/lots/42", nil), "lotID", "42")
	w := httptest.NewRecorder()
	handler.GetLot(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.LotResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "raffle", body.Type)
	assert.Equal(t, int64(1500), *body.Price)

	service.EXPECT().GetLot(gomock.Any(), int64(99)).Return(nil, domain.ErrLotNotFound)
	r = withURLParam(httptest.NewRequest(http.MethodGet, "/api/lots/99", nil), "lotID", "99")
	w = httptest.NewRecorder()
	handler.GetLot(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListLotsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListLots(gomock.Any()).Return([]domain.Lot{{ID: 1, Title: "Steam key"}}, nil)
	w := httptest.NewRecorder()
	handler.ListLots(w, httptest.NewRequest(http.MethodGet, "/api/lots", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().ListLots(gomock.Any()).Return(nil, nil)
	w = httptest.NewRecorder()
	handler.ListLots(w, httptest.NewRequest(http.MethodGet, "/api/lots", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEditLotHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful edit",
			body: `{"title":"New title"}`,
			prepareMock: func() {
				service.EXPECT().EditLot(gomock.Any(), int64(42), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Lot not found",
			body: `{"title":"x"}`,
			prepareMock: func() {
				service.EXPECT().EditLot(gomock.Any(), int64(42), gomock.Any()).Return(domain.ErrLotNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Unknown owner",
			body: `{"owner_id":77}`,
			prepareMock: func() {
				service.EXPECT().EditLot(gomock.Any(), int64(42), gomock.Any()).Return(domain.ErrInvalidOwner)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/lots/42", bytes.NewBufferString(tt.body)), "lotID", "42")
			w := httptest.NewRecorder()
			handler.EditLot(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteLotHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful delete without ownership check",
			url:  "/api/lots/42",
			prepareMock: func() {
				service.EXPECT().DeleteLot(gomock.Any(), int64(42), gomock.Nil()).
					Return(&catalogservice.DeleteResult{OwnerID: 1042, OwnedLots: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Requester does not own the lot",
			url:  "/api/lots/42?requester_id=7",
			prepareMock: func() {
				service.EXPECT().DeleteLot(gomock.Any(), int64(42), int64ptr(7)).
					Return(nil, domain.ErrNotOwner)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Lot not found",
			url:  "/api/lots/42",
			prepareMock: func() {
				service.EXPECT().DeleteLot(gomock.Any(), int64(42), gomock.Nil()).
					Return(nil, domain.ErrLotNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid requester_id",
			url:          "/api/lots/42?requester_id=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			url:  "/api/lots/42",
			prepareMock: func() {
				service.EXPECT().DeleteLot(gomock.Any(), int64(42), gomock.Nil()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withURLParam(httptest.NewRequest(http.MethodDelete, tt.url, nil), "lotID", "42")
			w := httptest.NewRecorder()
			handler.DeleteLot(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCountOwnedLotsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().CountOwnedLots(gomock.Any(), int64(1042)).Return(4, nil)

	r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/accounts/1042/lots/count", nil), "userID", "1042")
	w := httptest.NewRecorder()
	handler.CountOwnedLots(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]int
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 4, body["owned_lots"])
}
