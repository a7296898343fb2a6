package accountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salembot/neoraffle/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	service := New(userRepo)
	defer ctrl.Finish()
	return service, userRepo
}

func TestRegister(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name              string
		params            RegisterParams
		prepareMock       func()
		expectedBreakdown *domain.CurrencyBreakdown
		expectedError     error
	}{
		{
			name: "Caps applied per source",
			params: RegisterParams{
				UserID:    1,
				Username:  "tiffany",
				NeoPts:    3000, // capped at 2000
				GGPts:     500,
				PostCount: 100,
				WikiEdits: 10,
			},
			prepareMock: func() {
				userRepo.EXPECT().Exists(gomock.Any(), int64(1)).Return(false, nil)
				userRepo.EXPECT().Create(gomock.Any(), &domain.User{
					ID:       1,
					Username: "tiffany",
					Currency: 2610,
					Active:   true,
				}).Return(&domain.User{ID: 1}, nil)
			},
			expectedBreakdown: &domain.CurrencyBreakdown{
				NeoPts:   2000,
				GGPts:    500,
				PostPts:  100,
				WikiPts:  10,
				TotalPts: 2610,
			},
		},
		{
			name: "Negative sources clamp to zero",
			params: RegisterParams{
				UserID:    2,
				Username:  "lurker",
				NeoPts:    -50,
				PostCount: 30000, // capped at 20000
			},
			prepareMock: func() {
				userRepo.EXPECT().Exists(gomock.Any(), int64(2)).Return(false, nil)
				userRepo.EXPECT().Create(gomock.Any(), &domain.User{
					ID:       2,
					Username: "lurker",
					Currency: 20000,
					Active:   true,
				}).Return(&domain.User{ID: 2}, nil)
			},
			expectedBreakdown: &domain.CurrencyBreakdown{
				PostPts:  20000,
				TotalPts: 20000,
			},
		},
		{
			name: "Custom caps override defaults",
			params: RegisterParams{
				UserID:    3,
				Username:  "capped",
				NeoPts:    1000,
				NeoPtsCap: 500,
			},
			prepareMock: func() {
				userRepo.EXPECT().Exists(gomock.Any(), int64(3)).Return(false, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 3}, nil)
			},
			expectedBreakdown: &domain.CurrencyBreakdown{
				NeoPts:   500,
				TotalPts: 500,
			},
		},
		{
			name:   "Already registered",
			params: RegisterParams{UserID: 1, Username: "tiffany"},
			prepareMock: func() {
				userRepo.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
			},
			expectedError: domain.ErrAlreadyRegistered,
		},
		{
			name:   "Storage failure propagates",
			params: RegisterParams{UserID: 4, Username: "broken"},
			prepareMock: func() {
				userRepo.EXPECT().Exists(gomock.Any(), int64(4)).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			breakdown, err := service.Register(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, breakdown)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBreakdown, breakdown)
			}
		})
	}
}

func TestRegisterInactiveAccount(t *testing.T) {
	service, userRepo := NewMock(t)

	userRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(false, nil)
	userRepo.EXPECT().Create(gomock.Any(), &domain.User{
		ID:       5,
		Username: "banned",
		Currency: 0,
		Active:   false,
	}).Return(&domain.User{ID: 5}, nil)

	_, err := service.Register(context.Background(), RegisterParams{UserID: 5, Username: "banned", Inactive: true})
	assert.NoError(t, err)
}

func TestIsRegistered(t *testing.T) {
	service, userRepo := NewMock(t)

	userRepo.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	registered, err := service.IsRegistered(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, registered)
}

func TestListUsernames(t *testing.T) {
	service, userRepo := NewMock(t)

	userRepo.EXPECT().ListUsernames(gomock.Any()).Return([]string{"tiffany", "lurker"}, nil)
	usernames, err := service.ListUsernames(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"tiffany", "lurker"}, usernames)
}
