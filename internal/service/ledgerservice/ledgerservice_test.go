package ledgerservice

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

func TestHold(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int64
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful hold",
			userID: 1,
			amount: 200,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Currency: 250}, nil)
				userRepo.EXPECT().Hold(gomock.Any(), int64(1), int64(200)).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Insufficient funds",
			userID: 1,
			amount: 300,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Currency: 250}, nil)
				userRepo.EXPECT().Hold(gomock.Any(), int64(1), int64(300)).Return(false, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:   "Unregistered user",
			userID: 99,
			amount: 10,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
			},
			expectedError: domain.ErrUserNotRegistered,
		},
		{
			name:   "Storage failure propagates",
			userID: 1,
			amount: 10,
			prepareMock: func() {
				userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Hold(context.Background(), tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRelease(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int64
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful release",
			userID: 1,
			amount: 50,
			prepareMock: func() {
				userRepo.EXPECT().Release(gomock.Any(), int64(1), int64(50)).Return(int64(50), true, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Over-release clamps and succeeds",
			userID: 1,
			amount: 80,
			prepareMock: func() {
				userRepo.EXPECT().Release(gomock.Any(), int64(1), int64(80)).Return(int64(50), true, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Unregistered user",
			userID: 7,
			amount: 10,
			prepareMock: func() {
				userRepo.EXPECT().Release(gomock.Any(), int64(7), int64(10)).Return(int64(0), false, nil)
			},
			expectedError: domain.ErrUserNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Release(context.Background(), tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	service, userRepo := NewMock(t)

	userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Currency: 2610, HeldCurrency: 200}, nil)
	available, err := service.Available(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2410), available)

	userRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
	_, err = service.Available(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrUserNotRegistered)
}

func TestSetBalanceAndAdjust(t *testing.T) {
	service, userRepo := NewMock(t)

	userRepo.EXPECT().SetCurrency(gomock.Any(), int64(1), int64(5000)).Return(true, nil)
	assert.NoError(t, service.SetBalance(context.Background(), 1, 5000))

	userRepo.EXPECT().SetCurrency(gomock.Any(), int64(9), int64(5000)).Return(false, nil)
	assert.ErrorIs(t, service.SetBalance(context.Background(), 9, 5000), domain.ErrUserNotRegistered)

	userRepo.EXPECT().AdjustCurrency(gomock.Any(), int64(1), int64(-250)).Return(true, nil)
	assert.NoError(t, service.Adjust(context.Background(), 1, -250))

	userRepo.EXPECT().AdjustCurrency(gomock.Any(), int64(9), int64(100)).Return(false, nil)
	assert.ErrorIs(t, service.Adjust(context.Background(), 9, 100), domain.ErrUserNotRegistered)
}
