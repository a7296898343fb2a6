// Package ledgerservice owns the currency fields on users: escrow holds,
// refunds, and administrative balance corrections.
package ledgerservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/salembot/neoraffle/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	Hold(ctx context.Context, userID int64, amount int64) (bool, error)
	Release(ctx context.Context, userID int64, amount int64) (int64, bool, error)
	SetCurrency(ctx context.Context, userID int64, value int64) (bool, error)
	AdjustCurrency(ctx context.Context, userID int64, delta int64) (bool, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// Hold escrows amount against the user's registration snapshot. The
// availability check and the increment commit as one statement, so a hold
// either reserves the full amount or changes nothing.
func (s *Service) Hold(ctx context.Context, userID int64, amount int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotRegistered
	}

	held, err := s.userRepo.Hold(ctx, userID, amount)
	if err != nil {
		return err
	}
	if !held {
		zap.L().Debug("hold rejected",
			zap.Int64("userID", userID),
			zap.Int64("amount", amount),
			zap.Int64("available", user.Available()))
		return domain.ErrInsufficientFunds
	}
	return nil
}

// Release refunds previously held currency. A release below zero indicates a
// caller bug; the value is clamped and the incident logged.
func (s *Service) Release(ctx context.Context, userID int64, amount int64) error {
	prevHeld, found, err := s.userRepo.Release(ctx, userID, amount)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotRegistered
	}
	if prevHeld < amount {
		zap.L().Error("release exceeded held currency, clamped to zero",
			zap.Int64("userID", userID),
			zap.Int64("held", prevHeld),
			zap.Int64("amount", amount))
	}
	return nil
}

func (s *Service) Available(ctx context.Context, userID int64) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, domain.ErrUserNotRegistered
	}
	return user.Available(), nil
}

// SetBalance overwrites the user's total currency. Held currency is not
// touched; this is an administrative correction, not a refund.
func (s *Service) SetBalance(ctx context.Context, userID int64, value int64) error {
	found, err := s.userRepo.SetCurrency(ctx, userID, value)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotRegistered
	}
	return nil
}

// Adjust adds delta to the user's total currency (contest bonuses and the
// like; delta may be negative).
func (s *Service) Adjust(ctx context.Context, userID int64, delta int64) error {
	found, err := s.userRepo.AdjustCurrency(ctx, userID, delta)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrUserNotRegistered
	}
	return nil
}
