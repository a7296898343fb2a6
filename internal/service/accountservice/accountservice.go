// Package accountservice registers users with the raffle event and snapshots
// their spendable currency from capped point sources.
package accountservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/salembot/neoraffle/internal/domain"
)

// Default caps on how much of each point source counts toward the snapshot.
const (
	DefaultNeoPtsCap  = 2000
	DefaultGGPtsCap   = 2000
	DefaultPostsCap   = 20000
	DefaultWikiPtsCap = 2000
)

type UserRepo interface {
	Exists(ctx context.Context, userID int64) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ListUsernames(ctx context.Context) ([]string, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// RegisterParams carries the point totals reported by the forum at
// registration time. Zero-valued caps fall back to the defaults.
type RegisterParams struct {
	UserID    int64
	Username  string
	NeoPts    int64
	GGPts     int64
	PostCount int64
	WikiEdits int64

	NeoPtsCap  int64
	GGPtsCap   int64
	PostsCap   int64
	WikiPtsCap int64

	Inactive bool
}

// Register snapshots the user's currency and creates their account. The
// snapshot is fixed for the rest of the event; later earnings don't count.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*domain.CurrencyBreakdown, error) {
	exists, err := s.userRepo.Exists(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		zap.L().Debug("registration rejected, user already has a record", zap.Int64("userID", p.UserID))
		return nil, domain.ErrAlreadyRegistered
	}

	breakdown := &domain.CurrencyBreakdown{
		NeoPts:  capPoints(p.NeoPts, orDefault(p.NeoPtsCap, DefaultNeoPtsCap)),
		GGPts:   capPoints(p.GGPts, orDefault(p.GGPtsCap, DefaultGGPtsCap)),
		PostPts: capPoints(p.PostCount, orDefault(p.PostsCap, DefaultPostsCap)),
		WikiPts: capPoints(p.WikiEdits, orDefault(p.WikiPtsCap, DefaultWikiPtsCap)),
	}
	breakdown.TotalPts = breakdown.NeoPts + breakdown.GGPts + breakdown.PostPts + breakdown.WikiPts

	user := &domain.User{
		ID:       p.UserID,
		Username: p.Username,
		Currency: breakdown.TotalPts,
		Active:   !p.Inactive,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("user registered",
		zap.Int64("userID", p.UserID),
		zap.String("username", p.Username),
		zap.Int64("currency", breakdown.TotalPts))
	return breakdown, nil
}

func (s *Service) IsRegistered(ctx context.Context, userID int64) (bool, error) {
	return s.userRepo.Exists(ctx, userID)
}

func (s *Service) ListUsernames(ctx context.Context) ([]string, error) {
	return s.userRepo.ListUsernames(ctx)
}

// capPoints clamps a point source into [0, cap].
func capPoints(points, cap int64) int64 {
	if points < 0 {
		return 0
	}
	if points > cap {
		return cap
	}
	return points
}

func orDefault(v, def int64) int64 {
	if v <= 0 {
		return def
	}
	return v
}
