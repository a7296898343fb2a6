// Package drawservice runs the event close-out: a full recompute of winner
// records across every lot, plus a read-only event summary.
package drawservice

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/pg"
)

type LotRepo interface {
	List(ctx context.Context) ([]domain.Lot, error)
}

type TicketRepo interface {
	ListByLot(ctx context.Context, lotID int64) ([]domain.TicketPurchase, error)
}

type BidRepo interface {
	TopBid(ctx context.Context, lotID int64) (*domain.Bid, error)
}

type WinnerRepo interface {
	Clear(ctx context.Context) error
	Create(ctx context.Context, record *domain.WinnerRecord) (*domain.WinnerRecord, error)
}

type Service struct {
	lotRepo    LotRepo
	ticketRepo TicketRepo
	bidRepo    BidRepo
	winnerRepo WinnerRepo
	txManager  pg.TXManager
	rng        *rand.Rand
}

// New builds the draw service. The random source is injected so close-out runs
// can be replayed under a fixed seed.
func New(lotRepo LotRepo, ticketRepo TicketRepo, bidRepo BidRepo, winnerRepo WinnerRepo, txManager pg.TXManager, rng *rand.Rand) *Service {
	return &Service{
		lotRepo:    lotRepo,
		ticketRepo: ticketRepo,
		bidRepo:    bidRepo,
		winnerRepo: winnerRepo,
		txManager:  txManager,
		rng:        rng,
	}
}

// LotResult reports one lot's outcome. Winners is empty for lots nobody
// entered; such lots are still listed.
type LotResult struct {
	LotID   int64
	OwnerID int64
	Title   string
	Type    domain.LotType
	Winners []int64
}

// Report is the outcome of one draw run. RunID tags the run in logs and
// notifications.
type Report struct {
	RunID string
	Lots  []LotResult
}

// DrawWinners recomputes the winner table from scratch: clears it, then walks
// every lot drawing raffle winners without replacement and reading the top bid
// for auctions. The whole run is one transaction; concurrent purchase activity
// must be quiesced before calling.
func (s *Service) DrawWinners(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.winnerRepo.Clear(ctx); err != nil {
			return err
		}

		lots, err := s.lotRepo.List(ctx)
		if err != nil {
			return err
		}

		for _, lot := range lots {
			result := LotResult{
				LotID:   lot.ID,
				OwnerID: lot.OwnerID,
				Title:   lot.Title,
				Type:    lot.Type,
			}

			switch lot.Type {
			case domain.Raffle:
				winners, err := s.drawRaffle(ctx, &lot)
				if err != nil {
					return err
				}
				result.Winners = winners
			case domain.Auction:
				topBid, err := s.bidRepo.TopBid(ctx, lot.ID)
				if err != nil {
					return err
				}
				if topBid != nil {
					record := &domain.WinnerRecord{WinnerID: topBid.BidderID, LotID: lot.ID}
					if _, err := s.winnerRepo.Create(ctx, record); err != nil {
						return err
					}
					result.Winners = []int64{topBid.BidderID}
				}
			}

			report.Lots = append(report.Lots, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("draw completed",
		zap.String("runID", report.RunID),
		zap.Int("lots", len(report.Lots)))
	return report, nil
}

// drawRaffle samples up to quantity winning tickets without replacement.
// After each draw every remaining ticket of the winning buyer leaves the pool,
// so a buyer wins a lot at most once. Each winner record is persisted as soon
// as it is drawn.
func (s *Service) drawRaffle(ctx context.Context, lot *domain.Lot) ([]int64, error) {
	pool, err := s.ticketRepo.ListByLot(ctx, lot.ID)
	if err != nil {
		return nil, err
	}

	var winners []int64
	for i := 0; i < lot.Quantity && len(pool) > 0; i++ {
		s.rng.Shuffle(len(pool), func(a, b int) {
			pool[a], pool[b] = pool[b], pool[a]
		})
		ticket := pool[s.rng.Intn(len(pool))]

		record := &domain.WinnerRecord{
			WinnerID: ticket.BuyerID,
			LotID:    lot.ID,
			TicketID: &ticket.ID,
		}
		if _, err := s.winnerRepo.Create(ctx, record); err != nil {
			return nil, err
		}
		winners = append(winners, ticket.BuyerID)

		remaining := pool[:0]
		for _, t := range pool {
			if t.BuyerID != ticket.BuyerID {
				remaining = append(remaining, t)
			}
		}
		pool = remaining
	}
	return winners, nil
}

// LotSummary is a point-in-time view of one lot's activity.
type LotSummary struct {
	LotID       int64
	Title       string
	Type        domain.LotType
	TicketsSold int
	TopBidder   *int64
	TopAmount   *int64
}

// EventSummary reads per-lot activity concurrently. It does not mutate state
// and may run while the event is open.
func (s *Service) EventSummary(ctx context.Context) ([]LotSummary, error) {
	lots, err := s.lotRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]LotSummary, len(lots))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, lot := range lots {
		i, lot := i, lot
		g.Go(func() error {
			summary := LotSummary{LotID: lot.ID, Title: lot.Title, Type: lot.Type}
			switch lot.Type {
			case domain.Raffle:
				tickets, err := s.ticketRepo.ListByLot(ctx, lot.ID)
				if err != nil {
					return err
				}
				summary.TicketsSold = len(tickets)
			case domain.Auction:
				topBid, err := s.bidRepo.TopBid(ctx, lot.ID)
				if err != nil {
					return err
				}
				if topBid != nil {
					summary.TopBidder = &topBid.BidderID
					summary.TopAmount = &topBid.Amount
				}
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
