// Package purchaseservice validates and commits ticket buys and bids. The
// dispatcher runs the shared precondition checks; the ticket and bid engines
// move funds through the ledger.
package purchaseservice

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/pg"
	"github.com/salembot/neoraffle/pkg/numparse"
)

type Ledger interface {
	Hold(ctx context.Context, userID int64, amount int64) error
	Release(ctx context.Context, userID int64, amount int64) error
}

type UserRepo interface {
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
}

type LotRepo interface {
	GetByID(ctx context.Context, lotID int64) (*domain.Lot, error)
	GetByIDForUpdate(ctx context.Context, lotID int64) (*domain.Lot, error)
}

type BidRepo interface {
	TopBid(ctx context.Context, lotID int64) (*domain.Bid, error)
	Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
}

type TicketRepo interface {
	CreateBatch(ctx context.Context, buyerID, lotID int64, quantity int) ([]int64, error)
}

type Service struct {
	ledger     Ledger
	userRepo   UserRepo
	lotRepo    LotRepo
	bidRepo    BidRepo
	ticketRepo TicketRepo
	txManager  pg.TXManager
}

func New(ledger Ledger, userRepo UserRepo, lotRepo LotRepo, bidRepo BidRepo, ticketRepo TicketRepo, txManager pg.TXManager) *Service {
	return &Service{
		ledger:     ledger,
		userRepo:   userRepo,
		lotRepo:    lotRepo,
		bidRepo:    bidRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
	}
}

// Params carries the engine-specific purchase input: Quantity for raffle
// ticket buys, Bid for auction bids. Values arrive as numbers or
// comma-grouped strings.
type Params struct {
	Quantity any
	Bid      any
}

type TicketResult struct {
	LotID       int64
	Title       string
	TicketPrice int64
	TotalCost   int64
	TicketIDs   []int64
}

type Bidder struct {
	UserID int64
	Amount int64
}

type BidResult struct {
	LotID         int64
	Title         string
	PrevTopBidder *Bidder
	NewTopBidder  Bidder
}

// Result holds the outcome of whichever engine ran; exactly one field is set.
type Result struct {
	Tickets *TicketResult
	Bid     *BidResult
}

// Purchase routes a purchase request to the matching engine. The precondition
// checks run in a fixed order and the first failure wins.
func (s *Service) Purchase(ctx context.Context, kind string, userID, lotID int64, params Params) (*Result, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		zap.L().Debug("purchase from unregistered user", zap.Int64("userID", userID), zap.Int64("lotID", lotID))
		return nil, domain.ErrUserNotRegistered
	}

	lot, err := s.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		zap.L().Debug("purchase on unknown lot", zap.Int64("userID", userID), zap.Int64("lotID", lotID))
		return nil, domain.ErrLotNotFound
	}

	if !user.Active {
		return nil, domain.ErrAccountInactive
	}
	if user.ID == lot.OwnerID {
		return nil, domain.ErrSelfPurchase
	}

	kindType, ok := domain.ParseLotType(kind)
	if !ok || kindType != lot.Type {
		return nil, domain.ErrInvalidLotType
	}

	var result Result
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		switch kindType {
		case domain.Raffle:
			tickets, err := s.buyTickets(ctx, user, lot, params.Quantity)
			if err != nil {
				return err
			}
			result.Tickets = tickets
		case domain.Auction:
			bid, err := s.placeBid(ctx, user, lot, params.Bid)
			if err != nil {
				return err
			}
			result.Bid = bid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// buyTickets escrows the purchase cost and writes one ticket row per ticket.
func (s *Service) buyTickets(ctx context.Context, user *domain.User, lot *domain.Lot, rawQuantity any) (*TicketResult, error) {
	quantity, err := numparse.PositiveInt(rawQuantity)
	if err != nil {
		return nil, domain.ErrInvalidQuantity
	}
	// price×quantity must not wrap: an overflowed cost would pass the funds
	// check and escrow a bogus amount.
	if quantity > math.MaxInt64 / *lot.Price {
		return nil, domain.ErrInvalidQuantity
	}

	totalCost := *lot.Price * quantity
	if err := s.ledger.Hold(ctx, user.ID, totalCost); err != nil {
		return nil, err
	}

	ticketIDs, err := s.ticketRepo.CreateBatch(ctx, user.ID, lot.ID, int(quantity))
	if err != nil {
		return nil, err
	}

	zap.L().Info("tickets purchased",
		zap.Int64("userID", user.ID),
		zap.Int64("lotID", lot.ID),
		zap.Int64("quantity", quantity),
		zap.Int64("totalCost", totalCost))
	return &TicketResult{
		LotID:       lot.ID,
		Title:       lot.Title,
		TicketPrice: *lot.Price,
		TotalCost:   totalCost,
		TicketIDs:   ticketIDs,
	}, nil
}

// placeBid accepts a bid that strictly exceeds the current top bid. Fund
// movement follows a fixed sequence: refund the previous top bidder, hold the
// new amount, and on a failed hold re-hold the refund before reporting the
// failure, so a rejected bid never leaves the previous bidder released.
func (s *Service) placeBid(ctx context.Context, user *domain.User, lot *domain.Lot, rawBid any) (*BidResult, error) {
	amount, err := numparse.PositiveInt(rawBid)
	if err != nil {
		return nil, domain.ErrInvalidBid
	}

	// Re-read under the row lock so two concurrent bids can't both see the
	// same top bid.
	if _, err := s.lotRepo.GetByIDForUpdate(ctx, lot.ID); err != nil {
		return nil, err
	}

	topBid, err := s.bidRepo.TopBid(ctx, lot.ID)
	if err != nil {
		return nil, err
	}
	if topBid != nil && amount <= topBid.Amount {
		return nil, domain.ErrBidTooLow
	}

	if topBid != nil {
		if err := s.ledger.Release(ctx, topBid.BidderID, topBid.Amount); err != nil {
			zap.L().Error("can't refund previous top bidder",
				zap.Int64("lotID", lot.ID),
				zap.Int64("bidderID", topBid.BidderID),
				zap.Error(err))
			return nil, err
		}
	}

	if err := s.ledger.Hold(ctx, user.ID, amount); err != nil {
		if topBid != nil {
			if holdErr := s.ledger.Hold(ctx, topBid.BidderID, topBid.Amount); holdErr != nil {
				zap.L().Error("can't restore previous top bidder's hold after failed bid",
					zap.Int64("lotID", lot.ID),
					zap.Int64("bidderID", topBid.BidderID),
					zap.Error(holdErr))
			}
		}
		return nil, err
	}

	bid := &domain.Bid{
		BidderID: user.ID,
		LotID:    lot.ID,
		Amount:   amount,
	}
	if _, err := s.bidRepo.Create(ctx, bid); err != nil {
		return nil, err
	}

	result := &BidResult{
		LotID:        lot.ID,
		Title:        lot.Title,
		NewTopBidder: Bidder{UserID: user.ID, Amount: amount},
	}
	if topBid != nil {
		result.PrevTopBidder = &Bidder{UserID: topBid.BidderID, Amount: topBid.Amount}
	}

	zap.L().Info("bid accepted",
		zap.Int64("userID", user.ID),
		zap.Int64("lotID", lot.ID),
		zap.Int64("amount", amount))
	return result, nil
}
