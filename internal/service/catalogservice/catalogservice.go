// Package catalogservice owns lot records: creation with batched validation,
// partial edits, and deletion with an explicit cascade over dependent rows.
package catalogservice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/pg"
	lotrepo "github.com/salembot/neoraffle/internal/repo/lot-repo"
	"github.com/salembot/neoraffle/pkg/numparse"
)

const (
	minPrice    = 1
	maxPrice    = 10000
	minQuantity = 1
	maxQuantity = 10
)

// Postgres foreign-key violation.
const fkViolationCode = "23503"

type LotRepo interface {
	Create(ctx context.Context, lot *domain.Lot) (*domain.Lot, error)
	GetByID(ctx context.Context, lotID int64) (*domain.Lot, error)
	List(ctx context.Context) ([]domain.Lot, error)
	ApplyUpdate(ctx context.Context, lotID int64, upd lotrepo.Update) (bool, error)
	Delete(ctx context.Context, lotID int64) (bool, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}

type UserRepo interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

type BidRepo interface {
	DeleteByLot(ctx context.Context, lotID int64) (int64, error)
}

type TicketRepo interface {
	DeleteByLot(ctx context.Context, lotID int64) (int64, error)
}

type WinnerRepo interface {
	DeleteByLot(ctx context.Context, lotID int64) (int64, error)
}

type Service struct {
	lotRepo    LotRepo
	userRepo   UserRepo
	bidRepo    BidRepo
	ticketRepo TicketRepo
	winnerRepo WinnerRepo
	txManager  pg.TXManager
}

func New(lotRepo LotRepo, userRepo UserRepo, bidRepo BidRepo, ticketRepo TicketRepo, winnerRepo WinnerRepo, txManager pg.TXManager) *Service {
	return &Service{
		lotRepo:    lotRepo,
		userRepo:   userRepo,
		bidRepo:    bidRepo,
		ticketRepo: ticketRepo,
		winnerRepo: winnerRepo,
		txManager:  txManager,
	}
}

// AddLotParams carries a lot submission. Price and Quantity come through as
// whatever the bot layer parsed out of the post: numbers, or strings with
// comma separators.
type AddLotParams struct {
	OwnerID         int64
	Title           string
	Description     string
	Price           any
	Quantity        any
	Type            domain.LotType
	HTMLTitle       *string
	HTMLDescription *string
}

// AddLot validates and stores a lot submission. Validation failures are
// collected, not short-circuited, so one reply can list every problem.
func (s *Service) AddLot(ctx context.Context, p AddLotParams) (int64, error) {
	registered, err := s.userRepo.Exists(ctx, p.OwnerID)
	if err != nil {
		return 0, err
	}
	if !registered {
		return 0, domain.ErrUserNotRegistered
	}

	var problems domain.ValidationErrors
	if p.Title == "" {
		problems = append(problems, domain.FieldProblem{Field: "title", Reason: "must not be empty"})
	}
	if p.Description == "" {
		problems = append(problems, domain.FieldProblem{Field: "description", Reason: "must not be empty"})
	}

	var price *int64
	switch p.Type {
	case domain.Raffle:
		n, err := numparse.Int(p.Price)
		if err != nil {
			problems = append(problems, domain.FieldProblem{Field: "price", Reason: "is not a valid number"})
		} else if n < minPrice || n > maxPrice {
			problems = append(problems, domain.FieldProblem{Field: "price", Reason: "must be between 1 and 10,000"})
		} else {
			price = &n
		}
	case domain.Auction:
		// Auction lots have no fixed price; whatever was submitted is dropped.
		price = nil
	default:
		problems = append(problems, domain.FieldProblem{Field: "type", Reason: "must be raffle or auction"})
	}

	quantity, err := numparse.Int(p.Quantity)
	if err != nil {
		problems = append(problems, domain.FieldProblem{Field: "quantity", Reason: "is not a valid number"})
	} else if quantity < minQuantity || quantity > maxQuantity {
		problems = append(problems, domain.FieldProblem{Field: "quantity", Reason: "must be between 1 and 10"})
	}

	if len(problems) > 0 {
		zap.L().Debug("lot submission rejected",
			zap.Int64("ownerID", p.OwnerID),
			zap.Int("problems", len(problems)))
		return 0, problems
	}

	lot := &domain.Lot{
		OwnerID:         p.OwnerID,
		Title:           p.Title,
		HTMLTitle:       p.HTMLTitle,
		Description:     p.Description,
		HTMLDescription: p.HTMLDescription,
		Quantity:        int(quantity),
		Price:           price,
		Type:            p.Type,
	}
	if _, err := s.lotRepo.Create(ctx, lot); err != nil {
		return 0, err
	}
	return lot.ID, nil
}

// EditLot applies a partial update. Reassigning ownership to an unregistered
// user is an integrity violation.
func (s *Service) EditLot(ctx context.Context, lotID int64, upd lotrepo.Update) error {
	lot, err := s.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrLotNotFound
	}

	if upd.OwnerID != nil {
		registered, err := s.userRepo.Exists(ctx, *upd.OwnerID)
		if err != nil {
			return err
		}
		if !registered {
			return domain.ErrInvalidOwner
		}
	}

	if _, err := s.lotRepo.ApplyUpdate(ctx, lotID, upd); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return domain.ErrInvalidOwner
		}
		return err
	}
	return nil
}

// DeleteResult reports who owned the deleted lot and how many lots they have
// left, so the caller can reconcile any submission bonus.
type DeleteResult struct {
	OwnerID   int64
	OwnedLots int
}

// DeleteLot removes a lot and its dependent bids, ticket purchases, and
// winner records in one transaction. The cascade is performed explicitly so
// the invariant does not depend on the storage engine's foreign keys. When
// requesterID is set, only the lot's owner may delete it.
func (s *Service) DeleteLot(ctx context.Context, lotID int64, requesterID *int64) (*DeleteResult, error) {
	var result DeleteResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lot, err := s.lotRepo.GetByID(ctx, lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrLotNotFound
		}

		if requesterID != nil {
			registered, err := s.userRepo.Exists(ctx, *requesterID)
			if err != nil {
				return err
			}
			if !registered {
				return domain.ErrUserNotRegistered
			}
			if *requesterID != lot.OwnerID {
				return domain.ErrNotOwner
			}
		}

		winners, err := s.winnerRepo.DeleteByLot(ctx, lotID)
		if err != nil {
			return err
		}
		bids, err := s.bidRepo.DeleteByLot(ctx, lotID)
		if err != nil {
			return err
		}
		tickets, err := s.ticketRepo.DeleteByLot(ctx, lotID)
		if err != nil {
			return err
		}
		if _, err := s.lotRepo.Delete(ctx, lotID); err != nil {
			return err
		}

		owned, err := s.lotRepo.CountByOwner(ctx, lot.OwnerID)
		if err != nil {
			return err
		}
		result = DeleteResult{OwnerID: lot.OwnerID, OwnedLots: owned}

		zap.L().Info("lot deleted",
			zap.Int64("lotID", lotID),
			zap.Int64("ownerID", lot.OwnerID),
			zap.Int64("bids", bids),
			zap.Int64("tickets", tickets),
			zap.Int64("winnerRecords", winners))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) GetLot(ctx context.Context, lotID int64) (*domain.Lot, error) {
	lot, err := s.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrLotNotFound
	}
	return lot, nil
}

func (s *Service) ListLots(ctx context.Context) ([]domain.Lot, error) {
	return s.lotRepo.List(ctx)
}

func (s *Service) CountOwnedLots(ctx context.Context, userID int64) (int, error) {
	registered, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !registered {
		return 0, domain.ErrUserNotRegistered
	}
	return s.lotRepo.CountByOwner(ctx, userID)
}
