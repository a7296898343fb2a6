package bidrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	query := `
		INSERT INTO bids (bidder_id, lot_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, placed_at
	`
	err := repo.db.QueryRow(ctx, query, bid.BidderID, bid.LotID, bid.Amount).Scan(&bid.ID, &bid.PlacedAt)
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

// TopBid returns the highest bid on a lot, or nil when there are none. The
// strict-increase rule keeps amounts unique per lot, so the ordering is total.
func (repo *Repository) TopBid(ctx context.Context, lotID int64) (*domain.Bid, error) {
	query := `
		SELECT id, bidder_id, lot_id, amount, placed_at
		FROM bids
		WHERE lot_id = $1
		ORDER BY amount DESC
		LIMIT 1
	`
	var bid domain.Bid
	err := repo.db.QueryRow(ctx, query, lotID).
		Scan(&bid.ID, &bid.BidderID, &bid.LotID, &bid.Amount, &bid.PlacedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find top bid", zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

func (repo *Repository) DeleteByLot(ctx context.Context, lotID int64) (int64, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM bids WHERE lot_id = $1", lotID)
	if err != nil {
		zap.L().Error("can't delete bids for lot", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
