package ticketrepo

import (
	"context"

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

// CreateBatch inserts one row per ticket and returns the assigned ticket
// numbers in insertion order.
func (repo *Repository) CreateBatch(ctx context.Context, buyerID, lotID int64, quantity int) ([]int64, error) {
	query := `
		INSERT INTO ticket_purchases (buyer_id, lot_id)
		SELECT $1, $2 FROM generate_series(1, $3)
		RETURNING id
	`
	rows, err := repo.db.Query(ctx, query, buyerID, lotID, quantity)
	if err != nil {
		zap.L().Error("can't save ticket purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ticketIDs := make([]int64, 0, quantity)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ticketIDs = append(ticketIDs, id)
	}
	return ticketIDs, rows.Err()
}

func (repo *Repository) ListByLot(ctx context.Context, lotID int64) ([]domain.TicketPurchase, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, buyer_id, lot_id FROM ticket_purchases WHERE lot_id = $1 ORDER BY id", lotID)
	if err != nil {
		zap.L().Error("can't list tickets for lot", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.TicketPurchase
	for rows.Next() {
		var ticket domain.TicketPurchase
		if err := rows.Scan(&ticket.ID, &ticket.BuyerID, &ticket.LotID); err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	return tickets, rows.Err()
}

func (repo *Repository) DeleteByLot(ctx context.Context, lotID int64) (int64, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM ticket_purchases WHERE lot_id = $1", lotID)
	if err != nil {
		zap.L().Error("can't delete tickets for lot", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
