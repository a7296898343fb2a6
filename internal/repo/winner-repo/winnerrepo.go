package winnerrepo

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

// Clear wipes the table; the draw recomputes it from scratch on every run.
func (repo *Repository) Clear(ctx context.Context) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM winner_records")
	if err != nil {
		zap.L().Error("can't clear winner records", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Create(ctx context.Context, record *domain.WinnerRecord) (*domain.WinnerRecord, error) {
	query := `
		INSERT INTO winner_records (winner_id, lot_id, ticket_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, record.WinnerID, record.LotID, record.TicketID).Scan(&record.ID)
	if err != nil {
		zap.L().Error("can't save winner record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (repo *Repository) DeleteByLot(ctx context.Context, lotID int64) (int64, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM winner_records WHERE lot_id = $1", lotID)
	if err != nil {
		zap.L().Error("can't delete winner records for lot", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
