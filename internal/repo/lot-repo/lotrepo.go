package lotrepo

import (
	"context"
	"fmt"
	"strings"

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

// Update carries a partial edit; nil fields are left untouched.
type Update struct {
	Title           *string
	HTMLTitle       *string
	Description     *string
	HTMLDescription *string
	Quantity        *int
	Price           *int64
	OwnerID         *int64
}

const lotColumns = "id, owner_id, title, html_title, description, html_description, quantity, price, lot_type"

func scanLot(row pgx.Row) (*domain.Lot, error) {
	var lot domain.Lot
	err := row.Scan(&lot.ID, &lot.OwnerID, &lot.Title, &lot.HTMLTitle,
		&lot.Description, &lot.HTMLDescription, &lot.Quantity, &lot.Price, &lot.Type)
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

func (repo *Repository) Create(ctx context.Context, lot *domain.Lot) (*domain.Lot, error) {
	query := `
		INSERT INTO lots (owner_id, title, html_title, description, html_description, quantity, price, lot_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, lot.OwnerID, lot.Title, lot.HTMLTitle,
		lot.Description, lot.HTMLDescription, lot.Quantity, lot.Price, lot.Type).Scan(&lot.ID)
	if err != nil {
		zap.L().Error("can't save lot", zap.Error(err))
		return nil, err
	}
	return lot, nil
}

func (repo *Repository) GetByID(ctx context.Context, lotID int64) (*domain.Lot, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+lotColumns+" FROM lots WHERE id = $1", lotID)
	lot, err := scanLot(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find lot", zap.Error(err))
		return nil, err
	}
	return lot, nil
}

// GetByIDForUpdate locks the lot row for the rest of the transaction. Bid
// acceptance uses it to serialize top-bid reads per lot.
func (repo *Repository) GetByIDForUpdate(ctx context.Context, lotID int64) (*domain.Lot, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+lotColumns+" FROM lots WHERE id = $1 FOR UPDATE", lotID)
	lot, err := scanLot(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock lot", zap.Error(err))
		return nil, err
	}
	return lot, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.Lot, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+lotColumns+" FROM lots ORDER BY id")
	if err != nil {
		zap.L().Error("can't list lots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lots []domain.Lot
	for rows.Next() {
		var lot domain.Lot
		err := rows.Scan(&lot.ID, &lot.OwnerID, &lot.Title, &lot.HTMLTitle,
			&lot.Description, &lot.HTMLDescription, &lot.Quantity, &lot.Price, &lot.Type)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

func (repo *Repository) ApplyUpdate(ctx context.Context, lotID int64, upd Update) (bool, error) {
	set := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)
	args = append(args, lotID)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.HTMLTitle != nil {
		add("html_title", *upd.HTMLTitle)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.HTMLDescription != nil {
		add("html_description", *upd.HTMLDescription)
	}
	if upd.Quantity != nil {
		add("quantity", *upd.Quantity)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.OwnerID != nil {
		add("owner_id", *upd.OwnerID)
	}
	if len(set) == 0 {
		return true, nil
	}

	query := fmt.Sprintf("UPDATE lots SET %s WHERE id = $1", strings.Join(set, ", "))
	tag, err := repo.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't update lot", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) Delete(ctx context.Context, lotID int64) (bool, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM lots WHERE id = $1", lotID)
	if err != nil {
		zap.L().Error("can't delete lot", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var count int
	err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM lots WHERE owner_id = $1", ownerID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count owned lots", zap.Error(err))
		return 0, err
	}
	return count, nil
}
