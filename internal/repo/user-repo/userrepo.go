package userrepo

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

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (uid, username, currency, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING reg_date
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Username, user.Currency, user.Active).Scan(&user.RegisteredAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT uid, username, reg_date, currency, held_currency, is_active
		FROM users
		WHERE uid = $1
	`
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Username, &user.RegisteredAt, &user.Currency, &user.HeldCurrency, &user.Active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Exists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := repo.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE uid = $1)", userID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check user registration", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (repo *Repository) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := repo.db.Query(ctx, "SELECT username FROM users ORDER BY uid")
	if err != nil {
		zap.L().Error("can't list usernames", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		usernames = append(usernames, username)
	}
	return usernames, rows.Err()
}

// Hold escrows amount against the user's currency. The precondition is part
// of the UPDATE, so a stale availability read can never over-hold. Returns
// false when the remaining currency does not cover the amount.
func (repo *Repository) Hold(ctx context.Context, userID int64, amount int64) (bool, error) {
	query := `
		UPDATE users
		SET held_currency = held_currency + $2
		WHERE uid = $1 AND held_currency + $2 <= currency
	`
	tag, err := repo.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("can't hold currency", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Release returns previously held currency, clamping at zero. The held value
// before the update is returned so the caller can detect an over-release.
func (repo *Repository) Release(ctx context.Context, userID int64, amount int64) (int64, bool, error) {
	query := `
		UPDATE users u
		SET held_currency = GREATEST(u.held_currency - $2, 0)
		FROM (SELECT uid, held_currency FROM users WHERE uid = $1 FOR UPDATE) old
		WHERE u.uid = old.uid
		RETURNING old.held_currency
	`
	var prevHeld int64
	err := repo.db.QueryRow(ctx, query, userID, amount).Scan(&prevHeld)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		zap.L().Error("can't release currency", zap.Error(err))
		return 0, false, err
	}
	return prevHeld, true, nil
}

func (repo *Repository) SetCurrency(ctx context.Context, userID int64, value int64) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET currency = $2 WHERE uid = $1", userID, value)
	if err != nil {
		zap.L().Error("can't set currency", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) AdjustCurrency(ctx context.Context, userID int64, delta int64) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET currency = currency + $2 WHERE uid = $1", userID, delta)
	if err != nil {
		zap.L().Error("can't adjust currency", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
