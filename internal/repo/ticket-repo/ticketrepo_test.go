package ticketrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/salembot/neoraffle/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateBatch(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO ticket_purchases (buyer_id, lot_id)`)

	mock.ExpectQuery(query).
		WithArgs(int64(7), int64(42), 3).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)).AddRow(int64(2)).AddRow(int64(3)))

	ticketIDs, err := repo.CreateBatch(context.Background(), 7, 42, 3)
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ticketIDs)

	mock.ExpectQuery(query).
		WithArgs(int64(7), int64(42), 3).
		WillReturnError(errors.New("database error"))

	_, err = repo.CreateBatch(context.Background(), 7, 42, 3)
	assert.Error(t, err)
}

func TestRepository_ListByLot(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, buyer_id, lot_id FROM ticket_purchases WHERE lot_id = $1 ORDER BY id`)

	mock.ExpectQuery(query).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "buyer_id", "lot_id"}).
			AddRow(int64(1), int64(7), int64(42)).
			AddRow(int64(2), int64(9), int64(42)))

	tickets, err := repo.ListByLot(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, []domain.TicketPurchase{
		{ID: 1, BuyerID: 7, LotID: 42},
		{ID: 2, BuyerID: 9, LotID: 42},
	}, tickets)

	mock.ExpectQuery(query).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "buyer_id", "lot_id"}))

	tickets, err = repo.ListByLot(context.Background(), 99)
	assert.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestRepository_DeleteByLot(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`DELETE FROM ticket_purchases WHERE lot_id = $1`)

	mock.ExpectExec(query).WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 6))

	deleted, err := repo.DeleteByLot(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), deleted)

	mock.ExpectExec(query).WithArgs(int64(42)).
		WillReturnError(errors.New("database error"))

	_, err = repo.DeleteByLot(context.Background(), 42)
	assert.Error(t, err)
}
