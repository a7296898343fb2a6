package winnerrepo

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

func TestRepository_Clear(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM winner_records`)).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	assert.NoError(t, repo.Clear(context.Background()))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM winner_records`)).
		WillReturnError(errors.New("database error"))

	assert.Error(t, repo.Clear(context.Background()))
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	ticketID := int64(2)
	record := &domain.WinnerRecord{WinnerID: 7, LotID: 42, TicketID: &ticketID}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO winner_records (winner_id, lot_id, ticket_id)`)).
		WithArgs(record.WinnerID, record.LotID, record.TicketID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	created, err := repo.Create(context.Background(), record)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	// Auction winners carry no ticket reference.
	auction := &domain.WinnerRecord{WinnerID: 5, LotID: 43}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO winner_records (winner_id, lot_id, ticket_id)`)).
		WithArgs(auction.WinnerID, auction.LotID, auction.TicketID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	created, err = repo.Create(context.Background(), auction)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), created.ID)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO winner_records`)).
		WithArgs(record.WinnerID, record.LotID, record.TicketID).
		WillReturnError(errors.New("database error"))

	_, err = repo.Create(context.Background(), record)
	assert.Error(t, err)
}

func TestRepository_DeleteByLot(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM winner_records WHERE lot_id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	deleted, err := repo.DeleteByLot(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM winner_records WHERE lot_id = $1`)).
		WithArgs(int64(42)).
		WillReturnError(errors.New("database error"))

	_, err = repo.DeleteByLot(context.Background(), 42)
	assert.Error(t, err)
}
