package service

import (
	"math/rand"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/salembot/neoraffle/internal/pg"
	"github.com/salembot/neoraffle/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer pool.Close()

	repos := repo.New(pool)
	txManager := pg.NewMockTXManager(ctrl)
	rng := rand.New(rand.NewSource(1))

	services := New(repos, txManager, rng)

	assert.NotNil(t, services.AccountService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.PurchaseService)
	assert.NotNil(t, services.DrawService)
}
