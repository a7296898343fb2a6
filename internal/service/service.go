package service

import (
	"math/rand"

	"github.com/salembot/neoraffle/internal/handlers/accounts"
	"github.com/salembot/neoraffle/internal/handlers/draw"
	"github.com/salembot/neoraffle/internal/handlers/lots"
	"github.com/salembot/neoraffle/internal/handlers/purchase"

	"github.com/salembot/neoraffle/internal/pg"
	"github.com/salembot/neoraffle/internal/repo"
	accountservice "github.com/salembot/neoraffle/internal/service/accountservice"
	catalogservice "github.com/salembot/neoraffle/internal/service/catalogservice"
	drawservice "github.com/salembot/neoraffle/internal/service/drawservice"
	ledgerservice "github.com/salembot/neoraffle/internal/service/ledgerservice"
	purchaseservice "github.com/salembot/neoraffle/internal/service/purchaseservice"
)

type Services struct {
	AccountService  accounts.Service
	LedgerService   accounts.Ledger
	CatalogService  lots.Service
	PurchaseService purchase.Service
	DrawService     draw.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, rng *rand.Rand) *Services {
	accountService := accountservice.New(repo.Users)
	ledgerService := ledgerservice.New(repo.Users)
	catalogService := catalogservice.New(repo.Lots, repo.Users, repo.Bids, repo.Tickets, repo.Winners, txManager)
	purchaseService := purchaseservice.New(ledgerService, repo.Users, repo.Lots, repo.Bids, repo.Tickets, txManager)
	drawService := drawservice.New(repo.Lots, repo.Tickets, repo.Bids, repo.Winners, txManager, rng)

	return &Services{
		AccountService:  accountService,
		LedgerService:   ledgerService,
		CatalogService:  catalogService,
		PurchaseService: purchaseService,
		DrawService:     drawService,
	}
}
