package repo

import (
	"github.com/salembot/neoraffle/internal/pg"
	bidrepo "github.com/salembot/neoraffle/internal/repo/bid-repo"
	lotrepo "github.com/salembot/neoraffle/internal/repo/lot-repo"
	ticketrepo "github.com/salembot/neoraffle/internal/repo/ticket-repo"
	userrepo "github.com/salembot/neoraffle/internal/repo/user-repo"
	winnerrepo "github.com/salembot/neoraffle/internal/repo/winner-repo"
)

type Repositories struct {
	Users   *userrepo.Repository
	Lots    *lotrepo.Repository
	Bids    *bidrepo.Repository
	Tickets *ticketrepo.Repository
	Winners *winnerrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Users:   userrepo.New(conn),
		Lots:    lotrepo.New(conn),
		Bids:    bidrepo.New(conn),
		Tickets: ticketrepo.New(conn),
		Winners: winnerrepo.New(conn),
	}
}
