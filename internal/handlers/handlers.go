package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/salembot/neoraffle/docs"
	accounthandlers "github.com/salembot/neoraffle/internal/handlers/accounts"
	drawhandlers "github.com/salembot/neoraffle/internal/handlers/draw"
	lothandlers "github.com/salembot/neoraffle/internal/handlers/lots"
	purchasehandlers "github.com/salembot/neoraffle/internal/handlers/purchase"
	"github.com/salembot/neoraffle/internal/notify"
	"github.com/salembot/neoraffle/internal/service"
)

type AccountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	IsRegistered(w http.ResponseWriter, r *http.Request)
	ListUsernames(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	SetBalance(w http.ResponseWriter, r *http.Request)
}

type LotHandler interface {
	AddLot(w http.ResponseWriter, r *http.Request)
	GetLot(w http.ResponseWriter, r *http.Request)
	ListLots(w http.ResponseWriter, r *http.Request)
	EditLot(w http.ResponseWriter, r *http.Request)
	DeleteLot(w http.ResponseWriter, r *http.Request)
	CountOwnedLots(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
}

type DrawHandler interface {
	Draw(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler  AccountHandler
	LotHandler      LotHandler
	PurchaseHandler PurchaseHandler
	DrawHandler     DrawHandler
}

func New(s *service.Services, notifier notify.Notifier) *Handlers {
	return &Handlers{
		AccountHandler:  accounthandlers.New(s.AccountService, s.LedgerService),
		LotHandler:      lothandlers.New(s.CatalogService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService, notifier),
		DrawHandler:     drawhandlers.New(s.DrawService, notifier),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/register", h.AccountHandler.Register)
			r.Get("/usernames", h.AccountHandler.ListUsernames)
			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/registered", h.AccountHandler.IsRegistered)
				r.Get("/balance", h.AccountHandler.GetBalance)
				r.Put("/balance", h.AccountHandler.SetBalance)
				r.Get("/lots/count", h.LotHandler.CountOwnedLots)
			})
		})
		r.Route("/lots", func(r chi.Router) {
			r.Post("/", h.LotHandler.AddLot)
			r.Get("/", h.LotHandler.ListLots)
			r.Route("/{lotID}", func(r chi.Router) {
				r.Get("/", h.LotHandler.GetLot)
				r.Patch("/", h.LotHandler.EditLot)
				r.Delete("/", h.LotHandler.DeleteLot)
				r.Post("/purchase", h.PurchaseHandler.Purchase)
			})
		})
		r.Route("/draw", func(r chi.Router) {
			r.Post("/", h.DrawHandler.Draw)
			r.Get("/summary", h.DrawHandler.Summary)
		})
	})

	return r
}
