package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/xoso/docs"
	resultshandlers "github.com/GlebRadaev/xoso/internal/handlers/results"
	settlementhandlers "github.com/GlebRadaev/xoso/internal/handlers/settlement"
	ticketshandlers "github.com/GlebRadaev/xoso/internal/handlers/tickets"
	"github.com/GlebRadaev/xoso/internal/metrics"
	"github.com/GlebRadaev/xoso/internal/service"
)

type TicketHandler interface {
	SubmitTicket(w http.ResponseWriter, r *http.Request)
	GetUserTickets(w http.ResponseWriter, r *http.Request)
	DuplicateTicket(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	SettleTicket(w http.ResponseWriter, r *http.Request)
	SettleBatch(w http.ResponseWriter, r *http.Request)
}

type ResultHandler interface {
	GetResults(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TicketHandler     TicketHandler
	SettlementHandler SettlementHandler
	ResultHandler     ResultHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		TicketHandler:     ticketshandlers.New(s.TicketService),
		SettlementHandler: settlementhandlers.New(s.SettlementService),
		ResultHandler:     resultshandlers.New(s.ResultService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/tickets", func(r chi.Router) {
			r.Post("/", h.TicketHandler.SubmitTicket)
			r.Post("/{ticketID}/duplicate", h.TicketHandler.DuplicateTicket)
			r.Post("/{ticketID}/settle", h.SettlementHandler.SettleTicket)
		})
		r.Get("/users/{userID}/tickets", h.TicketHandler.GetUserTickets)
		r.Post("/settlements/batch", h.SettlementHandler.SettleBatch)
		r.Get("/results", h.ResultHandler.GetResults)
	})

	return r
}
