package service

import (
	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/handlers/results"
	"github.com/GlebRadaev/xoso/internal/handlers/settlement"
	"github.com/GlebRadaev/xoso/internal/handlers/tickets"
	"github.com/GlebRadaev/xoso/internal/matcher"

	"github.com/GlebRadaev/xoso/internal/repo"
	resultservice "github.com/GlebRadaev/xoso/internal/service/resultservice"
	settlementservice "github.com/GlebRadaev/xoso/internal/service/settlementservice"
	ticketservice "github.com/GlebRadaev/xoso/internal/service/ticketservice"
)

type Services struct {
	TicketService     tickets.Service
	SettlementService settlement.Service
	ResultService     results.Service
}

func New(cfg *config.Config, repo *repo.Repositories, fetcher settlementservice.FetchRequester, notifier settlementservice.Notifier, m *matcher.Matcher) *Services {
	ticketService := ticketservice.New(repo.TicketRepo)
	settlementService := settlementservice.New(repo.TicketRepo, repo.ResultRepo, fetcher, notifier, m).
		WithConcurrency(cfg.BatchConcurrency)
	resultService := resultservice.New(repo.ResultRepo, fetcher)

	return &Services{
		TicketService:     ticketService,
		SettlementService: settlementService,
		ResultService:     resultService,
	}
}
