package repo

import (
	"github.com/GlebRadaev/xoso/internal/fetcher"
	"github.com/GlebRadaev/xoso/internal/pg"
	resultrepo "github.com/GlebRadaev/xoso/internal/repo/result-repo"
	ticketrepo "github.com/GlebRadaev/xoso/internal/repo/ticket-repo"
	"github.com/GlebRadaev/xoso/internal/service/resultservice"
	"github.com/GlebRadaev/xoso/internal/service/settlementservice"
	"github.com/GlebRadaev/xoso/internal/service/ticketservice"
)

type TicketRepo interface {
	ticketservice.Repo
	settlementservice.TicketRepo
}

type ResultRepo interface {
	fetcher.ResultRepo
	settlementservice.ResultRepo
	resultservice.ResultRepo
}

type Repositories struct {
	TicketRepo TicketRepo
	ResultRepo ResultRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TicketRepo: ticketrepo.New(conn, txManager),
		ResultRepo: resultrepo.New(conn),
	}
}
