package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/matcher"
	"github.com/GlebRadaev/xoso/internal/repo"
	"github.com/GlebRadaev/xoso/internal/service/resultservice"
	"github.com/GlebRadaev/xoso/internal/service/settlementservice"
	"github.com/GlebRadaev/xoso/internal/service/ticketservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		TicketRepo: repo.NewMockTicketRepo(ctrl),
		ResultRepo: repo.NewMockResultRepo(ctrl),
	}
	fetcher := settlementservice.NewMockFetchRequester(ctrl)
	notifier := settlementservice.NewMockNotifier(ctrl)

	services := New(&config.Config{BatchConcurrency: 4}, repos, fetcher, notifier, matcher.New(matcher.NorthBonusNone))

	assert.IsType(t, &ticketservice.Service{}, services.TicketService)
	assert.IsType(t, &settlementservice.Service{}, services.SettlementService)
	assert.IsType(t, &resultservice.Service{}, services.ResultService)
}
