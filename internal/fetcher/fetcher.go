// Package fetcher pulls official draw results from the upstream feed and
// stores them once per province and date.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/metrics"
	"github.com/GlebRadaev/xoso/internal/schedule"
	"github.com/GlebRadaev/xoso/pkg/clients"
)

const (
	source      = "xoso188"
	historyPath = "/api/front/open/lottery/history/list/5/"
	turnLayout  = "02/01/2006"
	taskTimeout = 30 * time.Second
	// queued fetches allowed per worker before RequestFetch refuses more
	queuePerWorker = 16
)

var (
	ErrUnknownProvince     = errors.New("province has no upstream code")
	ErrUpstreamUnavailable = errors.New("upstream results unavailable")
	ErrResultsNotPublished = errors.New("results not published for date")
)

type ResultRepo interface {
	GetIfExists(ctx context.Context, province, date string) (*domain.DrawResult, error)
	CreateIfAbsent(ctx context.Context, result *domain.DrawResult) (bool, error)
}

type Service struct {
	url         string
	resultRepo  ResultRepo
	client      clients.HTTPClientI
	workerPool  WorkerPoolI
	limiter     *rate.Limiter
	taskTimeout time.Duration
	inFlight    sync.Map
}

func New(cfg *config.Config, resultRepo ResultRepo, client clients.HTTPClientI) *Service {
	rps := cfg.UpstreamRPS
	if rps <= 0 {
		rps = 1
	}
	return &Service{
		url:         cfg.ResultsAddress,
		resultRepo:  resultRepo,
		client:      client,
		workerPool:  NewWorkerPool(cfg.FetchWorkers, cfg.FetchWorkers*queuePerWorker),
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		taskTimeout: taskTimeout,
	}
}

// RequestFetch queues a fetch for province and date without waiting for a
// worker. A request for a key that is already queued or running is dropped.
// When the queue is full the key is released so a later pass can retry.
func (s *Service) RequestFetch(ctx context.Context, province, date string) error {
	province = schedule.CanonicalName(province)
	key := province + "|" + date
	if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
		zap.L().Debug("Fetch already in flight", zap.String("key", key))
		return nil
	}

	err := s.workerPool.AddTask(ctx, Task{
		Key: key,
		Run: func() error {
			defer s.inFlight.Delete(key)
			taskCtx, cancel := context.WithTimeout(context.Background(), s.taskTimeout)
			defer cancel()
			return s.Fetch(taskCtx, province, date)
		},
	})
	if err != nil {
		s.inFlight.Delete(key)
		return fmt.Errorf("failed to queue fetch %s: %w", key, err)
	}
	return nil
}

// Fetch retrieves and stores the result for province and date unless it is
// already stored.
func (s *Service) Fetch(ctx context.Context, province, date string) (err error) {
	start := time.Now()
	status := "stored"
	defer func() {
		if err != nil {
			status = "failed"
			if errors.Is(err, ErrResultsNotPublished) {
				status = "not-published"
			}
		}
		metrics.RecordFetch(status, time.Since(start))
	}()

	existing, err := s.resultRepo.GetIfExists(ctx, province, date)
	if err != nil {
		return fmt.Errorf("failed to check stored result: %w", err)
	}
	if existing != nil {
		status = "exists"
		return nil
	}

	day, err := availability.ParseDate(date)
	if err != nil {
		return err
	}
	code, ok := schedule.APICode(province)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProvince, province)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	statusCode, body, _, err := s.client.Get(ctx, s.url+historyPath+code, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, statusCode)
	}

	detail, err := parseIssue(body, day.Format(turnLayout))
	if err != nil {
		return err
	}
	prizes, err := Normalize(detail)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	created, err := s.resultRepo.CreateIfAbsent(ctx, &domain.DrawResult{
		Province: province,
		Date:     date,
		Region:   schedule.RegionOf(province),
		Prizes:   prizes,
		Source:   source,
	})
	if err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}
	if !created {
		status = "exists"
	}

	zap.L().Info("Draw result fetched",
		zap.String("province", province),
		zap.String("date", date),
		zap.Bool("created", created),
	)
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}

// parseIssue finds the draw numbered turn in a history response and returns
// its raw prize detail.
func parseIssue(body []byte, turn string) ([]byte, error) {
	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "success").Bool() {
		return nil, ErrUpstreamUnavailable
	}

	var detail string
	found := false
	gjson.GetBytes(body, "t.issueList").ForEach(func(_, issue gjson.Result) bool {
		if issue.Get("turnNum").String() != turn {
			return true
		}
		detail = issue.Get("detail").String()
		found = true
		return false
	})
	if !found || detail == "" {
		return nil, fmt.Errorf("%w: %s", ErrResultsNotPublished, turn)
	}
	return []byte(detail), nil
}
