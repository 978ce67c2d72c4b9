// Package batch runs the periodic sweep that pulls due draw results and then
// settles every open ticket of the swept dates.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/fetcher"
	"github.com/GlebRadaev/xoso/internal/metrics"
	"github.com/GlebRadaev/xoso/internal/schedule"
)

const defaultFetchConcurrency = 4

type Fetcher interface {
	Fetch(ctx context.Context, province, date string) error
}

type Settler interface {
	SettleBatch(ctx context.Context, date string) (domain.BatchSummary, error)
}

type Runner struct {
	fetcher     Fetcher
	settler     Settler
	spec        string
	concurrency int
	now         func() time.Time
}

func New(cfg *config.Config, fetcher Fetcher, settler Settler) *Runner {
	concurrency := cfg.FetchWorkers
	if concurrency <= 0 {
		concurrency = defaultFetchConcurrency
	}
	return &Runner{
		fetcher:     fetcher,
		settler:     settler,
		spec:        cfg.BatchSchedule,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Start schedules RunOnce on the configured cron spec, evaluated in Vietnam
// time, until ctx is done. The returned channel closes once the scheduler and
// any running sweep have stopped.
func (r *Runner) Start(ctx context.Context) (<-chan struct{}, error) {
	c := cron.New(cron.WithLocation(availability.Vietnam))
	if _, err := c.AddFunc(r.spec, func() {
		if _, err := r.RunOnce(ctx); err != nil {
			zap.L().Error("Batch sweep failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid batch schedule %q: %w", r.spec, err)
	}
	c.Start()
	zap.L().Info("Batch runner started", zap.String("schedule", r.spec))

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		<-c.Stop().Done()
		zap.L().Info("Batch runner stopped")
	}()
	return done, nil
}

// RunOnce sweeps yesterday and today: results that are due are fetched first,
// then open tickets of each date are settled.
func (r *Runner) RunOnce(ctx context.Context) (domain.BatchSummary, error) {
	now := r.now()
	var (
		total domain.BatchSummary
		errs  []error
	)
	for _, date := range []string{availability.Yesterday(now), availability.Today(now)} {
		if err := r.fetchDue(ctx, date, now); err != nil {
			errs = append(errs, err)
			continue
		}
		summary, err := r.settler.SettleBatch(ctx, date)
		if err != nil {
			errs = append(errs, fmt.Errorf("settle %s: %w", date, err))
			continue
		}
		total.TicketsProcessed += summary.TicketsProcessed
		total.WinnersFound += summary.WinnersFound
	}

	err := errors.Join(errs...)
	metrics.RecordBatch(err == nil)
	zap.L().Info("Batch sweep finished",
		zap.Int("settled", total.TicketsProcessed),
		zap.Int("winners", total.WinnersFound),
		zap.Bool("success", err == nil),
	)
	return total, err
}

// fetchDue pulls every scheduled province of date once its results are due.
// Individual province failures are logged and retried on the next sweep.
func (r *Runner) fetchDue(ctx context.Context, date string, now time.Time) error {
	due, err := availability.ShouldResultsBeAvailable(date, now)
	if err != nil {
		return err
	}
	if !due {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, province := range schedule.ProvincesDrawingOn(date) {
		g.Go(func() error {
			err := r.fetcher.Fetch(gctx, province, date)
			switch {
			case err == nil:
			case errors.Is(err, fetcher.ErrResultsNotPublished), errors.Is(err, fetcher.ErrUnknownProvince):
				zap.L().Info("Draw result not fetched", zap.String("province", province), zap.String("date", date), zap.Error(err))
			default:
				zap.L().Warn("Draw result fetch failed", zap.String("province", province), zap.String("date", date), zap.Error(err))
			}
			return nil
		})
	}
	return g.Wait()
}
