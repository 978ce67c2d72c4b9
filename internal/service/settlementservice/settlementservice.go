package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/matcher"
	"github.com/GlebRadaev/xoso/internal/metrics"
	"github.com/GlebRadaev/xoso/internal/schedule"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("ticket not found")
)

const defaultConcurrency = 8

type TicketRepo interface {
	Get(ctx context.Context, ticketID string) (*domain.Ticket, error)
	ConditionalSettle(ctx context.Context, ticketID string, outcome domain.Outcome, checkedAt time.Time) (bool, error)
	MarkAwaiting(ctx context.Context, ticketID string) error
	QueryByDateAndState(ctx context.Context, date string, states []string) ([]domain.Ticket, error)
}

type ResultRepo interface {
	GetIfExists(ctx context.Context, province, date string) (*domain.DrawResult, error)
}

type FetchRequester interface {
	RequestFetch(ctx context.Context, province, date string) error
}

type Notifier interface {
	Notify(ctx context.Context, ticket domain.Ticket, outcome domain.Outcome) error
}

type Service struct {
	tickets     TicketRepo
	results     ResultRepo
	fetcher     FetchRequester
	notifier    Notifier
	matcher     *matcher.Matcher
	now         func() time.Time
	concurrency int
}

func New(tickets TicketRepo, results ResultRepo, fetcher FetchRequester, notifier Notifier, m *matcher.Matcher) *Service {
	return &Service{
		tickets:     tickets,
		results:     results,
		fetcher:     fetcher,
		notifier:    notifier,
		matcher:     m,
		now:         time.Now,
		concurrency: defaultConcurrency,
	}
}

// WithClock replaces the time source used by the availability check.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithConcurrency bounds how many tickets a batch settles at once.
func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}
	return s
}

// SettleTicket advances one ticket as far as the available results allow.
// Store and fetch failures leave the ticket pending and are not returned.
func (s *Service) SettleTicket(ctx context.Context, ticketID string) (domain.Outcome, error) {
	outcome, _, err := s.settleTicket(ctx, ticketID)
	return outcome, err
}

// settleTicket also reports whether this call performed the terminal write.
func (s *Service) settleTicket(ctx context.Context, ticketID string) (domain.Outcome, bool, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return domain.Outcome{}, false, fmt.Errorf("%w: ticket id is required", ErrInvalidInput)
	}

	ticket, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		zap.L().Error("Failed to load ticket", zap.String("ticketID", ticketID), zap.Error(err))
		return unavailable(domain.StatePending), false, nil
	}
	if ticket == nil {
		return domain.Outcome{}, false, ErrNotFound
	}
	return s.settle(ctx, *ticket)
}

func (s *Service) settle(ctx context.Context, ticket domain.Ticket) (domain.Outcome, bool, error) {
	if ticket.State == domain.StateSettled {
		return ticket.SettledOutcome(), false, nil
	}
	if _, err := availability.ParseDate(ticket.DrawDate); err != nil {
		return domain.Outcome{}, false, fmt.Errorf("%w: draw date %q", ErrInvalidInput, ticket.DrawDate)
	}

	result, err := s.results.GetIfExists(ctx, ticket.Province, ticket.DrawDate)
	if err != nil {
		zap.L().Error("Failed to load draw result", zap.String("ticketID", ticket.TicketID), zap.Error(err))
		return unavailable(ticket.State), false, nil
	}

	if result != nil {
		region := ticket.Region
		if region == "" {
			region = result.Region
		}
		match := s.matcher.Match(ticket.TicketNumber, region, result.Prizes)
		return s.commit(ctx, ticket, domain.Outcome{
			State:    domain.StateSettled,
			IsWinner: match.IsWinner,
			Amount:   match.Amount,
			Category: match.Category,
		})
	}

	if !schedule.DoesProvinceDrawOn(ticket.Province, ticket.DrawDate) {
		return s.commit(ctx, ticket, domain.Outcome{
			State:   domain.StateSettled,
			Reason:  domain.ReasonNoDrawingExpected,
			Message: fmt.Sprintf("No lottery drawing expected for %s on %s.", ticket.Province, ticket.DrawDate),
		})
	}

	due, err := availability.ShouldResultsBeAvailable(ticket.DrawDate, s.now())
	if err != nil {
		return domain.Outcome{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	outcome := domain.Outcome{
		State:   domain.StateAwaitingResults,
		Reason:  domain.ReasonResultsNotDue,
		Message: fmt.Sprintf("Results not yet available for %s. Check again after 4pm Vietnam time.", ticket.DrawDate),
	}
	if due {
		outcome.Reason = domain.ReasonFetchRequested
		outcome.Message = "Results not yet available - ticket status is pending. Background fetch initiated."
		if err := s.fetcher.RequestFetch(ctx, ticket.Province, ticket.DrawDate); err != nil {
			zap.L().Warn("Failed to request result fetch",
				zap.String("province", ticket.Province),
				zap.String("date", ticket.DrawDate),
				zap.Error(err),
			)
			outcome = unavailable(domain.StateAwaitingResults)
		}
	}

	if ticket.State == domain.StatePending {
		if err := s.tickets.MarkAwaiting(ctx, ticket.TicketID); err != nil {
			zap.L().Error("Failed to mark ticket awaiting", zap.String("ticketID", ticket.TicketID), zap.Error(err))
		}
	}
	return outcome, false, nil
}

// commit performs the conditional terminal write and notifies only when this
// call won it.
func (s *Service) commit(ctx context.Context, ticket domain.Ticket, outcome domain.Outcome) (domain.Outcome, bool, error) {
	won, err := s.tickets.ConditionalSettle(ctx, ticket.TicketID, outcome, s.now().UTC())
	if err != nil {
		zap.L().Error("Failed to settle ticket", zap.String("ticketID", ticket.TicketID), zap.Error(err))
		return unavailable(ticket.State), false, nil
	}

	if !won {
		stored, err := s.tickets.Get(ctx, ticket.TicketID)
		if err != nil || stored == nil {
			zap.L().Error("Failed to reload settled ticket", zap.String("ticketID", ticket.TicketID), zap.Error(err))
			return unavailable(ticket.State), false, nil
		}
		return stored.SettledOutcome(), false, nil
	}

	metrics.RecordSettlement(outcome.IsWinner, outcome.Amount, outcome.Reason)
	zap.L().Info("Ticket settled",
		zap.String("ticketID", ticket.TicketID),
		zap.Bool("isWinner", outcome.IsWinner),
		zap.Int64("amount", outcome.Amount),
		zap.String("category", outcome.Category),
	)
	if err := s.notifier.Notify(ctx, ticket, outcome); err != nil {
		zap.L().Error("Failed to notify", zap.String("ticketID", ticket.TicketID), zap.Error(err))
	}
	return outcome, true, nil
}

// SettleBatch re-runs settlement for every open ticket drawn on date and
// counts the tickets this pass settled. A store failure yields an empty
// summary; the next pass picks the tickets up again.
func (s *Service) SettleBatch(ctx context.Context, date string) (domain.BatchSummary, error) {
	if _, err := availability.ParseDate(date); err != nil {
		return domain.BatchSummary{}, fmt.Errorf("%w: date %q", ErrInvalidInput, date)
	}

	tickets, err := s.tickets.QueryByDateAndState(ctx, date,
		[]string{domain.StatePending, domain.StateAwaitingResults})
	if err != nil {
		zap.L().Error("Failed to load open tickets", zap.String("date", date), zap.Error(err))
		return domain.BatchSummary{}, nil
	}

	var processed, winners atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, ticket := range tickets {
		g.Go(func() error {
			outcome, settledNow, err := s.settle(gctx, ticket)
			if err != nil {
				zap.L().Warn("Skipping ticket in batch", zap.String("ticketID", ticket.TicketID), zap.Error(err))
				return nil
			}
			if settledNow {
				processed.Add(1)
				if outcome.IsWinner {
					winners.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BatchSummary{}, err
	}

	summary := domain.BatchSummary{
		TicketsProcessed: int(processed.Load()),
		WinnersFound:     int(winners.Load()),
	}
	zap.L().Info("Batch settlement finished",
		zap.String("date", date),
		zap.Int("open", len(tickets)),
		zap.Int("settled", summary.TicketsProcessed),
		zap.Int("winners", summary.WinnersFound),
	)
	return summary, nil
}

func unavailable(state string) domain.Outcome {
	return domain.Outcome{
		State:   state,
		Reason:  domain.ReasonResultsUnavailable,
		Message: "Results could not be checked right now. The ticket will be retried.",
	}
}
