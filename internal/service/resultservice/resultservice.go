package resultservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/schedule"
)

var ErrInvalidQuery = errors.New("province and date are required")

type ResultRepo interface {
	GetIfExists(ctx context.Context, province, date string) (*domain.DrawResult, error)
}

type FetchRequester interface {
	RequestFetch(ctx context.Context, province, date string) error
}

type Service struct {
	results ResultRepo
	fetcher FetchRequester
	now     func() time.Time
}

func New(results ResultRepo, fetcher FetchRequester) *Service {
	return &Service{results: results, fetcher: fetcher, now: time.Now}
}

// Lookup returns the stored draw for province and date. When nothing is
// stored it explains why, and asks for a fetch if the draw should be out.
func (s *Service) Lookup(ctx context.Context, province, date string) (domain.ResultLookup, error) {
	province = strings.TrimSpace(province)
	date = strings.TrimSpace(date)
	if province == "" || date == "" {
		return domain.ResultLookup{}, ErrInvalidQuery
	}
	if _, err := availability.ParseDate(date); err != nil {
		return domain.ResultLookup{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidQuery)
	}
	province = schedule.CanonicalName(province)

	result, err := s.results.GetIfExists(ctx, province, date)
	if err != nil {
		return domain.ResultLookup{}, err
	}
	if result != nil {
		return domain.ResultLookup{Result: result}, nil
	}

	if !schedule.DoesProvinceDrawOn(province, date) {
		return domain.ResultLookup{
			Reason:  domain.ReasonNoDrawingExpected,
			Message: fmt.Sprintf("No lottery drawing expected for %s on %s.", province, date),
		}, nil
	}

	due, err := availability.ShouldResultsBeAvailable(date, s.now())
	if err != nil {
		return domain.ResultLookup{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	if !due {
		return domain.ResultLookup{
			Reason:  domain.ReasonResultsNotDue,
			Message: fmt.Sprintf("Results not yet available for %s on %s. Check again after 4pm Vietnam time.", province, date),
		}, nil
	}

	if err := s.fetcher.RequestFetch(ctx, province, date); err != nil {
		zap.L().Warn("Failed to request result fetch", zap.String("province", province), zap.String("date", date), zap.Error(err))
		return domain.ResultLookup{
			Reason:  domain.ReasonResultsUnavailable,
			Message: fmt.Sprintf("Results not yet available for %s on %s.", province, date),
		}, nil
	}
	return domain.ResultLookup{
		Reason:  domain.ReasonFetchRequested,
		Message: fmt.Sprintf("Results not yet available for %s on %s. Background fetch initiated - please try again in a few moments.", province, date),
	}, nil
}
