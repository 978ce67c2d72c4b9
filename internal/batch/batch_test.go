package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/fetcher"
)

func NewMock(t *testing.T, now time.Time) (*Runner, *MockFetcher, *MockSettler) {
	ctrl := gomock.NewController(t)
	f := NewMockFetcher(ctrl)
	s := NewMockSettler(ctrl)
	r := New(&config.Config{BatchSchedule: "*/15 * * * *", FetchWorkers: 2}, f, s)
	r.now = func() time.Time { return now }
	return r, f, s
}

func TestRunner_RunOnce(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-02 a Tuesday; six provinces draw on each.
	evening := time.Date(2024, 1, 2, 17, 0, 0, 0, availability.Vietnam)
	morning := time.Date(2024, 1, 2, 9, 0, 0, 0, availability.Vietnam)

	t.Run("After the cutoff both dates are fetched", func(t *testing.T) {
		r, f, s := NewMock(t, evening)
		f.EXPECT().Fetch(gomock.Any(), gomock.Any(), "2024-01-01").Return(nil).Times(6)
		f.EXPECT().Fetch(gomock.Any(), gomock.Any(), "2024-01-02").Return(nil).Times(6)
		gomock.InOrder(
			s.EXPECT().SettleBatch(gomock.Any(), "2024-01-01").Return(domain.BatchSummary{TicketsProcessed: 3, WinnersFound: 1}, nil),
			s.EXPECT().SettleBatch(gomock.Any(), "2024-01-02").Return(domain.BatchSummary{TicketsProcessed: 2}, nil),
		)

		summary, err := r.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.BatchSummary{TicketsProcessed: 5, WinnersFound: 1}, summary)
	})

	t.Run("Before the cutoff only yesterday is fetched", func(t *testing.T) {
		r, f, s := NewMock(t, morning)
		f.EXPECT().Fetch(gomock.Any(), gomock.Any(), "2024-01-01").Return(nil).Times(6)
		f.EXPECT().Fetch(gomock.Any(), gomock.Any(), "2024-01-02").Times(0)
		s.EXPECT().SettleBatch(gomock.Any(), "2024-01-01").Return(domain.BatchSummary{}, nil)
		s.EXPECT().SettleBatch(gomock.Any(), "2024-01-02").Return(domain.BatchSummary{}, nil)

		_, err := r.RunOnce(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Fetch failures do not stop settlement", func(t *testing.T) {
		r, f, s := NewMock(t, morning)
		f.EXPECT().Fetch(gomock.Any(), "Hà Nội", "2024-01-01").Return(fetcher.ErrResultsNotPublished)
		f.EXPECT().Fetch(gomock.Any(), "Huế", "2024-01-01").Return(errors.New("upstream down"))
		f.EXPECT().Fetch(gomock.Any(), gomock.Any(), "2024-01-01").Return(nil).Times(4)
		s.EXPECT().SettleBatch(gomock.Any(), "2024-01-01").Return(domain.BatchSummary{TicketsProcessed: 1}, nil)
		s.EXPECT().SettleBatch(gomock.Any(), "2024-01-02").Return(domain.BatchSummary{}, nil)

		summary, err := r.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, summary.TicketsProcessed)
	})

	t.Run("Settlement failure is reported", func(t *testing.T) {
		r, f, s := NewMock(t, morning)
		f.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		s.EXPECT().SettleBatch(gomock.Any(), "2024-01-01").Return(domain.BatchSummary{}, errors.New("timeout"))
		s.EXPECT().SettleBatch(gomock.Any(), "2024-01-02").Return(domain.BatchSummary{TicketsProcessed: 4, WinnersFound: 2}, nil)

		summary, err := r.RunOnce(context.Background())
		assert.ErrorContains(t, err, "settle 2024-01-01")
		assert.Equal(t, domain.BatchSummary{TicketsProcessed: 4, WinnersFound: 2}, summary)
	})
}

func TestRunner_Start(t *testing.T) {
	t.Run("Invalid schedule", func(t *testing.T) {
		r, _, _ := NewMock(t, time.Now())
		r.spec = "every now and then"
		_, err := r.Start(context.Background())
		assert.Error(t, err)
	})

	t.Run("Stops with the context", func(t *testing.T) {
		r, _, _ := NewMock(t, time.Now())
		r.spec = "0 0 1 1 *"
		ctx, cancel := context.WithCancel(context.Background())
		done, err := r.Start(ctx)
		require.NoError(t, err)

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("runner did not stop")
		}
	})
}
