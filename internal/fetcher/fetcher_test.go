package fetcher

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/pkg/clients"
)

const (
	feedURL    = "http://feed"
	vungTauURL = feedURL + "/api/front/open/lottery/history/list/5/vuta"
	historyOK  = `{"success":true,"t":{"issueList":[` +
		`{"turnNum":"02/01/2024","detail":"[\"123456\",\"12345\",\"54321\"]"},` +
		`{"turnNum":"26/12/2023","detail":"[\"111111\"]"}]}}`
)

func NewMock(t *testing.T) (*Service, *MockResultRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{ResultsAddress: feedURL, FetchWorkers: 1, UpstreamRPS: 1000}
	ctrl := gomock.NewController(t)

	repo := NewMockResultRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, repo, client)
	t.Cleanup(service.Close)
	return service, repo, client
}

func TestService_Fetch(t *testing.T) {
	tests := []struct {
		name        string
		province    string
		date        string
		prepareMock func(repo *MockResultRepo, client *clients.MockHTTPClientI)
		expectedErr error
		wantErr     bool
	}{
		{
			name:     "Result already stored",
			province: "Vũng Tàu",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, _ *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), "Vũng Tàu", "2024-01-02").Return(&domain.DrawResult{}, nil)
			},
		},
		{
			name:     "Store lookup fails",
			province: "Vũng Tàu",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, _ *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), "Vũng Tàu", "2024-01-02").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name:     "Province without feed code",
			province: "Atlantis",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, _ *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), "Atlantis", "2024-01-02").Return(nil, nil)
			},
			expectedErr: ErrUnknownProvince,
		},
		{
			name:     "Transport error",
			province: "Vũng Tàu",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, client *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), vungTauURL, gomock.Any()).Return(0, nil, nil, errors.New("dial tcp"))
			},
			expectedErr: ErrUpstreamUnavailable,
		},
		{
			name:     "Unexpected status",
			province: "Vũng Tàu",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, client *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), vungTauURL, gomock.Any()).Return(http.StatusBadGateway, nil, nil, nil)
			},
			expectedErr: ErrUpstreamUnavailable,
		},
		{
			name:     "Draw not yet in history",
			province: "Vũng Tàu",
			date:     "2024-01-09",
			prepareMock: func(repo *MockResultRepo, client *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), vungTauURL, gomock.Any()).Return(http.StatusOK, []byte(historyOK), nil, nil)
			},
			expectedErr: ErrResultsNotPublished,
		},
		{
			name:     "Result stored",
			province: "Vũng Tàu",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, client *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), vungTauURL, gomock.Any()).Return(http.StatusOK, []byte(historyOK), nil, nil)
				repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, result *domain.DrawResult) (bool, error) {
						assert.Equal(t, "Vũng Tàu", result.Province)
						assert.Equal(t, "2024-01-02", result.Date)
						assert.Equal(t, domain.RegionSouth, result.Region)
						assert.Equal(t, "xoso188", result.Source)
						assert.Equal(t, domain.PrizeTiers{
							"DB": {"123456"},
							"G1": {"12345"},
							"G2": {"54321"},
						}, result.Prizes)
						return true, nil
					})
			},
		},
		{
			name:     "Another writer stored it first",
			province: "Vũng Tàu",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, client *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), vungTauURL, gomock.Any()).Return(http.StatusOK, []byte(historyOK), nil, nil)
				repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name:     "Store write fails",
			province: "Vũng Tàu",
			date:     "2024-01-02",
			prepareMock: func(repo *MockResultRepo, client *clients.MockHTTPClientI) {
				repo.EXPECT().GetIfExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				client.EXPECT().Get(gomock.Any(), vungTauURL, gomock.Any()).Return(http.StatusOK, []byte(historyOK), nil, nil)
				repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, client := NewMock(t)
			tt.prepareMock(repo, client)

			err := service.Fetch(context.Background(), tt.province, tt.date)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_RequestFetch(t *testing.T) {
	newService := func(t *testing.T) (*Service, *MockWorkerPoolI, *MockResultRepo) {
		ctrl := gomock.NewController(t)
		pool := NewMockWorkerPoolI(ctrl)
		repo := NewMockResultRepo(ctrl)
		return &Service{
			url:         feedURL,
			resultRepo:  repo,
			workerPool:  pool,
			limiter:     rate.NewLimiter(rate.Inf, 1),
			taskTimeout: time.Second,
		}, pool, repo
	}

	t.Run("Duplicate requests are queued once", func(t *testing.T) {
		service, pool, _ := newService(t)
		pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		require.NoError(t, service.RequestFetch(context.Background(), "vung tau", "2024-01-02"))
		require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-02"))
	})

	t.Run("Different dates are queued separately", func(t *testing.T) {
		service, pool, _ := newService(t)
		pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-02"))
		require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-09"))
	})

	t.Run("Failed enqueue releases the key", func(t *testing.T) {
		service, pool, _ := newService(t)
		gomock.InOrder(
			pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled),
			pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(nil),
		)

		err := service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-02")
		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-02"))
	})

	t.Run("Finished task releases the key", func(t *testing.T) {
		service, pool, repo := newService(t)
		var queued Task
		pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task Task) error {
				queued = task
				return nil
			}).Times(2)
		repo.EXPECT().GetIfExists(gomock.Any(), "Vũng Tàu", "2024-01-02").Return(&domain.DrawResult{}, nil)

		require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-02"))
		assert.Equal(t, "Vũng Tàu|2024-01-02", queued.Key)
		require.NoError(t, queued.Run())
		require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-02"))
	})
}

func TestService_RequestFetch_SaturatedPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockResultRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := &Service{
		url:         feedURL,
		resultRepo:  repo,
		client:      client,
		workerPool:  NewWorkerPool(1, 1),
		limiter:     rate.NewLimiter(rate.Inf, 1),
		taskTimeout: 5 * time.Second,
	}
	defer service.Close()

	inUpstream := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	var once sync.Once

	repo.EXPECT().GetIfExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ http.Header) (int, []byte, http.Header, error) {
			_, bounded := ctx.Deadline()
			assert.True(t, bounded)
			once.Do(func() { close(inUpstream) })
			select {
			case <-release:
			case <-ctx.Done():
			}
			return 0, nil, nil, errors.New("upstream gone")
		}).AnyTimes()

	require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-02"))
	<-inUpstream
	require.NoError(t, service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-09"))

	begin := time.Now()
	err := service.RequestFetch(context.Background(), "Vũng Tàu", "2024-01-16")
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Less(t, time.Since(begin), 100*time.Millisecond)

	_, queued := service.inFlight.Load("Vũng Tàu|2024-01-16")
	assert.False(t, queued)
}

func TestParseIssue(t *testing.T) {
	detail, err := parseIssue([]byte(historyOK), "26/12/2023")
	require.NoError(t, err)
	assert.Equal(t, `["111111"]`, string(detail))

	_, err = parseIssue([]byte(`{"success":false}`), "26/12/2023")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	_, err = parseIssue([]byte(`<html>`), "26/12/2023")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	_, err = parseIssue([]byte(`{"success":true,"t":{"issueList":[]}}`), "26/12/2023")
	assert.ErrorIs(t, err, ErrResultsNotPublished)
}
