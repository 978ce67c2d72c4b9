package tickets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/dto"
	"github.com/GlebRadaev/xoso/internal/service/ticketservice"
	"github.com/GlebRadaev/xoso/pkg/utils"
)

func NewMock(t *testing.T) (http.Handler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	router := chi.NewRouter()
	router.Post("/api/tickets", handler.SubmitTicket)
	router.Get("/api/users/{userID}/tickets", handler.GetUserTickets)
	router.Post("/api/tickets/{ticketID}/duplicate", handler.DuplicateTicket)
	return router, service
}

func TestSubmitTicketHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
		expectedID    string
	}{
		{
			name: "Ticket stored",
			body: `{"userId":"u-1","ticketNumber":"123456","province":"Vũng Tàu","drawDate":"2024-01-02","deviceToken":"dev"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Submit(gomock.Any(), domain.Ticket{
					UserID: "u-1", TicketNumber: "123456", Province: "Vũng Tàu", DrawDate: "2024-01-02", DeviceToken: "dev",
				}).Return(&domain.Ticket{TicketID: "id-1"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedID:   "id-1",
		},
		{
			name:          "Malformed body",
			body:          `{"userId":`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request format",
		},
		{
			name: "Validation failure",
			body: `{"userId":"u-1","ticketNumber":"1","province":"Huế","drawDate":"2024-01-02"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: ticketNumber must have 2 to 6 digits", ticketservice.ErrInvalidTicket))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid ticket: ticketNumber must have 2 to 6 digits",
		},
		{
			name: "Store failure",
			body: `{"userId":"u-1","ticketNumber":"12","province":"Huế","drawDate":"2024-01-02"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/tickets", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.SubmitTicketResponseDTO
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.expectedID, resp.TicketID)
		})
	}
}

func TestGetUserTicketsHandler(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	checked := created.Add(14 * time.Hour)

	t.Run("Tickets listed", func(t *testing.T) {
		router, service := NewMock(t)
		service.EXPECT().ListByUser(gomock.Any(), "u-1").Return([]domain.Ticket{
			{TicketID: "b", TicketNumber: "12", State: domain.StateSettled, IsWinner: true, WinAmount: 100_000,
				PrizeCategory: "G8", CheckedAt: &checked, CreatedAt: created},
			{TicketID: "a", TicketNumber: "34", State: domain.StatePending, CreatedAt: created},
		}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u-1/tickets", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.TicketResponseDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "2024-01-02T17:04:05Z", resp[0].CheckedAt)
		assert.Equal(t, int64(100_000), resp[0].WinAmount)
		assert.Empty(t, resp[1].CheckedAt)
		assert.Equal(t, "2024-01-02T03:04:05Z", resp[1].CreatedAt)
	})

	t.Run("No tickets", func(t *testing.T) {
		router, service := NewMock(t)
		service.EXPECT().ListByUser(gomock.Any(), "u-2").Return([]domain.Ticket{}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u-2/tickets", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		router, service := NewMock(t)
		service.EXPECT().ListByUser(gomock.Any(), "u-3").Return(nil, errors.New("timeout"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/u-3/tickets", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDuplicateTicketHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Copies created",
			body: `{"quantity":3}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Duplicate(gomock.Any(), "orig", 3).
					Return([]domain.Ticket{{TicketID: "c1"}, {TicketID: "c2"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"duplicatesCreated":2,"requestedQuantity":3,"totalTickets":3,"ticketIds":["c1","c2"]}`,
		},
		{
			name: "Empty body defaults to one",
			body: "",
			prepareMock: func(service *MockService) {
				service.EXPECT().Duplicate(gomock.Any(), "orig", 1).Return([]domain.Ticket{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"duplicatesCreated":0,"requestedQuantity":1,"totalTickets":1,"ticketIds":[]}`,
		},
		{
			name:         "Malformed body",
			body:         `{"quantity":"three"}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request format"}`,
		},
		{
			name: "Quantity out of range",
			body: `{"quantity":11}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Duplicate(gomock.Any(), "orig", 11).Return(nil, ticketservice.ErrInvalidQuantity)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"quantity must be between 1 and 10"}`,
		},
		{
			name: "Original missing",
			body: `{"quantity":2}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Duplicate(gomock.Any(), "orig", 2).Return(nil, ticketservice.ErrTicketNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Original ticket not found"}`,
		},
		{
			name: "Store failure",
			body: `{"quantity":2}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Duplicate(gomock.Any(), "orig", 2).Return(nil, errors.New("disk full"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/tickets/orig/duplicate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
