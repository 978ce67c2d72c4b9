package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/dto"
	"github.com/GlebRadaev/xoso/internal/service/settlementservice"
	"github.com/GlebRadaev/xoso/pkg/utils"
)

type Service interface {
	SettleTicket(ctx context.Context, ticketID string) (domain.Outcome, error)
	SettleBatch(ctx context.Context, date string) (domain.BatchSummary, error)
}

type SettlementHandler struct {
	settlementService Service
	now               func() time.Time
}

func New(settlementService Service) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		now:               time.Now,
	}
}

// SettleTicket godoc
//
//	@Summary		Settle a ticket
//	@Description	Check a ticket against the stored draw. Tickets whose results are not out yet stay pending and the reason is reported.
//	@Tags			Settlement
//	@Produce		json
//	@Param			ticketID	path		string	true	"Ticket id"
//	@Success		200			{object}	dto.SettlementResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid ticket"
//	@Failure		404			{object}	utils.Response	"Ticket not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets/{ticketID}/settle [post]
func (h *SettlementHandler) SettleTicket(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.settlementService.SettleTicket(r.Context(), chi.URLParam(r, "ticketID"))
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, settlementservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Ticket not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettlementResponseDTO{
		State:         outcome.State,
		IsWinner:      outcome.IsWinner,
		WinAmount:     outcome.Amount,
		PrizeCategory: outcome.Category,
		Reason:        outcome.Reason,
		Message:       outcome.Message,
	})
}

// SettleBatch godoc
//
//	@Summary		Settle open tickets for a date
//	@Description	Re-run settlement for every pending ticket of the draw date. An empty date means yesterday in Vietnam time.
//	@Tags			Settlement
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BatchRequestDTO	false	"Draw date"
//	@Success		200		{object}	dto.BatchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settlements/batch [post]
func (h *SettlementHandler) SettleBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Date == "" {
		req.Date = availability.Yesterday(h.now())
	}

	summary, err := h.settlementService.SettleBatch(r.Context(), req.Date)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BatchResponseDTO{
		TicketsProcessed: summary.TicketsProcessed,
		WinnersFound:     summary.WinnersFound,
	})
}
