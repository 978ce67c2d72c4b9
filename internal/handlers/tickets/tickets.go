package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/dto"
	"github.com/GlebRadaev/xoso/internal/service/ticketservice"
	"github.com/GlebRadaev/xoso/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error)
	Duplicate(ctx context.Context, ticketID string, quantity int) ([]domain.Ticket, error)
}

type TicketHandler struct {
	ticketService Service
}

func New(ticketService Service) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// SubmitTicket godoc
//
//	@Summary		Submit a ticket
//	@Description	Store a scanned lottery ticket for settlement after its draw.
//	@Tags			Tickets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitTicketRequestDTO	true	"Ticket details"
//	@Success		201		{object}	dto.SubmitTicketResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid ticket"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets [post]
func (h *TicketHandler) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitTicketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	ticket, err := h.ticketService.Submit(r.Context(), domain.Ticket{
		UserID:       req.UserID,
		TicketNumber: req.TicketNumber,
		Province:     req.Province,
		DrawDate:     req.DrawDate,
		Region:       req.Region,
		DeviceToken:  req.DeviceToken,
	})
	if err != nil {
		switch {
		case errors.Is(err, ticketservice.ErrInvalidTicket):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitTicketResponseDTO{
		TicketID: ticket.TicketID,
		Message:  "Ticket stored successfully",
	})
}

// GetUserTickets godoc
//
//	@Summary		List a user's tickets
//	@Description	Retrieve every ticket submitted by the user, newest first.
//	@Tags			Tickets
//	@Produce		json
//	@Param			userID	path	string	true	"User id"
//	@Success		200		{array}		dto.TicketResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{userID}/tickets [get]
func (h *TicketHandler) GetUserTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketService.ListByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		switch {
		case errors.Is(err, ticketservice.ErrInvalidTicket):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.TicketResponseDTO, 0, len(tickets))
	for _, ticket := range tickets {
		item := dto.TicketResponseDTO{
			TicketID:      ticket.TicketID,
			TicketNumber:  ticket.TicketNumber,
			Province:      ticket.Province,
			DrawDate:      ticket.DrawDate,
			Region:        ticket.Region,
			State:         ticket.State,
			IsWinner:      ticket.IsWinner,
			WinAmount:     ticket.WinAmount,
			PrizeCategory: ticket.PrizeCategory,
			CreatedAt:     ticket.CreatedAt.Format(time.RFC3339),
		}
		if ticket.CheckedAt != nil {
			item.CheckedAt = ticket.CheckedAt.Format(time.RFC3339)
		}
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DuplicateTicket godoc
//
//	@Summary		Duplicate a ticket
//	@Description	Create copies of a ticket so that quantity tickets with the same number exist in total.
//	@Tags			Tickets
//	@Accept			json
//	@Produce		json
//	@Param			ticketID	path	string							true	"Ticket id"
//	@Param			request		body	dto.DuplicateTicketRequestDTO	false	"Total quantity, 1 to 10 (default 1)"
//	@Success		200			{object}	dto.DuplicateTicketResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid quantity"
//	@Failure		404			{object}	utils.Response	"Original ticket not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/tickets/{ticketID}/duplicate [post]
func (h *TicketHandler) DuplicateTicket(w http.ResponseWriter, r *http.Request) {
	req := dto.DuplicateTicketRequestDTO{Quantity: 1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	copies, err := h.ticketService.Duplicate(r.Context(), chi.URLParam(r, "ticketID"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, ticketservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ticketservice.ErrTicketNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Original ticket not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	ids := make([]string, 0, len(copies))
	for _, c := range copies {
		ids = append(ids, c.TicketID)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DuplicateTicketResponseDTO{
		DuplicatesCreated: len(copies),
		RequestedQuantity: req.Quantity,
		TotalTickets:      len(copies) + 1,
		TicketIDs:         ids,
	})
}
