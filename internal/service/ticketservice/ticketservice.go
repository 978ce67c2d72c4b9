package ticketservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/xoso/internal/availability"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/schedule"
	"github.com/GlebRadaev/xoso/pkg/validate"
)

const (
	minDuplicates = 1
	maxDuplicates = 10
)

var (
	ErrInvalidTicket   = errors.New("invalid ticket")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")
	ErrTicketNotFound  = errors.New("ticket not found")
)

type Repo interface {
	Save(ctx context.Context, ticket *domain.Ticket) error
	SaveBatch(ctx context.Context, tickets []domain.Ticket) error
	Get(ctx context.Context, ticketID string) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error)
}

type Service struct {
	repo  Repo
	now   func() time.Time
	newID func() string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit validates and stores a new PENDING ticket. Provinces are stored
// under their canonical name so tickets and draw results share one key.
func (s *Service) Submit(ctx context.Context, ticket domain.Ticket) (*domain.Ticket, error) {
	ticket.UserID = strings.TrimSpace(ticket.UserID)
	if ticket.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidTicket)
	}

	number, ok := validate.TicketNumber(ticket.TicketNumber)
	if !ok {
		return nil, fmt.Errorf("%w: ticketNumber must have %d to %d digits",
			ErrInvalidTicket, validate.MinTicketDigits, validate.MaxTicketDigits)
	}
	ticket.TicketNumber = number

	if strings.TrimSpace(ticket.Province) == "" {
		return nil, fmt.Errorf("%w: province is required", ErrInvalidTicket)
	}
	ticket.Province = schedule.CanonicalName(ticket.Province)

	ticket.DrawDate = strings.TrimSpace(ticket.DrawDate)
	if _, err := availability.ParseDate(ticket.DrawDate); err != nil {
		return nil, fmt.Errorf("%w: drawDate must be YYYY-MM-DD", ErrInvalidTicket)
	}

	switch ticket.Region = strings.ToLower(strings.TrimSpace(ticket.Region)); ticket.Region {
	case "":
		ticket.Region = schedule.RegionOf(ticket.Province)
	case domain.RegionNorth, domain.RegionCentral, domain.RegionSouth:
	default:
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidTicket, ticket.Region)
	}

	ticket.TicketID = s.newID()
	ticket.DeviceToken = strings.TrimSpace(ticket.DeviceToken)
	ticket.State = domain.StatePending
	ticket.IsWinner = false
	ticket.WinAmount = 0
	ticket.PrizeCategory = ""
	ticket.Reason = ""
	ticket.CheckedAt = nil
	ticket.CreatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, &ticket); err != nil {
		return nil, err
	}
	zap.L().Info("Ticket stored",
		zap.String("ticketID", ticket.TicketID),
		zap.String("userID", ticket.UserID),
		zap.String("province", ticket.Province),
		zap.String("drawDate", ticket.DrawDate),
	)
	return &ticket, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidTicket)
	}
	tickets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// Duplicate brings the number of tickets sharing the original's details up to
// quantity. Copies start PENDING and are settled on their own.
func (s *Service) Duplicate(ctx context.Context, ticketID string, quantity int) ([]domain.Ticket, error) {
	if quantity < minDuplicates || quantity > maxDuplicates {
		return nil, ErrInvalidQuantity
	}
	original, err := s.repo.Get(ctx, strings.TrimSpace(ticketID))
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrTicketNotFound
	}

	copies := make([]domain.Ticket, 0, quantity-1)
	for i := 1; i < quantity; i++ {
		copies = append(copies, domain.Ticket{
			TicketID:     s.newID(),
			UserID:       original.UserID,
			TicketNumber: original.TicketNumber,
			Province:     original.Province,
			DrawDate:     original.DrawDate,
			Region:       original.Region,
			DeviceToken:  original.DeviceToken,
			State:        domain.StatePending,
			CreatedAt:    s.now().UTC(),
		})
	}
	if len(copies) == 0 {
		return copies, nil
	}
	if err := s.repo.SaveBatch(ctx, copies); err != nil {
		return nil, err
	}
	zap.L().Info("Ticket duplicated", zap.String("ticketID", original.TicketID), zap.Int("copies", len(copies)))
	return copies, nil
}
