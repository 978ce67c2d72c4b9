// Package notify sends the push message that follows a ticket settlement.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/pkg/clients"
)

var ErrPushRejected = errors.New("push endpoint rejected message")

type Message struct {
	To    string      `json:"to"`
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Data  MessageData `json:"data"`
}

type MessageData struct {
	TicketID string `json:"ticketId"`
	IsWinner bool   `json:"isWinner"`
	Amount   int64  `json:"winAmount"`
	Category string `json:"prizeCategory,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type Service struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{url: cfg.PushAddress, client: client}
}

// Notify delivers the settlement message for ticket. Tickets without a
// device token are skipped.
func (s *Service) Notify(ctx context.Context, ticket domain.Ticket, outcome domain.Outcome) error {
	if ticket.DeviceToken == "" {
		zap.L().Debug("No device token, notification skipped", zap.String("ticketID", ticket.TicketID))
		return nil
	}
	if s.url == "" {
		zap.L().Info("Push address not configured, notification dropped", zap.String("ticketID", ticket.TicketID))
		return nil
	}
	body, err := json.Marshal(Compose(ticket, outcome))
	if err != nil {
		return fmt.Errorf("failed to encode push message: %w", err)
	}

	status, _, err := s.client.Post(ctx, s.url, nil, body)
	if err != nil {
		return fmt.Errorf("failed to send push message: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: status %d", ErrPushRejected, status)
	}

	zap.L().Info("Notification sent",
		zap.String("ticketID", ticket.TicketID),
		zap.Bool("isWinner", outcome.IsWinner),
	)
	return nil
}

// Compose builds the winner, loser or no-drawing message for a settled ticket.
func Compose(ticket domain.Ticket, outcome domain.Outcome) Message {
	msg := Message{
		To: ticket.DeviceToken,
		Data: MessageData{
			TicketID: ticket.TicketID,
			IsWinner: outcome.IsWinner,
			Amount:   outcome.Amount,
			Category: outcome.Category,
			Reason:   outcome.Reason,
		},
	}

	switch {
	case outcome.IsWinner:
		msg.Title = "🎉 Congratulations! You Won!"
		msg.Body = fmt.Sprintf("Your ticket %s won %s VND (%s)!",
			ticket.TicketNumber, FormatVND(outcome.Amount), outcome.Category)
	case outcome.Reason == domain.ReasonNoDrawingExpected:
		msg.Title = "No Drawing Held"
		msg.Body = fmt.Sprintf("There was no %s drawing on %s, so your ticket %s was not checked.",
			ticket.Province, ticket.DrawDate, ticket.TicketNumber)
	default:
		msg.Title = "Lottery Results Available"
		msg.Body = fmt.Sprintf("Your ticket %s for %s on %s was not a winner this time. Better luck next time!",
			ticket.TicketNumber, ticket.Province, ticket.DrawDate)
	}
	return msg
}

var vnd = message.NewPrinter(language.Vietnamese)

// FormatVND groups thousands with dots, e.g. 1.000.000.
func FormatVND(amount int64) string {
	return vnd.Sprintf("%d", amount)
}
