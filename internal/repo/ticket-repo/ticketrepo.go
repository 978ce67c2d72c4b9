package ticketrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/xoso/internal/domain"
	"github.com/GlebRadaev/xoso/internal/pg"
)

const ticketColumns = `ticket_id, user_id, ticket_number, province, draw_date, region, device_token,
        state, is_winner, win_amount, prize_category, reason, checked_at, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanTicket(row pgx.Row) (domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(
		&t.TicketID, &t.UserID, &t.TicketNumber, &t.Province, &t.DrawDate, &t.Region, &t.DeviceToken,
		&t.State, &t.IsWinner, &t.WinAmount, &t.PrizeCategory, &t.Reason, &t.CheckedAt, &t.CreatedAt,
	)
	return t, err
}

func (r *Repository) Get(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets
        WHERE ticket_id = $1
    `
	ticket, err := scanTicket(r.db.QueryRow(ctx, query, ticketID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get ticket", zap.String("ticketID", ticketID), zap.Error(err))
		return nil, err
	}
	return &ticket, nil
}

const insertTicket = `
        INSERT INTO tickets (ticket_id, user_id, ticket_number, province, draw_date, region, device_token, state, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

func (r *Repository) Save(ctx context.Context, ticket *domain.Ticket) error {
	_, err := r.db.Exec(ctx, insertTicket,
		ticket.TicketID, ticket.UserID, ticket.TicketNumber, ticket.Province, ticket.DrawDate,
		ticket.Region, ticket.DeviceToken, ticket.State, ticket.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save ticket", zap.Error(err))
		return err
	}
	return nil
}

// SaveBatch stores all tickets or none.
func (r *Repository) SaveBatch(ctx context.Context, tickets []domain.Ticket) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range tickets {
			if err := r.Save(ctx, &tickets[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) QueryByDateAndState(ctx context.Context, date string, states []string) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets
        WHERE draw_date = $1 AND state = ANY($2)
        ORDER BY created_at ASC
    `
	return r.list(ctx, query, date, states)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			zap.L().Error("can't scan ticket row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tickets, nil
}

// ConditionalSettle writes the terminal outcome unless the ticket is already
// settled. It reports false when another writer got there first.
func (r *Repository) ConditionalSettle(ctx context.Context, ticketID string, outcome domain.Outcome, checkedAt time.Time) (bool, error) {
	query := `
        UPDATE tickets
        SET state = 'SETTLED', is_winner = $2, win_amount = $3, prize_category = $4, reason = $5, checked_at = $6
        WHERE ticket_id = $1 AND state <> 'SETTLED'
    `
	tag, err := r.db.Exec(ctx, query, ticketID, outcome.IsWinner, outcome.Amount, outcome.Category, outcome.Reason, checkedAt)
	if err != nil {
		zap.L().Error("can't settle ticket", zap.String("ticketID", ticketID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkAwaiting moves a PENDING ticket to AWAITING_RESULTS. Tickets in any
// other state are left alone.
func (r *Repository) MarkAwaiting(ctx context.Context, ticketID string) error {
	query := `
        UPDATE tickets
        SET state = 'AWAITING_RESULTS'
        WHERE ticket_id = $1 AND state = 'PENDING'
    `
	if _, err := r.db.Exec(ctx, query, ticketID); err != nil {
		zap.L().Error("can't mark ticket awaiting", zap.String("ticketID", ticketID), zap.Error(err))
		return err
	}
	return nil
}
