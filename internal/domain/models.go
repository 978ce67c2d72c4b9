package domain

import "time"

const (
	StatePending         = "PENDING"
	StateAwaitingResults = "AWAITING_RESULTS"
	StateSettled         = "SETTLED"
)

const (
	RegionNorth   = "north"
	RegionCentral = "central"
	RegionSouth   = "south"
)

// Reasons attached to outcomes that were not produced by checking real numbers.
const (
	ReasonNoDrawingExpected  = "no-drawing-expected"
	ReasonResultsNotDue      = "results-not-due"
	ReasonFetchRequested     = "fetch-requested"
	ReasonResultsUnavailable = "results-unavailable"
)

type Ticket struct {
	TicketID      string     `db:"ticket_id"`
	UserID        string     `db:"user_id"`
	TicketNumber  string     `db:"ticket_number"`
	Province      string     `db:"province"`
	DrawDate      string     `db:"draw_date"`
	Region        string     `db:"region"`
	DeviceToken   string     `db:"device_token"`
	State         string     `db:"state"`
	IsWinner      bool       `db:"is_winner"`
	WinAmount     int64      `db:"win_amount"`
	PrizeCategory string     `db:"prize_category"`
	Reason        string     `db:"reason"`
	CheckedAt     *time.Time `db:"checked_at"`
	CreatedAt     time.Time  `db:"created_at"`
}

// Outcome is what settlement reports back to callers. For SETTLED tickets the
// IsWinner/Amount/Category triple is the stored, immutable result.
type Outcome struct {
	State    string
	IsWinner bool
	Amount   int64
	Category string
	Reason   string
	Message  string
}

// SettledOutcome rebuilds the outcome stored on a settled ticket.
func (t *Ticket) SettledOutcome() Outcome {
	return Outcome{
		State:    StateSettled,
		IsWinner: t.IsWinner,
		Amount:   t.WinAmount,
		Category: t.PrizeCategory,
		Reason:   t.Reason,
	}
}

// PrizeTiers maps a canonical tier id (DB, G1..G8) to its winning numbers.
type PrizeTiers map[string][]string

type DrawResult struct {
	Province  string     `db:"province"`
	Date      string     `db:"draw_date"`
	Region    string     `db:"region"`
	Prizes    PrizeTiers `db:"prizes"`
	Source    string     `db:"source"`
	CreatedAt time.Time  `db:"created_at"`
}

type MatchOutcome struct {
	IsWinner bool
	Amount   int64
	Category string
}

type BatchSummary struct {
	TicketsProcessed int
	WinnersFound     int
}

// ResultLookup is either a stored DrawResult or the reason none is available.
type ResultLookup struct {
	Result  *DrawResult
	Reason  string
	Message string
}
