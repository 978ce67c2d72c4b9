package dto

type SettlementResponseDTO struct {
	State         string `json:"state" example:"SETTLED"`
	IsWinner      bool   `json:"isWinner" example:"true"`
	WinAmount     int64  `json:"winAmount" example:"100000"`
	PrizeCategory string `json:"prizeCategory,omitempty" example:"G8"`
	Reason        string `json:"reason,omitempty" example:"fetch-requested"`
	Message       string `json:"message,omitempty" example:"Results not yet available - ticket status is pending. Background fetch initiated."`
}

type BatchRequestDTO struct {
	Date string `json:"date" example:"2024-01-02"`
}

type BatchResponseDTO struct {
	TicketsProcessed int `json:"ticketsProcessed" example:"12"`
	WinnersFound     int `json:"winnersFound" example:"1"`
}
