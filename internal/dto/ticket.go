package dto

type SubmitTicketRequestDTO struct {
	UserID       string `json:"userId" example:"user-42"`
	TicketNumber string `json:"ticketNumber" example:"123456"`
	Province     string `json:"province" example:"Vũng Tàu"`
	DrawDate     string `json:"drawDate" example:"2024-01-02"`
	Region       string `json:"region,omitempty" example:"south"`
	DeviceToken  string `json:"deviceToken,omitempty" example:"ExponentPushToken[xxxx]"`
}

type SubmitTicketResponseDTO struct {
	TicketID string `json:"ticketId" example:"9b2f6a0e-3c41-4c55-9d1e-1f0c3b5a7d21"`
	Message  string `json:"message" example:"Ticket stored successfully"`
}

type TicketResponseDTO struct {
	TicketID      string `json:"ticketId" example:"9b2f6a0e-3c41-4c55-9d1e-1f0c3b5a7d21"`
	TicketNumber  string `json:"ticketNumber" example:"123456"`
	Province      string `json:"province" example:"Vũng Tàu"`
	DrawDate      string `json:"drawDate" example:"2024-01-02"`
	Region        string `json:"region" example:"south"`
	State         string `json:"state" example:"SETTLED"`
	IsWinner      bool   `json:"isWinner" example:"true"`
	WinAmount     int64  `json:"winAmount" example:"100000"`
	PrizeCategory string `json:"prizeCategory,omitempty" example:"G8"`
	CheckedAt     string `json:"checkedAt,omitempty" example:"2024-01-02T10:05:00Z"`
	CreatedAt     string `json:"createdAt" example:"2024-01-02T03:04:05Z"`
}

type DuplicateTicketRequestDTO struct {
	Quantity int `json:"quantity" example:"3"`
}

type DuplicateTicketResponseDTO struct {
	DuplicatesCreated int      `json:"duplicatesCreated" example:"2"`
	RequestedQuantity int      `json:"requestedQuantity" example:"3"`
	TotalTickets      int      `json:"totalTickets" example:"3"`
	TicketIDs         []string `json:"ticketIds"`
}
