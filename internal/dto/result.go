package dto

type ResultResponseDTO struct {
	Success  bool                `json:"success" example:"true"`
	Province string              `json:"province,omitempty" example:"Vũng Tàu"`
	Date     string              `json:"date,omitempty" example:"2024-01-02"`
	Region   string              `json:"region,omitempty" example:"south"`
	Results  map[string][]string `json:"results,omitempty"`
	Reason   string              `json:"reason,omitempty" example:"results-not-due"`
	Message  string              `json:"message,omitempty" example:"Results not yet available for Vũng Tàu on 2024-01-02. Check again after 4pm Vietnam time."`
}
