package dto

import (
	"github.com/google/uuid"

	"github.com/GlebRadaev/coursemarket/internal/domain"
)

type CreateCreditCardRequestDTO struct {
	Number          string `json:"number" example:"4242 4242 4242 4242"`
	Title           string `json:"title" example:"Personal"`
	ExpirationMonth int    `json:"expiration_month" example:"12"`
	ExpirationYear  int    `json:"expiration_year" example:"2030"`
}

type CreditCardResponseDTO struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title" example:"Personal"`
	Brand           string    `json:"brand" example:"visa"`
	LastNumbers     string    `json:"last_numbers" example:"4242"`
	ExpirationMonth int       `json:"expiration_month" example:"12"`
	ExpirationYear  int       `json:"expiration_year" example:"2030"`
	IsMain          bool      `json:"is_main"`
}

func NewCreditCardResponse(c *domain.CreditCard) CreditCardResponseDTO {
	return CreditCardResponseDTO{
		ID:              c.ID,
		Title:           c.Title,
		Brand:           c.Brand,
		LastNumbers:     c.LastNumbers,
		ExpirationMonth: c.ExpirationMonth,
		ExpirationYear:  c.ExpirationYear,
		IsMain:          c.IsMain,
	}
}
