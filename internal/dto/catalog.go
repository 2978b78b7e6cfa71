package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationResponseDTO struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"code" example:"ORG-1"`
	Title string    `json:"title" example:"University of Lyon"`
}

type CertificateResponseDTO struct {
	ID       uuid.UUID `json:"id"`
	OrderID  uuid.UUID `json:"order_id"`
	IssuedOn time.Time `json:"issued_on" example:"2020-12-09T16:09:57+03:00"`
}
