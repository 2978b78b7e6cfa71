package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

type CreateBatchOrderRequestDTO struct {
	ProductID   uuid.UUID `json:"product_id"`
	CourseID    uuid.UUID `json:"course_id"`
	CompanyName string    `json:"company_name" example:"Acme"`
	NbSeats     int       `json:"nb_seats" example:"10"`
}

type BatchOrderResponseDTO struct {
	ID             uuid.UUID              `json:"id"`
	ProductID      uuid.UUID              `json:"product_id"`
	CourseID       uuid.UUID              `json:"course_id"`
	OrganizationID *uuid.UUID             `json:"organization_id,omitempty"`
	CompanyName    string                 `json:"company_name" example:"Acme"`
	NbSeats        int                    `json:"nb_seats" example:"10"`
	Total          decimal.Decimal        `json:"total" swaggertype:"string" example:"1000.00"`
	State          domain.BatchOrderState `json:"state" example:"pending"`
	PaymentState   schedule.State         `json:"payment_state" example:"pending"`
	Contract       *ContractDTO           `json:"contract,omitempty"`
	CreatedAt      string                 `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

func NewBatchOrderResponse(b *domain.BatchOrder) BatchOrderResponseDTO {
	return BatchOrderResponseDTO{
		ID:             b.ID,
		ProductID:      b.ProductID,
		CourseID:       b.CourseID,
		OrganizationID: b.OrganizationID,
		CompanyName:    b.CompanyName,
		NbSeats:        b.NbSeats,
		Total:          b.Total.Round(2),
		State:          b.State,
		PaymentState:   b.PaymentState,
		Contract:       NewContractDTO(b.Contract),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}
