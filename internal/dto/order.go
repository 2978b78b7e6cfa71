package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/coursemarket/internal/domain"
	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

type CreateOrderRequestDTO struct {
	ProductID    uuid.UUID  `json:"product_id" example:"7b1f7c1e-3d5c-4d0a-9a57-4bd0c5f1b6a2"`
	CourseID     *uuid.UUID `json:"course_id,omitempty"`
	EnrollmentID *uuid.UUID `json:"enrollment_id,omitempty"`
}

type SetPaymentMethodRequestDTO struct {
	CreditCardID uuid.UUID `json:"credit_card_id"`
}

type ClaimOrderRequestDTO struct {
	Voucher string `json:"voucher" example:"5F0C2B7A9E4D4C4F8D7B2A1C3E5F6A7B"`
}

type SubmitForSignatureResponseDTO struct {
	InvitationLink string `json:"invitation_link" example:"https://dummysignaturebackend.fr/?requestToken=wfl_fake_dummy_1"`
}

type InstallmentDTO struct {
	ID      uuid.UUID       `json:"id"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	DueDate string          `json:"due_date" example:"2024-03-17"`
	State   schedule.State  `json:"state" example:"pending"`
}

type ContractDTO struct {
	ID                      uuid.UUID  `json:"id"`
	SubmittedForSignatureOn *time.Time `json:"submitted_for_signature_on,omitempty"`
	StudentSignedOn         *time.Time `json:"student_signed_on,omitempty"`
}

type OrderResponseDTO struct {
	ID              uuid.UUID         `json:"id"`
	ProductID       uuid.UUID         `json:"product_id"`
	CourseID        *uuid.UUID        `json:"course_id,omitempty"`
	EnrollmentID    *uuid.UUID        `json:"enrollment_id,omitempty"`
	OrganizationID  *uuid.UUID        `json:"organization_id,omitempty"`
	CreditCardID    *uuid.UUID        `json:"credit_card_id,omitempty"`
	State           domain.OrderState `json:"state" example:"pending"`
	Total           decimal.Decimal   `json:"total" swaggertype:"string" example:"300.00"`
	PaymentSchedule []InstallmentDTO  `json:"payment_schedule"`
	Contract        *ContractDTO      `json:"contract,omitempty"`
	CreatedAt       string            `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

func NewContractDTO(c *domain.Contract) *ContractDTO {
	if c == nil {
		return nil
	}
	return &ContractDTO{
		ID:                      c.ID,
		SubmittedForSignatureOn: c.SubmittedForSignatureAt,
		StudentSignedOn:         c.StudentSignedAt,
	}
}

func NewOrderResponse(o *domain.Order) OrderResponseDTO {
	installments := make([]InstallmentDTO, 0, len(o.PaymentSchedule))
	for _, i := range o.PaymentSchedule {
		installments = append(installments, InstallmentDTO{
			ID:      i.ID,
			Amount:  i.Amount.Round(2),
			DueDate: i.DueDate.Format(time.DateOnly),
			State:   i.State,
		})
	}
	return OrderResponseDTO{
		ID:              o.ID,
		ProductID:       o.ProductID,
		CourseID:        o.CourseID,
		EnrollmentID:    o.EnrollmentID,
		OrganizationID:  o.OrganizationID,
		CreditCardID:    o.CreditCardID,
		State:           o.State,
		Total:           o.Total.Round(2),
		PaymentSchedule: installments,
		Contract:        NewContractDTO(o.Contract),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}
