package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/coursemarket/pkg/schedule"
)

var ErrOrganizationRequired = errors.New("organization is required unless the batch order is draft or canceled")

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Organization struct {
	ID        uuid.UUID `db:"id"`
	Code      string    `db:"code"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

// OrganizationLoad is an organization able to sell a product together with
// the number of orders currently bound to it.
type OrganizationLoad struct {
	OrganizationID uuid.UUID `db:"organization_id"`
	IsAuthor       bool      `db:"is_author"`
	Orders         int       `db:"orders"`
}

type Course struct {
	ID                   uuid.UUID  `db:"id"`
	Code                 string     `db:"code"`
	Title                string     `db:"title"`
	AuthorOrganizationID *uuid.UUID `db:"author_organization_id"`
	StartDate            *time.Time `db:"start_date"`
}

type ProductType string

const (
	ProductTypeEnrollment  ProductType = "enrollment"
	ProductTypeCertificate ProductType = "certificate"
	ProductTypeCredential  ProductType = "credential"
)

type Product struct {
	ID                uuid.UUID       `db:"id"`
	Type              ProductType     `db:"type"`
	Title             string          `db:"title"`
	Price             decimal.Decimal `db:"price_cents"`
	HasContract       bool            `db:"has_contract"`
	GrantsCertificate bool            `db:"grants_certificate"`

	// Discount is the offer applied to every order of the product.
	Discount *schedule.Discount `db:"-"`
}

type Enrollment struct {
	ID        uuid.UUID `db:"id"`
	UserID    int       `db:"user_id"`
	CourseID  uuid.UUID `db:"course_id"`
	CreatedAt time.Time `db:"created_at"`
}

type CreditCard struct {
	ID              uuid.UUID `db:"id"`
	OwnerID         int       `db:"owner_id"`
	Token           string    `db:"token"`
	Title           string    `db:"title"`
	Brand           string    `db:"brand"`
	LastNumbers     string    `db:"last_numbers"`
	ExpirationMonth int       `db:"expiration_month"`
	ExpirationYear  int       `db:"expiration_year"`
	IsMain          bool      `db:"is_main"`
	CreatedAt       time.Time `db:"created_at"`
}

type Contract struct {
	ID                      uuid.UUID  `db:"id"`
	OrderID                 *uuid.UUID `db:"order_id"`
	BatchOrderID            *uuid.UUID `db:"batch_order_id"`
	Reference               *string    `db:"reference"`
	SubmittedForSignatureAt *time.Time `db:"submitted_for_signature_at"`
	StudentSignedAt         *time.Time `db:"student_signed_at"`
	CreatedAt               time.Time  `db:"created_at"`
}

func (c *Contract) IsSigned() bool {
	return c != nil && c.StudentSignedAt != nil
}

func (c *Contract) IsSubmitted() bool {
	return c != nil && c.SubmittedForSignatureAt != nil && c.Reference != nil
}

type Order struct {
	ID              uuid.UUID         `db:"id"`
	OwnerID         *int              `db:"owner_id"`
	ProductID       uuid.UUID         `db:"product_id"`
	CourseID        *uuid.UUID        `db:"course_id"`
	EnrollmentID    *uuid.UUID        `db:"enrollment_id"`
	OrganizationID  *uuid.UUID        `db:"organization_id"`
	BatchOrderID    *uuid.UUID        `db:"batch_order_id"`
	CreditCardID    *uuid.UUID        `db:"credit_card_id"`
	State           OrderState        `db:"state"`
	Total           decimal.Decimal   `db:"total_cents"`
	HasContract     bool              `db:"has_contract"`
	PaymentSchedule schedule.Schedule `db:"payment_schedule"`
	Voucher         *string           `db:"voucher"`
	CreatedAt       time.Time         `db:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at"`

	Contract *Contract `db:"-"`
}

func (o *Order) IsFree() bool {
	return !o.Total.IsPositive()
}

func (o *Order) HasPaymentMethod() bool {
	return o.CreditCardID != nil
}

// ContractReady is true when the order needs no signature or the owner
// already signed it.
func (o *Order) ContractReady() bool {
	return !o.HasContract || o.Contract.IsSigned()
}

func (o *Order) HasUnsignedContract() bool {
	return o.HasContract && !o.Contract.IsSigned()
}

func (o *Order) IsOwnedBy(userID int) bool {
	return o.OwnerID != nil && *o.OwnerID == userID
}

type BatchOrder struct {
	ID             uuid.UUID       `db:"id"`
	OwnerID        int             `db:"owner_id"`
	ProductID      uuid.UUID       `db:"product_id"`
	CourseID       uuid.UUID       `db:"course_id"`
	OrganizationID *uuid.UUID      `db:"organization_id"`
	CompanyName    string          `db:"company_name"`
	NbSeats        int             `db:"nb_seats"`
	Total          decimal.Decimal `db:"total_cents"`
	State          BatchOrderState `db:"state"`
	PaymentState   schedule.State  `db:"payment_state"`
	HasContract    bool            `db:"has_contract"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`

	Contract *Contract `db:"-"`
}

// Validate enforces that only draft and canceled batch orders may lack an organization.
func (b *BatchOrder) Validate() error {
	if b.OrganizationID == nil && b.State != BatchOrderStateDraft && b.State != BatchOrderStateCanceled {
		return ErrOrganizationRequired
	}
	return nil
}

func (b *BatchOrder) ContractReady() bool {
	return !b.HasContract || b.Contract.IsSigned()
}

func (b *BatchOrder) HasUnsignedContract() bool {
	return b.HasContract && !b.Contract.IsSigned()
}

type Certificate struct {
	ID       uuid.UUID `db:"id"`
	OrderID  uuid.UUID `db:"order_id"`
	IssuedAt time.Time `db:"issued_at"`
}
